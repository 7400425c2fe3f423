package entity

import (
	"strings"
	"time"
	"unicode"

	errs "github.com/Tatang94/atz/internal/domain/error"
)

// Categories whose target account is an Indonesian phone number
var phoneKeyedCategories = map[string]bool{
	"pulsa":            true,
	"data":             true,
	"emoney":           true,
	"sms_telpon":       true,
	"masa_aktif":       true,
	"aktivasi_perdana": true,
	"esim":             true,
}

// Product is a catalog entry resolved at transaction creation time
type Product struct {
	ID          uint64
	SKU         string
	ProductName string
	Category    string
	Brand       string
	Type        string // prepaid or postpaid
	Price       int64  // Upstream provider price, kept for reference
	BuyerPrice  int64  // Price charged to the customer
	Active      bool
	Description string
	UpdatedAt   time.Time
}

// ValidateTarget checks the target account against the category-specific rule.
// Phone-keyed categories require an Indonesian mobile number; other categories
// accept any non-empty identifier (PLN meter ids, game user ids, ...).
func (p *Product) ValidateTarget(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return errs.ErrInvalidTargetNumber
	}
	if phoneKeyedCategories[p.Category] && !isValidPhoneNumber(target) {
		return errs.ErrInvalidTargetNumber
	}
	return nil
}

// isValidPhoneNumber reports whether s is an Indonesian mobile number:
// digits only, 10 to 13 characters, starting with 08.
func isValidPhoneNumber(s string) bool {
	if len(s) < 10 || len(s) > 13 {
		return false
	}
	if !strings.HasPrefix(s, "08") {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

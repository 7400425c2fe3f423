package gateway

import (
	"context"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
)

// PaymentInstrument is the artifact the customer uses to pay
type PaymentInstrument struct {
	PaymentReference string // Gateway-side id for the payment (pay_id)
	CheckoutURL      string
	QRContent        string
	ExpiresAt        time.Time
}

// PaymentState is the normalized result of a gateway status query
type PaymentState struct {
	Status entity.PaymentStatus
	Amount int64
}

// PaymentGateway abstracts the payment provider. Implementations map the
// provider status vocabulary into entity.PaymentStatus before returning.
type PaymentGateway interface {
	// CreatePayment opens a payment instrument for the given amount, keyed by
	// the correlation reference
	//
	// Possible errors:
	// - ErrMisconfiguredGateway: If the shared secret is missing
	// - ErrGatewayUnavailable: If the call fails or the gateway rejects it
	CreatePayment(ctx context.Context, refID string, amount int64, description string, validity time.Duration) (*PaymentInstrument, error)

	// CheckStatus queries the gateway for the current payment state
	//
	// Possible errors:
	// - ErrMisconfiguredGateway: If the shared secret is missing
	// - ErrGatewayUnavailable: If the call fails or the gateway rejects it
	CheckStatus(ctx context.Context, refID string) (*PaymentState, error)

	// VerifyCallback checks the authenticity of an inbound webhook signature
	// for the given correlation reference
	VerifyCallback(refID, signature string) bool

	// NormalizeStatus maps a raw provider status string into the internal
	// payment vocabulary. Unknown values map to entity.PaymentPending.
	NormalizeStatus(raw string) entity.PaymentStatus
}

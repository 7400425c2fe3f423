package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/domain/port/gateway"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

// Service orchestrates the purchase lifecycle: it creates transactions,
// reconciles payment signals from the webhook and the poll path, and triggers
// fulfillment exactly once per paid transaction. The only synchronization
// primitive is the per-transaction compare-and-set on status provided by the
// repository.
type Service struct {
	transactions persistence.TransactionRepository
	products     persistence.ProductRepository
	payments     gateway.PaymentGateway
	fulfillment  gateway.FulfillmentProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	// Payment instrument validity window; pending transactions older than
	// this are swept to expired.
	validity time.Duration
}

// NewService creates the transaction orchestrator
func NewService(
	transactions persistence.TransactionRepository,
	products persistence.ProductRepository,
	payments gateway.PaymentGateway,
	fulfillment gateway.FulfillmentProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	validity time.Duration,
) *Service {
	if validity <= 0 {
		validity = 30 * time.Minute
	}
	return &Service{
		transactions: transactions,
		products:     products,
		payments:     payments,
		fulfillment:  fulfillment,
		timeProvider: timeProvider,
		logger:       logger,
		validity:     validity,
	}
}

// CreateRequest is the input for creating a purchase
type CreateRequest struct {
	ProductCode   string
	TargetNumber  string
	PaymentMethod string
}

// CreateTransaction resolves the product, opens a payment instrument with the
// gateway and persists a new pending transaction. The operation is
// all-or-nothing: if the gateway call fails, no row is written.
func (s *Service) CreateTransaction(ctx context.Context, req CreateRequest) (*entity.Transaction, error) {
	product, err := s.products.GetBySKU(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, errs.ErrProductNotFound
	}

	txn, err := entity.NewTransaction(newRefID(), product, req.TargetNumber, req.PaymentMethod, s.timeProvider)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s - %s", product.ProductName, req.TargetNumber)
	instrument, err := s.payments.CreatePayment(ctx, txn.RefID, txn.Amount, description, s.validity)
	if err != nil {
		s.logger.Error("Payment instrument creation failed", map[string]any{
			"ref_id":       txn.RefID,
			"product_code": req.ProductCode,
			"error":        err.Error(),
		})
		return nil, err
	}

	if err := txn.AttachPaymentInstrument(
		instrument.PaymentReference,
		instrument.CheckoutURL,
		instrument.QRContent,
		instrument.ExpiresAt,
	); err != nil {
		return nil, err
	}

	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"ref_id":       txn.RefID,
		"product_code": txn.ProductCode,
		"amount":       txn.Amount,
	})
	return txn, nil
}

// newRefID generates a fresh correlation reference
func newRefID() string {
	return "TRX" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

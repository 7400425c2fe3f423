package order

import (
	"context"
	"fmt"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

// HandlePaymentCallback processes an inbound payment webhook. The signature is
// verified before any lookup. The callback and the poll path are symmetric:
// both funnel into applyPaymentStatus, so whichever reaches the compare-and-set
// first wins and the loser observes a no-op, never an error.
func (s *Service) HandlePaymentCallback(
	ctx context.Context,
	refID string,
	reportedStatus string,
	reportedAmount int64,
	signature string,
) (entity.TransactionStatus, error) {
	if refID == "" {
		return "", errs.ErrInvalidRequest
	}
	if !s.payments.VerifyCallback(refID, signature) {
		s.logger.Warn("Rejected callback with invalid signature", map[string]any{
			"ref_id":          refID,
			"reported_status": reportedStatus,
		})
		return "", errs.ErrInvalidCallback
	}

	// Never fabricate a transaction from an unsolicited callback
	txn, err := s.transactions.GetByRefID(ctx, refID)
	if err != nil {
		return "", err
	}

	if reportedAmount != 0 && reportedAmount != txn.Amount {
		s.logger.Warn("Callback amount differs from recorded amount", map[string]any{
			"ref_id":          refID,
			"recorded_amount": txn.Amount,
			"reported_amount": reportedAmount,
		})
	}

	return s.applyPaymentStatus(ctx, txn, s.payments.NormalizeStatus(reportedStatus), "webhook")
}

// PollPaymentStatus queries the gateway directly and applies the same mapping
// and compare-and-set discipline as the webhook path.
func (s *Service) PollPaymentStatus(ctx context.Context, refID string) (entity.TransactionStatus, error) {
	txn, err := s.transactions.GetByRefID(ctx, refID)
	if err != nil {
		return "", err
	}
	if txn.Status != entity.StatusPending {
		// Already moved by another path; report the reached state
		return txn.Status, nil
	}

	state, err := s.payments.CheckStatus(ctx, refID)
	if err != nil {
		return txn.Status, err
	}

	return s.applyPaymentStatus(ctx, txn, state.Status, "poll")
}

// applyPaymentStatus maps a normalized payment status onto the state machine.
// Paid attempts the pending -> processing transition and, on winning it,
// synchronously runs fulfillment. Expired and rejected attempt
// pending -> failed. Everything else is a no-op.
func (s *Service) applyPaymentStatus(
	ctx context.Context,
	txn *entity.Transaction,
	status entity.PaymentStatus,
	source string,
) (entity.TransactionStatus, error) {
	switch status {
	case entity.PaymentPaid:
		won, err := s.transactions.UpdateStatusIf(ctx, txn.RefID, entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{})
		if err != nil {
			return "", err
		}
		if !won {
			// The other path already moved it; the desired end state is
			// reached, so this is a successful no-op.
			return s.currentStatus(ctx, txn.RefID)
		}
		s.logger.Info("Payment confirmed", map[string]any{
			"ref_id": txn.RefID,
			"source": source,
		})
		return s.fulfill(ctx, txn)

	case entity.PaymentExpired, entity.PaymentRejected:
		message := fmt.Sprintf("payment %s by gateway", status)
		won, err := s.transactions.UpdateStatusIf(ctx, txn.RefID, entity.StatusPending, entity.StatusFailed, persistence.StatusUpdate{
			StatusMessage: &message,
		})
		if err != nil {
			return "", err
		}
		if won {
			s.logger.Info("Payment not completed", map[string]any{
				"ref_id": txn.RefID,
				"status": string(status),
				"source": source,
			})
			return entity.StatusFailed, nil
		}
		return s.currentStatus(ctx, txn.RefID)

	default:
		// Still waiting for payment
		return s.currentStatus(ctx, txn.RefID)
	}
}

// currentStatus re-reads the authoritative status after a lost or skipped CAS
func (s *Service) currentStatus(ctx context.Context, refID string) (entity.TransactionStatus, error) {
	txn, err := s.transactions.GetByRefID(ctx, refID)
	if err != nil {
		return "", err
	}
	return txn.Status, nil
}

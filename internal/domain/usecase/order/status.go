package order

import (
	"context"

	"github.com/Tatang94/atz/internal/domain/entity"
)

// GetStatus answers a caller's status query. For a pending transaction it
// first runs the poll reconciliation path so the answer reflects the gateway;
// for a processing one it asks the fulfillment provider. A gateway outage
// degrades to the stored state instead of failing the query.
func (s *Service) GetStatus(ctx context.Context, refID string) (*entity.Transaction, error) {
	txn, err := s.transactions.GetByRefID(ctx, refID)
	if err != nil {
		return nil, err
	}

	switch txn.Status {
	case entity.StatusPending:
		if _, err := s.PollPaymentStatus(ctx, refID); err != nil {
			s.logger.Warn("Payment status poll failed, answering from store", map[string]any{
				"ref_id": refID,
				"error":  err.Error(),
			})
			return txn, nil
		}
	case entity.StatusProcessing:
		if _, err := s.resolveProcessing(ctx, txn); err != nil {
			s.logger.Warn("Delivery status check failed, answering from store", map[string]any{
				"ref_id": refID,
				"error":  err.Error(),
			})
			return txn, nil
		}
	default:
		// Terminal, nothing to reconcile
		return txn, nil
	}

	return s.transactions.GetByRefID(ctx, refID)
}

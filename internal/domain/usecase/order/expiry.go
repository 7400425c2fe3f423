package order

import (
	"context"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

// Pending transactions swept per run
const expiryBatchSize = 100

// Message recorded on swept transactions
const expiredMessage = "payment window elapsed"

// ExpireStalePending sweeps pending transactions older than the validity
// window to expired. Each transition goes through the same compare-and-set as
// the payment paths, so a payment landing mid-sweep safely wins the race and
// the sweep's CAS fails silently for that transaction.
func (s *Service) ExpireStalePending(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.validity)
	refs, err := s.transactions.FindStalePending(ctx, cutoff, expiryBatchSize)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, refID := range refs {
		message := expiredMessage
		won, err := s.transactions.UpdateStatusIf(ctx, refID, entity.StatusPending, entity.StatusExpired, persistence.StatusUpdate{
			StatusMessage: &message,
		})
		if err != nil {
			return expired, err
		}
		if won {
			expired++
			s.logger.Info("Transaction expired", map[string]any{
				"ref_id": refID,
			})
		}
	}
	return expired, nil
}

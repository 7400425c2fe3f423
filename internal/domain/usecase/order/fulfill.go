package order

import (
	"context"

	"github.com/Tatang94/atz/internal/domain/entity"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

// Message recorded when payment was captured but delivery did not happen.
// Kept identical for every such transaction so operators can query for it.
const deliveryFailedMessage = "Payment successful but product delivery failed"

// fulfill delivers the product for a transaction that has just won the
// pending -> processing transition. The terminal transition is a second,
// independent compare-and-set guarded on processing, so a duplicate
// invocation can never apply two conflicting terminal states.
func (s *Service) fulfill(ctx context.Context, txn *entity.Transaction) (entity.TransactionStatus, error) {
	result, err := s.fulfillment.Deliver(ctx, txn.ProductCode, txn.TargetNumber, txn.RefID)
	if err != nil {
		return s.failDelivery(ctx, txn, "", err.Error())
	}
	if result.Status != entity.DeliveryDelivered {
		message := result.Message
		if message == "" {
			message = "delivery rejected by provider"
		}
		return s.failDelivery(ctx, txn, result.FulfillmentID, message)
	}

	update := persistence.StatusUpdate{
		FulfillmentID: &result.FulfillmentID,
		SerialNumber:  &result.SerialNumber,
		StatusMessage: &result.Message,
	}
	won, err := s.transactions.UpdateStatusIf(ctx, txn.RefID, entity.StatusProcessing, entity.StatusSuccess, update)
	if err != nil {
		return "", err
	}
	if !won {
		return s.currentStatus(ctx, txn.RefID)
	}

	s.logger.Info("Product delivered", map[string]any{
		"ref_id":         txn.RefID,
		"fulfillment_id": result.FulfillmentID,
		"serial_number":  result.SerialNumber,
	})
	return entity.StatusSuccess, nil
}

// failDelivery records the captured-payment-but-undelivered outcome. There is
// no automatic refund or retry here; the transaction becomes an explicit,
// queryable failed state and a high-severity log record is emitted for
// operator reconciliation.
func (s *Service) failDelivery(ctx context.Context, txn *entity.Transaction, fulfillmentID, upstreamMessage string) (entity.TransactionStatus, error) {
	message := deliveryFailedMessage
	update := persistence.StatusUpdate{
		StatusMessage: &message,
	}
	if fulfillmentID != "" {
		update.FulfillmentID = &fulfillmentID
	}

	won, err := s.transactions.UpdateStatusIf(ctx, txn.RefID, entity.StatusProcessing, entity.StatusFailed, update)
	if err != nil {
		return "", err
	}
	if !won {
		return s.currentStatus(ctx, txn.RefID)
	}

	s.logger.Error("Delivery failed after captured payment", map[string]any{
		"alert":          "delivery_failed_after_payment",
		"ref_id":         txn.RefID,
		"product_code":   txn.ProductCode,
		"target_number":  txn.TargetNumber,
		"amount":         txn.Amount,
		"fulfillment_id": fulfillmentID,
		"upstream":       upstreamMessage,
	})
	return entity.StatusFailed, nil
}

// resolveProcessing reconciles a transaction stuck in processing (for example
// after a crash between the payment CAS and the delivery call) by asking the
// fulfillment provider for the delivery state of the reference.
func (s *Service) resolveProcessing(ctx context.Context, txn *entity.Transaction) (entity.TransactionStatus, error) {
	result, err := s.fulfillment.CheckStatus(ctx, txn.RefID)
	if err != nil {
		// A failed lookup says nothing about whether delivery was ordered;
		// a Deliver call for this reference may still be in flight. Never
		// order delivery again from here, keep the transaction in processing
		// until the provider answers.
		s.logger.Warn("Delivery status unavailable, leaving transaction in processing", map[string]any{
			"ref_id": txn.RefID,
			"error":  err.Error(),
		})
		return txn.Status, nil
	}

	switch result.Status {
	case entity.DeliveryDelivered:
		update := persistence.StatusUpdate{
			FulfillmentID: &result.FulfillmentID,
			SerialNumber:  &result.SerialNumber,
			StatusMessage: &result.Message,
		}
		won, err := s.transactions.UpdateStatusIf(ctx, txn.RefID, entity.StatusProcessing, entity.StatusSuccess, update)
		if err != nil {
			return "", err
		}
		if won {
			return entity.StatusSuccess, nil
		}
		return s.currentStatus(ctx, txn.RefID)
	case entity.DeliveryFailed:
		return s.failDelivery(ctx, txn, result.FulfillmentID, result.Message)
	default:
		// Provider still working on it; leave the transaction as is
		return txn.Status, nil
	}
}

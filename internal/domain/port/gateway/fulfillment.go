package gateway

import (
	"context"

	"github.com/Tatang94/atz/internal/domain/entity"
)

// DeliveryResult is the normalized outcome of a delivery request
type DeliveryResult struct {
	FulfillmentID string // Provider transaction id
	Status        entity.DeliveryStatus
	SerialNumber  string
	Message       string
}

// FulfillmentProvider abstracts the fulfillment side. Implementations map the
// provider status vocabulary into entity.DeliveryStatus before returning, so
// the orchestrator never parses provider enums.
type FulfillmentProvider interface {
	// Deliver orders delivery of the product to the target account, keyed by
	// the correlation reference
	//
	// Possible errors:
	// - ErrMisconfiguredGateway: If credentials are missing
	// - ErrFulfillmentFailed: If the call fails or the provider rejects it
	Deliver(ctx context.Context, productCode, targetNumber, refID string) (*DeliveryResult, error)

	// CheckStatus queries the provider for the delivery state of a reference
	//
	// Possible errors:
	// - ErrMisconfiguredGateway: If credentials are missing
	// - ErrFulfillmentFailed: If the call fails or the provider rejects it
	CheckStatus(ctx context.Context, refID string) (*DeliveryResult, error)
}

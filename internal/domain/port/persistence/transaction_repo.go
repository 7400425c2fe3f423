package persistence

import (
	"context"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
)

// StatusUpdate carries the fields written alongside a status transition.
// Nil pointers leave the column untouched.
type StatusUpdate struct {
	FulfillmentID *string
	SerialNumber  *string
	StatusMessage *string
}

// TransactionRepository defines persistence for purchase transactions.
// The ref_id (correlation reference) is the only external lookup key.
type TransactionRepository interface {
	// Create saves a new transaction and assigns its internal ID
	//
	// Possible errors:
	// - ErrInvalidRefID: If a transaction with the same reference already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByRefID retrieves a transaction by its correlation reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction matches the reference
	// - ErrDatabaseConnection: If database connection fails
	GetByRefID(ctx context.Context, refID string) (*entity.Transaction, error)

	// UpdateStatusIf performs the atomic compare-and-set transition
	// "from -> to" for the referenced transaction, writing the extra fields in
	// the same conditional update. Returns true when this caller won the
	// transition and false when the transaction was not in the expected state.
	// This must be a single conditional UPDATE, never a read-then-write pair.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatusIf(
		ctx context.Context,
		refID string,
		from, to entity.TransactionStatus,
		update StatusUpdate,
	) (bool, error)

	// FindStalePending returns references of pending transactions created
	// before the cutoff, for the expiry sweep
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
}

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/logger"
	timeprovider "github.com/Tatang94/atz/internal/infrastructure/adapter/time"
)

// setupIntegration connects to a real PostgreSQL instance. The suite is
// skipped unless TEST_DB_HOST is set, so unit runs stay self-contained.
func setupIntegration(t *testing.T) *TransactionRepository {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration tests")
	}

	noop := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, noop)
	require.NoError(t, testDB.Connect(t))
	t.Cleanup(func() { testDB.Close(t) })
	testDB.SetupTestDB(t)

	return NewTransactionRepository(testDB.Manager.DB(), timeprovider.NewRealTimeProvider(), noop, testDB.Manager.GetErrorMapper())
}

func integrationTransaction(refID string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		RefID:         refID,
		ProductCode:   "tsel10",
		ProductName:   "Telkomsel 10.000",
		Category:      "pulsa",
		TargetNumber:  "081234567890",
		Amount:        11000,
		Status:        entity.StatusPending,
		PaymentMethod: "11",
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	repo := setupIntegration(t)
	ctx := context.Background()

	txn := integrationTransaction("TRX-IT-1", time.Now())
	require.NoError(t, repo.Create(ctx, txn))
	assert.NotZero(t, txn.ID)

	got, err := repo.GetByRefID(ctx, "TRX-IT-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.Equal(t, int64(11000), got.Amount)

	// The correlation reference is unique
	dup := integrationTransaction("TRX-IT-1", time.Now())
	assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrInvalidRefID)

	_, err = repo.GetByRefID(ctx, "TRX-IT-missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_UpdateStatusIf(t *testing.T) {
	repo := setupIntegration(t)
	ctx := context.Background()

	txn := integrationTransaction("TRX-IT-2", time.Now())
	require.NoError(t, repo.Create(ctx, txn))

	won, err := repo.UpdateStatusIf(ctx, "TRX-IT-2", entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{})
	require.NoError(t, err)
	assert.True(t, won)

	// Losing side of the race observes a clean false
	won, err = repo.UpdateStatusIf(ctx, "TRX-IT-2", entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{})
	require.NoError(t, err)
	assert.False(t, won)

	fulfillmentID := "DF-900"
	serialNumber := "SN-1"
	message := "delivered"
	won, err = repo.UpdateStatusIf(ctx, "TRX-IT-2", entity.StatusProcessing, entity.StatusSuccess, persistence.StatusUpdate{
		FulfillmentID: &fulfillmentID,
		SerialNumber:  &serialNumber,
		StatusMessage: &message,
	})
	require.NoError(t, err)
	assert.True(t, won)

	got, err := repo.GetByRefID(ctx, "TRX-IT-2")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, got.Status)
	assert.Equal(t, "DF-900", got.FulfillmentID)
	assert.Equal(t, "SN-1", got.SerialNumber)
	assert.Equal(t, "delivered", got.StatusMessage)

	// Terminal states are immutable
	won, err = repo.UpdateStatusIf(ctx, "TRX-IT-2", entity.StatusSuccess, entity.StatusFailed, persistence.StatusUpdate{})
	require.NoError(t, err)
	assert.False(t, won)
}

func TestTransactionRepository_FindStalePending(t *testing.T) {
	repo := setupIntegration(t)
	ctx := context.Background()

	stale := integrationTransaction("TRX-IT-3", time.Now().Add(-2*time.Hour))
	fresh := integrationTransaction("TRX-IT-4", time.Now())
	settled := integrationTransaction("TRX-IT-5", time.Now().Add(-2*time.Hour))
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, settled))

	won, err := repo.UpdateStatusIf(ctx, "TRX-IT-5", entity.StatusPending, entity.StatusFailed, persistence.StatusUpdate{})
	require.NoError(t, err)
	require.True(t, won)

	refs, err := repo.FindStalePending(ctx, time.Now().Add(-time.Hour), 100)
	require.NoError(t, err)
	assert.Contains(t, refs, "TRX-IT-3")
	assert.NotContains(t, refs, "TRX-IT-4", "fresh pending rows are not stale")
	assert.NotContains(t, refs, "TRX-IT-5", "settled rows are never swept")
}

package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/Tatang94/atz/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{
			name:        "nil passes through",
			err:         nil,
			expectedErr: nil,
		},
		{
			name:        "record not found",
			err:         gorm.ErrRecordNotFound,
			expectedErr: domainErr.ErrTransactionNotFound,
		},
		{
			name:        "duplicate key",
			err:         errors.New(`duplicate key value violates unique constraint "idx_transactions_ref_id"`),
			expectedErr: domainErr.ErrInvalidRefID,
		},
		{
			name:        "connection refused",
			err:         errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			expectedErr: domainErr.ErrDatabaseConnection,
		},
		{
			name:        "timeout",
			err:         errors.New("context deadline exceeded"),
			expectedErr: domainErr.ErrDatabaseConnection,
		},
		{
			name:        "unclassified failure",
			err:         errors.New("pq: out of shared memory"),
			expectedErr: domainErr.ErrDatabaseConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapper.MapError(tc.err, "create transaction")
			if tc.expectedErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expectedErr)
		})
	}
}

func TestErrorMapper_MapError_KeepsDriverMessage(t *testing.T) {
	mapper := NewErrorMapper()

	mapped := mapper.MapError(errors.New("pq: out of shared memory"), "list products")

	assert.ErrorIs(t, mapped, domainErr.ErrDatabaseConnection)
	assert.Contains(t, mapped.Error(), "list products")
	assert.Contains(t, mapped.Error(), "out of shared memory")
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t,
		mapper.MapTransactionNotFoundError(gorm.ErrRecordNotFound),
		domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t,
		mapper.MapProductNotFoundError(gorm.ErrRecordNotFound),
		domainErr.ErrProductNotFound)

	// Non-missing-row failures fall back to the generic mapping
	assert.ErrorIs(t,
		mapper.MapProductNotFoundError(errors.New("connection refused")),
		domainErr.ErrDatabaseConnection)
}

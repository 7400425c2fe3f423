package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, errorMapper *database.ErrorMapper) *TransactionRepository {
	return &TransactionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  errorMapper,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	m := model.Transaction{
		RefID:            txn.RefID,
		ProductCode:      txn.ProductCode,
		ProductName:      txn.ProductName,
		Category:         txn.Category,
		TargetNumber:     txn.TargetNumber,
		Amount:           txn.Amount,
		Status:           string(txn.Status),
		PaymentMethod:    txn.PaymentMethod,
		PaymentReference: txn.PaymentReference,
		PaymentURL:       txn.PaymentURL,
		QRContent:        txn.QRContent,
		FulfillmentID:    txn.FulfillmentID,
		SerialNumber:     txn.SerialNumber,
		StatusMessage:    txn.StatusMessage,
		CreatedAt:        txn.CreatedAt,
		UpdatedAt:        txn.UpdatedAt,
	}
	if !txn.ExpiresAt.IsZero() {
		expiresAt := txn.ExpiresAt
		m.ExpiresAt = &expiresAt
	}
	return m
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	txn := &entity.Transaction{
		ID:               m.ID,
		RefID:            m.RefID,
		ProductCode:      m.ProductCode,
		ProductName:      m.ProductName,
		Category:         m.Category,
		TargetNumber:     m.TargetNumber,
		Amount:           m.Amount,
		Status:           entity.TransactionStatus(m.Status),
		PaymentMethod:    m.PaymentMethod,
		PaymentReference: m.PaymentReference,
		PaymentURL:       m.PaymentURL,
		QRContent:        m.QRContent,
		FulfillmentID:    m.FulfillmentID,
		SerialNumber:     m.SerialNumber,
		StatusMessage:    m.StatusMessage,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.ExpiresAt != nil {
		txn.ExpiresAt = *m.ExpiresAt
	}
	return txn
}

// Create saves a new transaction and assigns its internal ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"ref_id":       txn.RefID,
		"product_code": txn.ProductCode,
	})

	m := r.entityToModel(txn)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		mapped := r.errorMapper.MapError(result.Error, "create transaction")
		if errors.Is(mapped, errs.ErrInvalidRefID) {
			r.logger.Warn("Duplicate transaction reference", map[string]any{
				"ref_id": txn.RefID,
			})
			return mapped
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"ref_id": txn.RefID,
			"error":  result.Error.Error(),
		})
		return mapped
	}

	txn.ID = m.ID
	r.logger.Info("Transaction persisted", map[string]any{
		"ref_id": txn.RefID,
		"id":     m.ID,
	})
	return nil
}

// GetByRefID retrieves a transaction by its correlation reference
func (r *TransactionRepository) GetByRefID(ctx context.Context, refID string) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).
		Where("ref_id = ?", refID).
		First(&m)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Failed to get transaction", map[string]any{
				"ref_id": refID,
				"error":  result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapTransactionNotFoundError(result.Error)
	}

	return r.modelToEntity(&m), nil
}

// UpdateStatusIf performs the atomic compare-and-set status transition as a
// single conditional UPDATE. The guard on the current status is part of the
// WHERE clause, so two concurrent writers can never both win.
func (r *TransactionRepository) UpdateStatusIf(
	ctx context.Context,
	refID string,
	from, to entity.TransactionStatus,
	update persistence.StatusUpdate,
) (bool, error) {
	values := map[string]any{
		"status":     string(to),
		"updated_at": r.timeProvider.Now(),
	}
	if update.FulfillmentID != nil {
		values["fulfillment_id"] = *update.FulfillmentID
	}
	if update.SerialNumber != nil {
		values["serial_number"] = *update.SerialNumber
	}
	if update.StatusMessage != nil {
		values["status_message"] = *update.StatusMessage
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("ref_id = ? AND status = ?", refID, string(from)).
		Updates(values)

	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"ref_id": refID,
			"from":   string(from),
			"to":     string(to),
			"error":  result.Error.Error(),
		})
		return false, r.errorMapper.MapError(result.Error, "update transaction status")
	}

	won := result.RowsAffected == 1
	r.logger.Debug("Status transition attempted", map[string]any{
		"ref_id": refID,
		"from":   string(from),
		"to":     string(to),
		"won":    won,
	})
	return won, nil
}

// FindStalePending returns references of pending transactions created before
// the cutoff, oldest first
func (r *TransactionRepository) FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	var refs []string
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ? AND created_at < ?", string(entity.StatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Pluck("ref_id", &refs)

	if result.Error != nil {
		r.logger.Error("Failed to list stale pending transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, "list stale pending transactions")
	}
	return refs, nil
}

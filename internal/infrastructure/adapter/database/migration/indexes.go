package migration

import (
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates PostgreSQL indexes beyond the model declarations
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	// Unique index on ref_id for fast idempotency checks
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_ref_id
		ON transactions (ref_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique index on ref_id", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index over pending transactions. The expiry sweep scans
	// only this slice of the table.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_pending_created
		ON transactions (created_at)
		WHERE status = 'pending'
	`).Error; err != nil {
		m.logger.Error("Failed to create pending partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for customer history lookups by target number
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_target_created
		ON transactions (target_number, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create target_number composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index over the active catalog, listing only ever filters on it
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_products_active_category
		ON products (category, product_name)
		WHERE active = true
	`).Error; err != nil {
		m.logger.Error("Failed to create active products index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/Tatang94/atz/internal/domain/entity"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProductRepository implements persistence.ProductRepository using GORM
type ProductRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger, errorMapper *database.ErrorMapper) *ProductRepository {
	return &ProductRepository{db: db, logger: logger, errorMapper: errorMapper}
}

// modelToEntity converts a product model to an entity
func modelToProduct(m *model.Product) entity.Product {
	return entity.Product{
		ID:          m.ID,
		SKU:         m.SKU,
		ProductName: m.ProductName,
		Category:    m.Category,
		Brand:       m.Brand,
		Type:        m.Type,
		Price:       m.Price,
		BuyerPrice:  m.BuyerPrice,
		Active:      m.Active,
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetBySKU retrieves a product by its SKU
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var m model.Product
	result := r.db.WithContext(ctx).Where("sku = ?", sku).First(&m)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Failed to get product", map[string]any{
				"sku":   sku,
				"error": result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapProductNotFoundError(result.Error)
	}

	product := modelToProduct(&m)
	return &product, nil
}

// ListActive returns all active products
func (r *ProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("active = ?", true))
}

// ListByCategory returns active products in one category
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("active = ? AND category = ?", true, category))
}

func (r *ProductRepository) list(ctx context.Context, query *gorm.DB) ([]entity.Product, error) {
	var rows []model.Product
	result := query.Order("product_name ASC").Find(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to list products", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, "list products")
	}

	products := make([]entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, modelToProduct(&rows[i]))
	}
	return products, nil
}

package persistence

import (
	"context"

	"github.com/Tatang94/atz/internal/domain/entity"
)

// ProductRepository defines read access to the product catalog
type ProductRepository interface {
	// GetBySKU retrieves a product by its SKU regardless of active flag
	//
	// Possible errors:
	// - ErrProductNotFound: If no product matches the SKU
	// - ErrDatabaseConnection: If database connection fails
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// ListActive returns all active products
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListActive(ctx context.Context) ([]entity.Product, error)

	// ListByCategory returns active products in one category
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByCategory(ctx context.Context, category string) ([]entity.Product, error)
}

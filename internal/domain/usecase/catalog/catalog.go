package catalog

import (
	"context"

	"github.com/Tatang94/atz/internal/domain/entity"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

// UseCase exposes read-only catalog lookups
type UseCase struct {
	products persistence.ProductRepository
	logger   coreport.Logger
}

// NewUseCase creates a catalog use case
func NewUseCase(products persistence.ProductRepository, logger coreport.Logger) *UseCase {
	return &UseCase{products: products, logger: logger}
}

// ListProducts returns all active products
func (u *UseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return u.products.ListActive(ctx)
}

// ListByCategory returns active products in one category
func (u *UseCase) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return u.products.ListByCategory(ctx, category)
}

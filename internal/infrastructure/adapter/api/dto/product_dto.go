package dto

import "github.com/Tatang94/atz/internal/domain/entity"

// ProductResponse represents a catalog entry in API responses
type ProductResponse struct {
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Brand       string `json:"brand,omitempty"`
	Type        string `json:"type,omitempty"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
}

// NewProductResponses maps catalog entries to their API representation.
// Only the buyer price is exposed, upstream cost stays internal.
func NewProductResponses(products []entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ProductResponse{
			SKU:         p.SKU,
			ProductName: p.ProductName,
			Category:    p.Category,
			Brand:       p.Brand,
			Type:        p.Type,
			Price:       p.BuyerPrice,
			Description: p.Description,
		})
	}
	return responses
}

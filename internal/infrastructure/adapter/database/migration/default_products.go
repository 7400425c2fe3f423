package migration

import (
	"context"
	"errors"

	"github.com/Tatang94/atz/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Starter catalog so a fresh install can serve purchases before the
// operator imports a full price list.
var defaultProducts = []model.Product{
	{SKU: "xld10", ProductName: "XL 10.000", Category: "pulsa", Brand: "XL", Type: "Umum", Price: 11200, BuyerPrice: 10800, Active: true},
	{SKU: "tsel10", ProductName: "Telkomsel 10.000", Category: "pulsa", Brand: "TELKOMSEL", Type: "Umum", Price: 11500, BuyerPrice: 11000, Active: true},
	{SKU: "axis5", ProductName: "AXIS 5.000", Category: "pulsa", Brand: "AXIS", Type: "Umum", Price: 6200, BuyerPrice: 5900, Active: true},
	{SKU: "dana10", ProductName: "DANA 10.000", Category: "emoney", Brand: "DANA", Type: "Umum", Price: 10900, BuyerPrice: 10500, Active: true},
	{SKU: "ovo10", ProductName: "OVO 10.000", Category: "emoney", Brand: "OVO", Type: "Umum", Price: 10900, BuyerPrice: 10500, Active: true},
	{SKU: "ff5", ProductName: "Free Fire 5 Diamond", Category: "games", Brand: "FREE FIRE", Type: "Umum", Price: 1100, BuyerPrice: 900, Active: true},
	{SKU: "ml5", ProductName: "Mobile Legends 5 Diamond", Category: "games", Brand: "MOBILE LEGENDS", Type: "Umum", Price: 1600, BuyerPrice: 1400, Active: true},
	{SKU: "pln20", ProductName: "PLN Token 20.000", Category: "pln", Brand: "PLN", Type: "Umum", Price: 20600, BuyerPrice: 20200, Active: true},
}

// SeedDefaultProducts inserts the starter catalog, skipping SKUs that already exist
func SeedDefaultProducts(ctx context.Context, db *gorm.DB) error {
	for _, product := range defaultProducts {
		var existing model.Product
		err := db.WithContext(ctx).Where("sku = ?", product.SKU).First(&existing).Error
		if err == nil {
			continue // Already seeded
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.WithContext(ctx).Create(&product).Error; err != nil {
			return err
		}
	}

	return nil
}

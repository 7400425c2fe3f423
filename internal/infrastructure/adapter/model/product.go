package model

import (
	"time"
)

// Product represents the database model for catalog entries
type Product struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	SKU         string `gorm:"uniqueIndex;not null;size:64"`
	ProductName string `gorm:"not null;size:255"`
	Category    string `gorm:"not null;size:50;index"`
	Brand       string `gorm:"size:100"`
	Type        string `gorm:"size:20"`
	Price       int64  `gorm:"not null"`
	BuyerPrice  int64  `gorm:"not null"`
	Active      bool   `gorm:"not null;default:true"`
	Description string `gorm:"type:text"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

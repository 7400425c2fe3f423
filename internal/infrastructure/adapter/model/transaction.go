package model

import (
	"time"
)

// Transaction represents the database model for purchase transactions.
// ref_id is the only external lookup key; status and created_at are indexed
// for the expiry sweep.
type Transaction struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	RefID            string `gorm:"uniqueIndex;not null;size:64"`
	ProductCode      string `gorm:"not null;size:64"`
	ProductName      string `gorm:"not null;size:255"`
	Category         string `gorm:"not null;size:50"`
	TargetNumber     string `gorm:"not null;size:50"`
	Amount           int64  `gorm:"not null"`
	Status           string `gorm:"not null;size:20;index:idx_transactions_status_created,priority:1"`
	PaymentMethod    string `gorm:"size:50"`
	PaymentReference string `gorm:"size:255"`
	PaymentURL       string `gorm:"size:512"`
	QRContent        string `gorm:"type:text"`
	FulfillmentID    string `gorm:"size:255"`
	SerialNumber     string `gorm:"size:255"`
	StatusMessage    string `gorm:"type:text"`
	ExpiresAt        *time.Time
	CreatedAt        time.Time `gorm:"not null;index:idx_transactions_status_created,priority:2"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

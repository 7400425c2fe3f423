package dto

import "github.com/Tatang94/atz/internal/domain/entity"

// CreateTransactionRequest represents the API request for creating a purchase
type CreateTransactionRequest struct {
	ProductCode   string `json:"productCode" binding:"required"`
	TargetNumber  string `json:"targetNumber" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	RefID        string `json:"refId"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	TargetNumber string `json:"targetNumber"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	PaymentURL   string `json:"paymentUrl,omitempty"`
	QRContent    string `json:"qrContent,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Message      string `json:"message,omitempty"`
	ExpiresAt    string `json:"expiresAt,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// NewTransactionResponse maps a transaction to its API representation
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	view := txn.ToView()
	return TransactionResponse{
		RefID:        view.RefID,
		ProductCode:  view.ProductCode,
		ProductName:  view.ProductName,
		TargetNumber: view.TargetNumber,
		Amount:       view.Amount,
		Status:       view.Status,
		PaymentURL:   view.PaymentURL,
		QRContent:    view.QRContent,
		SerialNumber: view.SerialNumber,
		Message:      view.Message,
		ExpiresAt:    view.ExpiresAt,
		CreatedAt:    view.CreatedAt,
	}
}

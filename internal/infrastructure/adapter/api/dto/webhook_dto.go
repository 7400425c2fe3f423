package dto

// CallbackRequest represents the payment gateway callback payload.
// The gateway posts either form-encoded or JSON bodies, field names follow
// its wire format.
type CallbackRequest struct {
	UniqueCode string `json:"unique_code" form:"unique_code" binding:"required"`
	Status     string `json:"status" form:"status" binding:"required"`
	Amount     int64  `json:"amount" form:"amount"`
	Signature  string `json:"signature" form:"signature"`
}

// CallbackResponse acknowledges a processed callback
type CallbackResponse struct {
	Message    string `json:"message"`
	UniqueCode string `json:"unique_code"`
	Status     string `json:"status"`
}

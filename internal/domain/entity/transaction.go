package entity

import (
	"time"

	errs "github.com/Tatang94/atz/internal/domain/error"
	tport "github.com/Tatang94/atz/internal/domain/port/core"
)

// TransactionStatus defines the lifecycle states of a purchase
type TransactionStatus string

// Transaction lifecycle states
const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusSuccess    TransactionStatus = "success"
	StatusFailed     TransactionStatus = "failed"
	StatusExpired    TransactionStatus = "expired"
)

// IsTerminal reports whether no further transition may leave this status
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusExpired
}

// PaymentStatus is the closed vocabulary the payment gateway adapter maps into.
// Provider-specific strings never cross this boundary.
type PaymentStatus string

// Payment statuses as reported by the gateway adapter
const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentExpired  PaymentStatus = "expired"
	PaymentRejected PaymentStatus = "rejected"
)

// DeliveryStatus is the closed vocabulary the fulfillment adapter maps into
type DeliveryStatus string

// Delivery statuses as reported by the fulfillment adapter
const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryFailed    DeliveryStatus = "failed"
)

// Transaction represents a single digital-goods purchase. All fields except
// Status and the fulfillment result fields are write-once at creation.
type Transaction struct {
	ID               uint64            // Internal identifier, assigned by the store
	RefID            string            // Externally-visible correlation reference, unique
	ProductCode      string            // Catalog SKU being purchased
	ProductName      string            // Resolved name, snapshotted at creation
	Category         string            // Product category (pulsa, data, pln, ...)
	TargetNumber     string            // Phone number / customer id the good is delivered to
	Amount           int64             // Price in rupiah, frozen at creation
	Status           TransactionStatus // Current lifecycle state
	PaymentMethod    string            // Gateway service/channel id chosen by the caller
	PaymentReference string            // pay_id returned by the gateway, set once
	PaymentURL       string            // Checkout URL presented to the customer
	QRContent        string            // QR payload, when the channel provides one
	FulfillmentID    string            // Provider transaction id, set on completion
	SerialNumber     string            // Serial number of the delivered good
	StatusMessage    string            // Human-readable outcome message
	ExpiresAt        time.Time         // Payment instrument validity deadline
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransaction creates a pending transaction for a resolved product
func NewTransaction(
	refID string,
	product *Product,
	targetNumber string,
	paymentMethod string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if refID == "" {
		return nil, errs.ErrInvalidRefID
	}
	if product == nil {
		return nil, errs.ErrProductNotFound
	}
	if err := product.ValidateTarget(targetNumber); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		RefID:         refID,
		ProductCode:   product.SKU,
		ProductName:   product.ProductName,
		Category:      product.Category,
		TargetNumber:  targetNumber,
		Amount:        product.BuyerPrice,
		Status:        StatusPending,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AttachPaymentInstrument records the gateway's payment instrument.
// PaymentReference is set exactly once.
func (t *Transaction) AttachPaymentInstrument(payRef, paymentURL, qrContent string, expiresAt time.Time) error {
	if t.PaymentReference != "" {
		return errs.ErrPaymentReferenceSet
	}
	t.PaymentReference = payRef
	t.PaymentURL = paymentURL
	t.QRContent = qrContent
	t.ExpiresAt = expiresAt
	return nil
}

// TransactionView is the public projection of a transaction returned by the API
type TransactionView struct {
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

// ToView converts the transaction to its public API projection
func (t *Transaction) ToView() TransactionView {
	view := TransactionView{
		RefID:        t.RefID,
		ProductCode:  t.ProductCode,
		ProductName:  t.ProductName,
		TargetNumber: t.TargetNumber,
		Amount:       t.Amount,
		Status:       string(t.Status),
		PaymentURL:   t.PaymentURL,
		QRContent:    t.QRContent,
		SerialNumber: t.SerialNumber,
		Message:      t.StatusMessage,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if !t.ExpiresAt.IsZero() {
		view.ExpiresAt = t.ExpiresAt.Format(time.RFC3339)
	}
	return view
}

package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	"github.com/Tatang94/atz/internal/domain/port/gateway"
	mockcore "github.com/Tatang94/atz/mocks/port/core"
	mockgateway "github.com/Tatang94/atz/mocks/port/gateway"
	mockpersistence "github.com/Tatang94/atz/mocks/port/persistence"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func paymentInstrument(expiresAt time.Time) *gateway.PaymentInstrument {
	return &gateway.PaymentInstrument{
		PaymentReference: "pay-123",
		CheckoutURL:      "https://checkout.example/pay-123",
		QRContent:        "00020101qr",
		ExpiresAt:        expiresAt,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:          1,
		SKU:         "xld10",
		ProductName: "XL Data 10GB",
		Category:    "data",
		Brand:       "XL",
		Type:        "prepaid",
		Price:       40000,
		BuyerPrice:  42000,
		Active:      true,
	}
}

type serviceMocks struct {
	transactions *mockpersistence.MockTransactionRepository
	products     *mockpersistence.MockProductRepository
	payments     *mockgateway.MockPaymentGateway
	fulfillment  *mockgateway.MockFulfillmentProvider
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

func newServiceMocks() *serviceMocks {
	m := &serviceMocks{
		transactions: new(mockpersistence.MockTransactionRepository),
		products:     new(mockpersistence.MockProductRepository),
		payments:     new(mockgateway.MockPaymentGateway),
		fulfillment:  new(mockgateway.MockFulfillmentProvider),
		timeProvider: new(mockcore.MockTimeProvider),
		logger:       new(mockcore.MockLogger),
	}
	// Logging is incidental to the behavior under test
	m.logger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	m.logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	m.logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	m.logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	m.timeProvider.On("Now").Return(testNow).Maybe()
	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(
		m.transactions,
		m.products,
		m.payments,
		m.fulfillment,
		m.timeProvider,
		m.logger,
		30*time.Minute,
	)
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	m.transactions.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.payments.AssertExpectations(t)
	m.fulfillment.AssertExpectations(t)
}

func TestService_CreateTransaction_Success(t *testing.T) {
	m := newServiceMocks()
	product := testProduct()
	expiresAt := testNow.Add(30 * time.Minute)

	m.products.EXPECT().GetBySKU(mock.Anything, "xld10").Return(product, nil)
	m.payments.EXPECT().
		CreatePayment(mock.Anything, mock.AnythingOfType("string"), int64(42000), "XL Data 10GB - 081234567890", 30*time.Minute).
		Return(paymentInstrument(expiresAt), nil)
	m.transactions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	txn, err := m.service().CreateTransaction(context.Background(), CreateRequest{
		ProductCode:   "xld10",
		TargetNumber:  "081234567890",
		PaymentMethod: "11",
	})

	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.True(t, strings.HasPrefix(txn.RefID, "TRX"))
	assert.Equal(t, entity.StatusPending, txn.Status)
	assert.Equal(t, "xld10", txn.ProductCode)
	assert.Equal(t, "XL Data 10GB", txn.ProductName)
	assert.Equal(t, int64(42000), txn.Amount)
	assert.Equal(t, "pay-123", txn.PaymentReference)
	assert.Equal(t, "https://checkout.example/pay-123", txn.PaymentURL)
	assert.Equal(t, expiresAt, txn.ExpiresAt)
	assert.Equal(t, testNow, txn.CreatedAt)
	m.assertExpectations(t)
}

func TestService_CreateTransaction_ProductErrors(t *testing.T) {
	testCases := []struct {
		name          string
		productCode   string
		targetNumber  string
		mockSetup     func(m *serviceMocks)
		expectedError error
	}{
		{
			name:         "product not found",
			productCode:  "missing",
			targetNumber: "081234567890",
			mockSetup: func(m *serviceMocks) {
				m.products.EXPECT().GetBySKU(mock.Anything, "missing").Return(nil, errs.ErrProductNotFound)
			},
			expectedError: errs.ErrProductNotFound,
		},
		{
			name:         "inactive product is treated as absent",
			productCode:  "xld10",
			targetNumber: "081234567890",
			mockSetup: func(m *serviceMocks) {
				product := testProduct()
				product.Active = false
				m.products.EXPECT().GetBySKU(mock.Anything, "xld10").Return(product, nil)
			},
			expectedError: errs.ErrProductNotFound,
		},
		{
			name:         "invalid target number",
			productCode:  "xld10",
			targetNumber: "12345",
			mockSetup: func(m *serviceMocks) {
				m.products.EXPECT().GetBySKU(mock.Anything, "xld10").Return(testProduct(), nil)
			},
			expectedError: errs.ErrInvalidTargetNumber,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			txn, err := m.service().CreateTransaction(context.Background(), CreateRequest{
				ProductCode:  tc.productCode,
				TargetNumber: tc.targetNumber,
			})

			assert.Nil(t, txn)
			assert.ErrorIs(t, err, tc.expectedError)
			m.payments.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			m.assertExpectations(t)
		})
	}
}

func TestService_CreateTransaction_GatewayFailureWritesNothing(t *testing.T) {
	m := newServiceMocks()

	m.products.EXPECT().GetBySKU(mock.Anything, "xld10").Return(testProduct(), nil)
	m.payments.EXPECT().
		CreatePayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errs.ErrGatewayUnavailable)

	txn, err := m.service().CreateTransaction(context.Background(), CreateRequest{
		ProductCode:  "xld10",
		TargetNumber: "081234567890",
	})

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	m.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestService_CreateTransaction_PersistenceFailurePropagates(t *testing.T) {
	m := newServiceMocks()

	m.products.EXPECT().GetBySKU(mock.Anything, "xld10").Return(testProduct(), nil)
	m.payments.EXPECT().
		CreatePayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(paymentInstrument(testNow.Add(30*time.Minute)), nil)
	m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrInvalidRefID)

	txn, err := m.service().CreateTransaction(context.Background(), CreateRequest{
		ProductCode:  "xld10",
		TargetNumber: "081234567890",
	})

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, errs.ErrInvalidRefID)
	m.assertExpectations(t)
}

func TestNewRefID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newRefID()
		assert.True(t, strings.HasPrefix(id, "TRX"))
		assert.Len(t, id, 35)
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "reference must be unique")
		seen[id] = true
	}
}

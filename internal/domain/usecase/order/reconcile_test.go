package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	"github.com/Tatang94/atz/internal/domain/port/gateway"
	"github.com/Tatang94/atz/internal/domain/port/persistence"
)

func pendingTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:               7,
		RefID:            "TRXABC",
		ProductCode:      "xld10",
		ProductName:      "XL Data 10GB",
		Category:         "data",
		TargetNumber:     "081234567890",
		Amount:           42000,
		Status:           entity.StatusPending,
		PaymentReference: "pay-123",
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func transactionWithStatus(status entity.TransactionStatus) *entity.Transaction {
	txn := pendingTransaction()
	txn.Status = status
	return txn
}

func deliveredResult() *gateway.DeliveryResult {
	return &gateway.DeliveryResult{
		FulfillmentID: "DF-900",
		Status:        entity.DeliveryDelivered,
		SerialNumber:  "SN-778899",
		Message:       "delivered",
	}
}

func TestService_HandlePaymentCallback_Rejections(t *testing.T) {
	testCases := []struct {
		name          string
		refID         string
		signature     string
		mockSetup     func(m *serviceMocks)
		expectedError error
	}{
		{
			name:          "empty reference",
			refID:         "",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidRequest,
		},
		{
			name:      "invalid signature",
			refID:     "TRXABC",
			signature: "bad-signature",
			mockSetup: func(m *serviceMocks) {
				m.payments.EXPECT().VerifyCallback("TRXABC", "bad-signature").Return(false)
			},
			expectedError: errs.ErrInvalidCallback,
		},
		{
			name:      "unknown reference",
			refID:     "TRXGHOST",
			signature: "good-signature",
			mockSetup: func(m *serviceMocks) {
				m.payments.EXPECT().VerifyCallback("TRXGHOST", "good-signature").Return(true)
				m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXGHOST").Return(nil, errs.ErrTransactionNotFound)
			},
			expectedError: errs.ErrTransactionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			status, err := m.service().HandlePaymentCallback(context.Background(), tc.refID, "Success", 42000, tc.signature)

			assert.Empty(t, status)
			assert.ErrorIs(t, err, tc.expectedError)
			m.transactions.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.assertExpectations(t)
		})
	}
}

func TestService_HandlePaymentCallback_PaidWinsAndFulfills(t *testing.T) {
	m := newServiceMocks()

	m.payments.EXPECT().VerifyCallback("TRXABC", "sig").Return(true)
	m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
	m.payments.EXPECT().NormalizeStatus("Success").Return(entity.PaymentPaid)
	m.transactions.EXPECT().
		UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{}).
		Return(true, nil)
	m.fulfillment.EXPECT().Deliver(mock.Anything, "xld10", "081234567890", "TRXABC").Return(deliveredResult(), nil)
	m.transactions.EXPECT().
		UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusProcessing, entity.StatusSuccess,
			mock.MatchedBy(func(u persistence.StatusUpdate) bool {
				return u.FulfillmentID != nil && *u.FulfillmentID == "DF-900" &&
					u.SerialNumber != nil && *u.SerialNumber == "SN-778899"
			})).
		Return(true, nil)

	status, err := m.service().HandlePaymentCallback(context.Background(), "TRXABC", "Success", 42000, "sig")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, status)
	m.assertExpectations(t)
}

func TestService_HandlePaymentCallback_PaidLosesRace(t *testing.T) {
	// The poll path already moved the transaction; the callback must treat
	// the lost compare-and-set as success and never call the provider.
	m := newServiceMocks()

	m.payments.EXPECT().VerifyCallback("TRXABC", "sig").Return(true)
	m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil).Once()
	m.payments.EXPECT().NormalizeStatus("Success").Return(entity.PaymentPaid)
	m.transactions.EXPECT().
		UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{}).
		Return(false, nil)
	m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(transactionWithStatus(entity.StatusSuccess), nil).Once()

	status, err := m.service().HandlePaymentCallback(context.Background(), "TRXABC", "Success", 42000, "sig")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, status)
	m.fulfillment.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestService_HandlePaymentCallback_ExpiredAndRejected(t *testing.T) {
	testCases := []struct {
		name       string
		normalized entity.PaymentStatus
		message    string
	}{
		{name: "expired", normalized: entity.PaymentExpired, message: "payment expired by gateway"},
		{name: "rejected", normalized: entity.PaymentRejected, message: "payment rejected by gateway"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()

			m.payments.EXPECT().VerifyCallback("TRXABC", "sig").Return(true)
			m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
			m.payments.EXPECT().NormalizeStatus(tc.name).Return(tc.normalized)
			m.transactions.EXPECT().
				UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusPending, entity.StatusFailed,
					mock.MatchedBy(func(u persistence.StatusUpdate) bool {
						return u.StatusMessage != nil && *u.StatusMessage == tc.message
					})).
				Return(true, nil)

			status, err := m.service().HandlePaymentCallback(context.Background(), "TRXABC", tc.name, 42000, "sig")

			assert.NoError(t, err)
			assert.Equal(t, entity.StatusFailed, status)
			m.fulfillment.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.assertExpectations(t)
		})
	}
}

func TestService_HandlePaymentCallback_AmountMismatchStillProcessed(t *testing.T) {
	m := newServiceMocks()

	m.payments.EXPECT().VerifyCallback("TRXABC", "sig").Return(true)
	m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
	m.payments.EXPECT().NormalizeStatus("Pending").Return(entity.PaymentPending)

	status, err := m.service().HandlePaymentCallback(context.Background(), "TRXABC", "Pending", 99999, "sig")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, status)
	m.logger.AssertCalled(t, "Warn", "Callback amount differs from recorded amount", mock.Anything)
	m.assertExpectations(t)
}

func TestService_PollPaymentStatus(t *testing.T) {
	testCases := []struct {
		name           string
		mockSetup      func(m *serviceMocks)
		expectedStatus entity.TransactionStatus
		expectedError  error
	}{
		{
			name: "terminal transaction answers from store",
			mockSetup: func(m *serviceMocks) {
				m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(transactionWithStatus(entity.StatusSuccess), nil)
			},
			expectedStatus: entity.StatusSuccess,
		},
		{
			name: "gateway outage keeps stored status",
			mockSetup: func(m *serviceMocks) {
				m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
				m.payments.EXPECT().CheckStatus(mock.Anything, "TRXABC").Return(nil, errs.ErrGatewayUnavailable)
			},
			expectedStatus: entity.StatusPending,
			expectedError:  errs.ErrGatewayUnavailable,
		},
		{
			name: "still unpaid is a no-op",
			mockSetup: func(m *serviceMocks) {
				m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
				m.payments.EXPECT().CheckStatus(mock.Anything, "TRXABC").Return(&gateway.PaymentState{Status: entity.PaymentPending}, nil)
			},
			expectedStatus: entity.StatusPending,
		},
		{
			name: "paid poll wins and fulfills",
			mockSetup: func(m *serviceMocks) {
				m.transactions.EXPECT().GetByRefID(mock.Anything, "TRXABC").Return(pendingTransaction(), nil)
				m.payments.EXPECT().CheckStatus(mock.Anything, "TRXABC").Return(&gateway.PaymentState{Status: entity.PaymentPaid, Amount: 42000}, nil)
				m.transactions.EXPECT().
					UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusPending, entity.StatusProcessing, persistence.StatusUpdate{}).
					Return(true, nil)
				m.fulfillment.EXPECT().Deliver(mock.Anything, "xld10", "081234567890", "TRXABC").Return(deliveredResult(), nil)
				m.transactions.EXPECT().
					UpdateStatusIf(mock.Anything, "TRXABC", entity.StatusProcessing, entity.StatusSuccess, mock.Anything).
					Return(true, nil)
			},
			expectedStatus: entity.StatusSuccess,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			status, err := m.service().PollPaymentStatus(context.Background(), "TRXABC")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedStatus, status)
			m.assertExpectations(t)
		})
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	orderUseCase "github.com/Tatang94/atz/internal/domain/usecase/order"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/dto"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/logger"
	mockcore "github.com/Tatang94/atz/mocks/port/core"
	mockgateway "github.com/Tatang94/atz/mocks/port/gateway"
	mockpersistence "github.com/Tatang94/atz/mocks/port/persistence"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type webhookFixture struct {
	transactions *mockpersistence.MockTransactionRepository
	payments     *mockgateway.MockPaymentGateway
	router       *gin.Engine
}

func newWebhookFixture() *webhookFixture {
	transactions := new(mockpersistence.MockTransactionRepository)
	products := new(mockpersistence.MockProductRepository)
	payments := new(mockgateway.MockPaymentGateway)
	fulfillment := new(mockgateway.MockFulfillmentProvider)
	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(time.Now()).Maybe()

	noop := logger.NewNoopLogger()
	service := orderUseCase.NewService(transactions, products, payments, fulfillment, timeProvider, noop, 30*time.Minute)
	h := NewWebhookHandler(service, noop)

	router := gin.New()
	router.POST("/api/payment-callback", h.HandlePaymentCallback)

	return &webhookFixture{
		transactions: transactions,
		payments:     payments,
		router:       router,
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_SettledTransactionAcknowledges(t *testing.T) {
	f := newWebhookFixture()

	f.payments.EXPECT().VerifyCallback("TRX1", "sig").Return(true)
	f.transactions.EXPECT().GetByRefID(mock.Anything, "TRX1").Return(&entity.Transaction{
		RefID:  "TRX1",
		Amount: 10000,
		Status: entity.StatusSuccess,
	}, nil)
	f.payments.EXPECT().NormalizeStatus("Success").Return(entity.PaymentPaid)
	f.transactions.EXPECT().
		UpdateStatusIf(mock.Anything, "TRX1", entity.StatusPending, entity.StatusProcessing, mock.Anything).
		Return(false, nil)

	w := postJSON(f.router, "/api/payment-callback", dto.CallbackRequest{
		UniqueCode: "TRX1",
		Status:     "Success",
		Amount:     10000,
		Signature:  "sig",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CallbackResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TRX1", resp.UniqueCode)
	assert.Equal(t, "success", resp.Status)
}

func TestWebhookHandler_AcceptsFormEncoding(t *testing.T) {
	f := newWebhookFixture()

	f.payments.EXPECT().VerifyCallback("TRX1", "sig").Return(true)
	f.transactions.EXPECT().GetByRefID(mock.Anything, "TRX1").Return(&entity.Transaction{
		RefID:  "TRX1",
		Amount: 10000,
		Status: entity.StatusFailed,
	}, nil)
	f.payments.EXPECT().NormalizeStatus("Expired").Return(entity.PaymentExpired)
	f.transactions.EXPECT().
		UpdateStatusIf(mock.Anything, "TRX1", entity.StatusPending, entity.StatusFailed, mock.Anything).
		Return(false, nil)

	form := url.Values{}
	form.Set("unique_code", "TRX1")
	form.Set("status", "Expired")
	form.Set("signature", "sig")
	req := httptest.NewRequest(http.MethodPost, "/api/payment-callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		body           dto.CallbackRequest
		mockSetup      func(f *webhookFixture)
		expectedStatus int
		expectedReason string
	}{
		{
			name: "invalid signature",
			body: dto.CallbackRequest{UniqueCode: "TRX1", Status: "Success", Signature: "bad"},
			mockSetup: func(f *webhookFixture) {
				f.payments.EXPECT().VerifyCallback("TRX1", "bad").Return(false)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: errs.ReasonInvalidCallback,
		},
		{
			name: "unknown transaction",
			body: dto.CallbackRequest{UniqueCode: "TRXGHOST", Status: "Success", Signature: "sig"},
			mockSetup: func(f *webhookFixture) {
				f.payments.EXPECT().VerifyCallback("TRXGHOST", "sig").Return(true)
				f.transactions.EXPECT().GetByRefID(mock.Anything, "TRXGHOST").Return(nil, errs.ErrTransactionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedReason: errs.ReasonTransactionNotFound,
		},
		{
			name:           "missing required fields",
			body:           dto.CallbackRequest{Status: "Success"},
			mockSetup:      func(f *webhookFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: errs.ReasonInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWebhookFixture()
			tc.mockSetup(f)

			w := postJSON(f.router, "/api/payment-callback", tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			var resp dto.ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedReason, resp.Reason)
			f.payments.AssertExpectations(t)
			f.transactions.AssertExpectations(t)
		})
	}
}

package digiflazz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/logger"
	"github.com/Tatang94/atz/internal/infrastructure/signing"
)

const (
	testUsername = "buyer"
	testAPIKey   = "dev-api-key"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Username: testUsername,
		APIKey:   testAPIKey,
		BaseURL:  server.URL,
		Timeout:  5 * time.Second,
	}, logger.NewNoopLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	testCases := []struct {
		name   string
		config Config
	}{
		{name: "missing username", config: Config{APIKey: testAPIKey}},
		{name: "missing api key", config: Config{Username: testUsername}},
		{name: "missing both", config: Config{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.config, logger.NewNoopLogger())
			assert.Nil(t, client)
			assert.ErrorIs(t, err, errs.ErrMisconfiguredGateway)
		})
	}
}

func TestClient_Deliver(t *testing.T) {
	var captured transactionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"ref_id": "TRX1",
				"status": "Sukses",
				"message": "Transaksi Sukses",
				"trx_id": "DF-900",
				"sn": "SN-778899"
			}
		}`))
	})

	result, err := client.Deliver(context.Background(), "xld10", "081234567890", "TRX1")

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, result.Status)
	assert.Equal(t, "DF-900", result.FulfillmentID)
	assert.Equal(t, "SN-778899", result.SerialNumber)

	assert.Equal(t, testUsername, captured.Username)
	assert.Equal(t, "xld10", captured.BuyerSKUCode)
	assert.Equal(t, "081234567890", captured.CustomerNo)
	assert.Equal(t, "TRX1", captured.RefID)
	assert.Equal(t, signing.Fulfillment(testUsername, testAPIKey, "TRX1"), captured.Sign)
}

func TestClient_Deliver_ProviderRejection(t *testing.T) {
	// A rejected delivery is a normal response with a failure status, not a
	// transport error; the caller decides what to do with it.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"ref_id": "TRX1", "status": "Gagal", "message": "Saldo tidak cukup"}
		}`))
	})

	result, err := client.Deliver(context.Background(), "xld10", "081234567890", "TRX1")

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryFailed, result.Status)
	assert.Equal(t, "Saldo tidak cukup", result.Message)
}

func TestClient_Deliver_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	result, err := client.Deliver(context.Background(), "xld10", "081234567890", "TRX1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrFulfillmentFailed)
}

func TestClient_CheckStatus(t *testing.T) {
	var captured transactionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"ref_id": "TRX1", "status": "Pending", "message": "Transaksi Pending", "trx_id": "DF-900"}
		}`))
	})

	result, err := client.CheckStatus(context.Background(), "TRX1")

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryPending, result.Status)
	assert.Equal(t, "DF-900", result.FulfillmentID)
	assert.Empty(t, captured.BuyerSKUCode, "status query carries no product")
	assert.Empty(t, captured.CustomerNo, "status query carries no customer")
	assert.Equal(t, signing.Fulfillment(testUsername, testAPIKey, "TRX1"), captured.Sign)
}

func TestNormalizeStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected entity.DeliveryStatus
	}{
		{raw: "Sukses", expected: entity.DeliveryDelivered},
		{raw: "success", expected: entity.DeliveryDelivered},
		{raw: " SUKSES ", expected: entity.DeliveryDelivered},
		{raw: "Pending", expected: entity.DeliveryPending},
		{raw: "Gagal", expected: entity.DeliveryFailed},
		{raw: "", expected: entity.DeliveryFailed},
		{raw: "anything else", expected: entity.DeliveryFailed},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, normalizeStatus(tc.raw), "raw status %q", tc.raw)
	}
}

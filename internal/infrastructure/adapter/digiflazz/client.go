package digiflazz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/domain/port/gateway"
	"github.com/Tatang94/atz/internal/infrastructure/signing"
)

// DefaultBaseURL is the production Digiflazz endpoint
const DefaultBaseURL = "https://api.digiflazz.com/v1"

// Config holds the immutable client settings, injected at construction
type Config struct {
	Username string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// Client is the fulfillment provider adapter for Digiflazz. Digiflazz-specific
// status strings (Sukses, Pending, Gagal) are mapped to the internal delivery
// enum at this boundary.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a Digiflazz client, failing fast on missing credentials
func NewClient(config Config, logger coreport.Logger) (*Client, error) {
	if config.Username == "" || config.APIKey == "" {
		return nil, errs.ErrMisconfiguredGateway
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}, nil
}

// transactionRequest is the Digiflazz transaction payload
type transactionRequest struct {
	Username     string `json:"username"`
	BuyerSKUCode string `json:"buyer_sku_code"`
	CustomerNo   string `json:"customer_no"`
	RefID        string `json:"ref_id"`
	Sign         string `json:"sign"`
}

// transactionResponse mirrors the Digiflazz envelope
type transactionResponse struct {
	Data struct {
		RefID        string `json:"ref_id"`
		Status       string `json:"status"`
		CustomerNo   string `json:"customer_no"`
		BuyerSKUCode string `json:"buyer_sku_code"`
		Message      string `json:"message"`
		TrxID        string `json:"trx_id"`
		SN           string `json:"sn"`
	} `json:"data"`
}

// Deliver orders delivery of the product to the target account
func (c *Client) Deliver(ctx context.Context, productCode, targetNumber, refID string) (*gateway.DeliveryResult, error) {
	payload := transactionRequest{
		Username:     c.config.Username,
		BuyerSKUCode: productCode,
		CustomerNo:   targetNumber,
		RefID:        refID,
		Sign:         signing.Fulfillment(c.config.Username, c.config.APIKey, refID),
	}

	resp, err := c.post(ctx, payload)
	if err != nil {
		return nil, errs.NewFulfillmentError(refID, productCode, err.Error(), err)
	}

	return &gateway.DeliveryResult{
		FulfillmentID: resp.Data.TrxID,
		Status:        normalizeStatus(resp.Data.Status),
		SerialNumber:  resp.Data.SN,
		Message:       resp.Data.Message,
	}, nil
}

// CheckStatus queries the provider for the delivery state of a reference.
// Digiflazz treats a status query as a transaction request with empty product
// and customer fields.
func (c *Client) CheckStatus(ctx context.Context, refID string) (*gateway.DeliveryResult, error) {
	payload := transactionRequest{
		Username: c.config.Username,
		RefID:    refID,
		Sign:     signing.Fulfillment(c.config.Username, c.config.APIKey, refID),
	}

	resp, err := c.post(ctx, payload)
	if err != nil {
		return nil, errs.NewFulfillmentError(refID, "", err.Error(), err)
	}

	return &gateway.DeliveryResult{
		FulfillmentID: resp.Data.TrxID,
		Status:        normalizeStatus(resp.Data.Status),
		SerialNumber:  resp.Data.SN,
		Message:       resp.Data.Message,
	}, nil
}

// normalizeStatus maps the Digiflazz vocabulary to the internal delivery enum
func normalizeStatus(raw string) entity.DeliveryStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sukses", "success":
		return entity.DeliveryDelivered
	case "pending":
		return entity.DeliveryPending
	default:
		return entity.DeliveryFailed
	}
}

// post sends a signed JSON request to the transaction endpoint
func (c *Client) post(ctx context.Context, payload transactionRequest) (*transactionResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/transaction", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var envelope transactionResponse
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return &envelope, nil
}

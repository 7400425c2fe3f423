package paydisini

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Tatang94/atz/internal/domain/entity"
	errs "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/domain/port/gateway"
	"github.com/Tatang94/atz/internal/infrastructure/signing"
)

// DefaultBaseURL is the production PayDisini endpoint
const DefaultBaseURL = "https://api.paydisini.co.id/v1/"

// Config holds the immutable client settings. The API key is injected at
// construction and never mutated at runtime.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client is the payment gateway adapter for PayDisini. Every outbound request
// is signed; PayDisini-specific status strings never leave this package.
type Client struct {
	config       Config
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewClient creates a PayDisini client. Construction fails fast when the API
// key is missing so no request is ever sent with an empty signature.
func NewClient(config Config, timeProvider coreport.TimeProvider, logger coreport.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, errs.ErrMisconfiguredGateway
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:       config,
		httpClient:   &http.Client{Timeout: config.Timeout},
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// paymentResponse mirrors the PayDisini envelope
type paymentResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Data    struct {
		PayID         string `json:"pay_id"`
		UniqueCode    string `json:"unique_code"`
		Status        string `json:"status"`
		Amount        string `json:"amount"`
		Expired       string `json:"expired"`
		QRContent     string `json:"qr_content"`
		QRCodeURL     string `json:"qrcode_url"`
		CheckoutURL   string `json:"checkout_url"`
		CheckoutURLV3 string `json:"checkout_url_v3"`
	} `json:"data"`
}

// CreatePayment opens a payment instrument keyed by the correlation reference
func (c *Client) CreatePayment(
	ctx context.Context,
	refID string,
	amount int64,
	description string,
	validity time.Duration,
) (*gateway.PaymentInstrument, error) {
	amountStr := strconv.FormatInt(amount, 10)
	validStr := strconv.Itoa(int(validity.Seconds()))

	form := url.Values{}
	form.Set("key", c.config.APIKey)
	form.Set("request", "new")
	form.Set("unique_code", refID)
	form.Set("service", "11") // QRIS channel
	form.Set("amount", amountStr)
	form.Set("note", description)
	form.Set("valid_time", validStr)
	form.Set("type_fee", "1")
	form.Set("payment_guide", "true")
	form.Set("signature", signing.PaymentCreate(c.config.APIKey, refID, "11", amountStr, validStr, description))

	resp, err := c.post(ctx, form)
	if err != nil {
		return nil, errs.NewGatewayError("create", refID, err.Error(), err)
	}
	if !resp.Success {
		return nil, errs.NewGatewayError("create", refID, resp.Msg, nil)
	}

	checkoutURL := resp.Data.CheckoutURLV3
	if checkoutURL == "" {
		checkoutURL = resp.Data.CheckoutURL
	}

	return &gateway.PaymentInstrument{
		PaymentReference: resp.Data.PayID,
		CheckoutURL:      checkoutURL,
		QRContent:        resp.Data.QRContent,
		ExpiresAt:        c.parseExpiry(resp.Data.Expired, validity),
	}, nil
}

// CheckStatus queries the gateway for the payment state of a reference
func (c *Client) CheckStatus(ctx context.Context, refID string) (*gateway.PaymentState, error) {
	form := url.Values{}
	form.Set("key", c.config.APIKey)
	form.Set("request", "status")
	form.Set("unique_code", refID)
	form.Set("signature", signing.PaymentStatus(c.config.APIKey, refID))

	resp, err := c.post(ctx, form)
	if err != nil {
		return nil, errs.NewGatewayError("status", refID, err.Error(), err)
	}
	if !resp.Success {
		return nil, errs.NewGatewayError("status", refID, resp.Msg, nil)
	}

	amount, _ := strconv.ParseInt(resp.Data.Amount, 10, 64)
	return &gateway.PaymentState{
		Status: c.NormalizeStatus(resp.Data.Status),
		Amount: amount,
	}, nil
}

// VerifyCallback checks an inbound webhook signature in constant time
func (c *Client) VerifyCallback(refID, signature string) bool {
	if signature == "" {
		return false
	}
	expected := signing.PaymentCallback(c.config.APIKey, refID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

// NormalizeStatus maps the PayDisini status vocabulary into the internal
// payment enum. Unknown values mean the payment is still open.
func (c *Client) NormalizeStatus(raw string) entity.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "success", "paid":
		return entity.PaymentPaid
	case "expired":
		return entity.PaymentExpired
	case "failed", "canceled", "cancelled", "rejected":
		return entity.PaymentRejected
	default:
		return entity.PaymentPending
	}
}

// post sends a signed form-encoded request and decodes the envelope
func (c *Client) post(ctx context.Context, form url.Values) (*paymentResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var envelope paymentResponse
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return &envelope, nil
}

// parseExpiry converts the gateway's expiry string, falling back to the
// requested validity window when it is absent or malformed
func (c *Client) parseExpiry(raw string, validity time.Duration) time.Time {
	if raw != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.Local); err == nil {
			return t
		}
		c.logger.Debug("Unparseable expiry from gateway", map[string]any{"expired": raw})
	}
	return c.timeProvider.Now().Add(validity)
}

package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "product not found", err: ErrProductNotFound, expectedCode: CodeProductNotFound},
		{name: "invalid target number", err: ErrInvalidTargetNumber, expectedCode: CodeInvalidTargetNumber},
		{name: "invalid ref id", err: ErrInvalidRefID, expectedCode: CodeInvalidRefID},
		{name: "transaction not found", err: ErrTransactionNotFound, expectedCode: CodeTransactionNotFound},
		{name: "invalid callback", err: ErrInvalidCallback, expectedCode: CodeInvalidCallback},
		{name: "gateway unavailable", err: ErrGatewayUnavailable, expectedCode: CodeGatewayUnavailable},
		{name: "fulfillment failed", err: ErrFulfillmentFailed, expectedCode: CodeFulfillmentFailed},
		{name: "misconfigured gateway", err: ErrMisconfiguredGateway, expectedCode: CodeMisconfiguredGateway},
		{name: "invalid request", err: ErrInvalidRequest, expectedCode: CodeInvalidRequest},
		{name: "wrapped error keeps its code", err: fmt.Errorf("lookup: %w", ErrProductNotFound), expectedCode: CodeProductNotFound},
		{name: "unknown error maps to internal", err: errors.New("boom"), expectedCode: CodeInternalServer},
		{name: "database error maps to internal", err: ErrDatabaseConnection, expectedCode: CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, ErrorCode(tc.err))
		})
	}
}

func TestReason(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedReason string
	}{
		{name: "product not found", err: ErrProductNotFound, expectedReason: ReasonProductNotFound},
		{name: "invalid target", err: ErrInvalidTargetNumber, expectedReason: ReasonInvalidTargetNumber},
		{name: "transaction not found", err: ErrTransactionNotFound, expectedReason: ReasonTransactionNotFound},
		{name: "invalid callback", err: ErrInvalidCallback, expectedReason: ReasonInvalidCallback},
		{name: "gateway unavailable", err: ErrGatewayUnavailable, expectedReason: ReasonGatewayUnavailable},
		{name: "misconfigured gateway shares the gateway reason", err: ErrMisconfiguredGateway, expectedReason: ReasonGatewayUnavailable},
		{name: "invalid request", err: ErrInvalidRequest, expectedReason: ReasonInvalidRequest},
		{name: "invalid ref id shares the request reason", err: ErrInvalidRefID, expectedReason: ReasonInvalidRequest},
		{name: "unknown error", err: errors.New("boom"), expectedReason: ReasonInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedReason, Reason(tc.err))
		})
	}
}

func TestGatewayError(t *testing.T) {
	err := NewGatewayError("create", "TRX123", "IP not allowed", nil)

	assert.Equal(t, "payment gateway create failed for TRX123: IP not allowed", err.Error())
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Equal(t, CodeGatewayUnavailable, ErrorCode(err))
	assert.Equal(t, ReasonGatewayUnavailable, Reason(err))

	var gwErr *GatewayError
	assert.True(t, errors.As(err, &gwErr))
	fields := gwErr.LogFields()
	assert.Equal(t, "gateway_error", fields["error_type"])
	assert.Equal(t, "create", fields["operation"])
	assert.Equal(t, "TRX123", fields["ref_id"])
	assert.Equal(t, "IP not allowed", fields["upstream"])
}

func TestGatewayError_UnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewGatewayError("status", "TRX123", "request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestFulfillmentError(t *testing.T) {
	err := NewFulfillmentError("TRX123", "xld10", "Saldo tidak cukup", nil)

	assert.Equal(t, "fulfillment failed for TRX123 (product xld10): Saldo tidak cukup", err.Error())
	assert.ErrorIs(t, err, ErrFulfillmentFailed)
	assert.Equal(t, CodeFulfillmentFailed, ErrorCode(err))

	var fErr *FulfillmentError
	assert.True(t, errors.As(err, &fErr))
	fields := fErr.LogFields()
	assert.Equal(t, "fulfillment_error", fields["error_type"])
	assert.Equal(t, "xld10", fields["product_code"])
	assert.Equal(t, "Saldo tidak cukup", fields["upstream"])
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrProductNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidRequest))

	assert.True(t, IsGatewayError(ErrGatewayUnavailable))
	assert.True(t, IsGatewayError(NewGatewayError("create", "TRX123", "down", nil)))
	assert.False(t, IsGatewayError(ErrFulfillmentFailed))

	assert.True(t, IsValidationError(ErrInvalidTargetNumber))
	assert.True(t, IsValidationError(ErrInvalidRefID))
	assert.False(t, IsValidationError(ErrProductNotFound))
}

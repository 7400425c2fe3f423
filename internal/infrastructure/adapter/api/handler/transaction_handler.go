package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	orderUseCase "github.com/Tatang94/atz/internal/domain/usecase/order"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	orderService *orderUseCase.Service
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(orderService *orderUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateTransaction handles the POST /api/transactions endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid transaction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Reason:  domainerr.ReasonInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	txn, err := h.orderService.CreateTransaction(c.Request.Context(), orderUseCase.CreateRequest{
		ProductCode:   req.ProductCode,
		TargetNumber:  req.TargetNumber,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		status, message := createErrorStatus(err)
		h.logger.Error("Failed to create transaction", map[string]any{
			"product_code":  req.ProductCode,
			"target_number": req.TargetNumber,
			"error":         err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Reason:  domainerr.Reason(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// GetTransaction handles the GET /api/transactions/:refId endpoint.
// Stale stored states are refreshed against the gateway before responding.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	refID := c.Param("refId")
	if refID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRefID),
			Reason:  domainerr.Reason(domainerr.ErrInvalidRefID),
			Message: "Missing transaction reference",
		})
		return
	}

	txn, err := h.orderService.GetStatus(c.Request.Context(), refID)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		if errors.Is(err, domainerr.ErrTransactionNotFound) {
			status = http.StatusNotFound
			message = "Transaction not found"
		}

		h.logger.Error("Error getting transaction status", map[string]any{
			"ref_id": refID,
			"error":  err.Error(),
		})

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Reason:  domainerr.Reason(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// createErrorStatus maps creation errors to HTTP status codes
func createErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrProductNotFound):
		return http.StatusNotFound, "Product not found or inactive"
	case errors.Is(err, domainerr.ErrInvalidTargetNumber):
		return http.StatusBadRequest, "Invalid target number for this product category"
	case errors.Is(err, domainerr.ErrGatewayUnavailable), errors.Is(err, domainerr.ErrMisconfiguredGateway):
		return http.StatusBadGateway, "Payment gateway unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

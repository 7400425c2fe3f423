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

// WebhookHandler handles inbound payment gateway callbacks
type WebhookHandler struct {
	orderService *orderUseCase.Service
	logger       coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(orderService *orderUseCase.Service, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// HandlePaymentCallback handles the POST /api/payment-callback endpoint.
// A already-settled transaction acknowledges with its reached state, the
// gateway retries callbacks it considers unconfirmed.
func (h *WebhookHandler) HandlePaymentCallback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Malformed payment callback", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Reason:  domainerr.ReasonInvalidRequest,
			Message: "Missing required fields",
		})
		return
	}

	reached, err := h.orderService.HandlePaymentCallback(
		c.Request.Context(),
		req.UniqueCode,
		req.Status,
		req.Amount,
		req.Signature,
	)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to process callback"

		switch {
		case errors.Is(err, domainerr.ErrInvalidCallback):
			status = http.StatusUnauthorized
			message = "Invalid signature"
		case errors.Is(err, domainerr.ErrTransactionNotFound):
			status = http.StatusNotFound
			message = "Transaction not found"
		case errors.Is(err, domainerr.ErrInvalidRequest):
			status = http.StatusBadRequest
			message = "Missing required fields"
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Reason:  domainerr.Reason(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{
		Message:    "Callback processed successfully",
		UniqueCode: req.UniqueCode,
		Status:     string(reached),
	})
}

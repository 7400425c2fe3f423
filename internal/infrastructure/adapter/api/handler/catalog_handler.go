package handler

import (
	"net/http"

	"github.com/Tatang94/atz/internal/domain/entity"
	domainerr "github.com/Tatang94/atz/internal/domain/error"
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	catalogUseCase "github.com/Tatang94/atz/internal/domain/usecase/catalog"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *catalogUseCase.UseCase
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogService *catalogUseCase.UseCase, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProducts handles the GET /api/products endpoint.
// An optional category query parameter narrows the listing.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	var products []entity.Product
	var err error
	if category != "" {
		products, err = h.catalogService.ListByCategory(c.Request.Context(), category)
	} else {
		products, err = h.catalogService.ListProducts(c.Request.Context())
	}

	if err != nil {
		h.logger.Error("Error listing products", map[string]any{
			"category": category,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Reason:  domainerr.Reason(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// ListByCategory handles the GET /api/products/:category endpoint
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := h.catalogService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("Error listing products by category", map[string]any{
			"category": category,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Reason:  domainerr.Reason(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/catalogsync/backend/internal/application/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/catalogsync/backend/internal/interfaces/http/dto"
	"github.com/catalogsync/backend/internal/interfaces/http/middleware"
)

// ProductHandler serves stored product endpoints
type ProductHandler struct {
	BaseHandler
	queryService *appcatalog.ProductQueryService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(queryService *appcatalog.ProductQueryService) *ProductHandler {
	return &ProductHandler{
		queryService: queryService,
	}
}

// List returns a page of stored products
func (h *ProductHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	page, err := h.queryService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByExternalID returns one stored product by its external identifier
func (h *ProductHandler) GetByExternalID(c *gin.Context) {
	externalID := c.Param("external_id")

	product, err := h.queryService.GetProductByExternalID(c.Request.Context(), externalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:external_id", h.GetByExternalID)
	}
}

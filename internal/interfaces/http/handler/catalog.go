package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/catalogsync/backend/internal/application/catalog"
	"github.com/catalogsync/backend/internal/interfaces/http/dto"
	"github.com/catalogsync/backend/internal/interfaces/http/middleware"
)

// CatalogHandler serves remote catalog browsing and import endpoints
type CatalogHandler struct {
	BaseHandler
	browseService *appcatalog.BrowseService
	importService *appcatalog.ImportService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	browseService *appcatalog.BrowseService,
	importService *appcatalog.ImportService,
) *CatalogHandler {
	return &CatalogHandler{
		browseService: browseService,
		importService: importService,
	}
}

// ListItems returns the remote catalog listing
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.browseService.ListItems(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetItem returns one remote catalog item
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id := c.Param("id")

	item, err := h.browseService.GetItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Import reconciles the selected items into the product table
func (h *CatalogHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.importService.ImportSelection(c.Request.Context(), req.ToSelectedItems())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/items", h.ListItems)
		catalog.GET("/items/:id", h.GetItem)
		catalog.POST("/import", h.Import)
	}
}

package handler

import (
	appcatalog "github.com/cataloghub/backend/internal/application/catalog"
	"github.com/cataloghub/backend/internal/application/integration"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the canonical catalog read surface
type ProductHandler struct {
	BaseHandler
	catalogService     *appcatalog.Service
	integrationService *integration.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *appcatalog.Service, integrationService *integration.Service) *ProductHandler {
	return &ProductHandler{
		catalogService:     catalogService,
		integrationService: integrationService,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.List)
	products.GET("/preview", h.Preview)
}

// List returns the current canonical catalog
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"total": len(products),
		"data":  products,
	})
}

// Preview runs fetch and normalization without touching the catalog
func (h *ProductHandler) Preview(c *gin.Context) {
	result, err := h.integrationService.Preview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"total":  len(result.Products),
		"data":   result.Products,
		"failed": result.FailedRecords,
	})
}

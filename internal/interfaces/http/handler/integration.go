package handler

import (
	"github.com/cataloghub/backend/internal/application/integration"
	"github.com/gin-gonic/gin"
)

// IntegrationHandler triggers catalog integration runs
type IntegrationHandler struct {
	BaseHandler
	integrationService *integration.Service
	requireAuth        gin.HandlerFunc
	requireAdmin       gin.HandlerFunc
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(
	integrationService *integration.Service,
	requireAuth gin.HandlerFunc,
	requireAdmin gin.HandlerFunc,
) *IntegrationHandler {
	return &IntegrationHandler{
		integrationService: integrationService,
		requireAuth:        requireAuth,
		requireAdmin:       requireAdmin,
	}
}

// RegisterRoutes registers the integration route behind the admin gate
func (h *IntegrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/integrate", h.requireAuth, h.requireAdmin, h.Integrate)
}

// Integrate replaces the catalog from the current vendor feeds
func (h *IntegrationHandler) Integrate(c *gin.Context) {
	result, err := h.integrationService.Integrate(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"message":     "Integration completed",
		"total":       result.TotalProducts,
		"failed":      result.FailedRecords,
		"data_sample": result.Sample,
	})
}

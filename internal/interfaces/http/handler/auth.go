package handler

import (
	"github.com/cataloghub/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/register-admin", h.RegisterAdmin)
	auth.POST("/login", h.Login)
}

// Register creates a regular account
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterInput
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// RegisterAdmin creates an account that may trigger integrations
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req identity.RegisterInput
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Login verifies credentials and returns a signed token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginInput
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/cataloghub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the given body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response with an optional detail
func (h *BaseHandler) BadRequest(c *gin.Context, message, detail string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetail(message, detail))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// InternalError sends a 500 response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
}

// HandleError converts domain errors to HTTP responses. Unknown errors
// become opaque 500s so internals never leak to clients.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(domainErr.Message))
		return
	}

	_ = c.Error(err)
	h.InternalError(c, "An unexpected error occurred")
}

// BindJSON binds the request body and reports validation failures as 400s.
// Returns false when the request was already answered.
func (h *BaseHandler) BindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		h.BadRequest(c, "Invalid request body", bindingDetail(err))
		return false
	}
	return true
}

// ParseID parses the :id path parameter. Returns uuid.Nil and false when
// the request was already answered.
func (h *BaseHandler) ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID", "id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func bindingDetail(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return "field '" + first.Field() + "' failed on the '" + first.Tag() + "' rule"
	}
	return err.Error()
}

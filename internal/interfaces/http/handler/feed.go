package handler

import (
	"github.com/cataloghub/backend/internal/application/feed"
	"github.com/gin-gonic/gin"
)

// FeedHandler handles CRUD over the raw vendor feeds
type FeedHandler struct {
	BaseHandler
	feedService *feed.Service
	requireAuth gin.HandlerFunc
}

// NewFeedHandler creates a new feed handler. requireAuth guards the
// mutating routes.
func NewFeedHandler(feedService *feed.Service, requireAuth gin.HandlerFunc) *FeedHandler {
	return &FeedHandler{feedService: feedService, requireAuth: requireAuth}
}

// RegisterRoutes registers vendor feed routes. Reads and creates are open,
// updates and deletes require a credential.
func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")

	a := vendors.Group("/a")
	a.GET("", h.ListA)
	a.GET("/:id", h.GetA)
	a.POST("", h.CreateA)
	a.PUT("/:id", h.requireAuth, h.UpdateA)
	a.DELETE("/:id", h.requireAuth, h.DeleteA)

	b := vendors.Group("/b")
	b.GET("", h.ListB)
	b.GET("/:id", h.GetB)
	b.POST("", h.CreateB)
	b.PUT("/:id", h.requireAuth, h.UpdateB)
	b.DELETE("/:id", h.requireAuth, h.DeleteB)

	c := vendors.Group("/c")
	c.GET("", h.ListC)
	c.GET("/:id", h.GetC)
	c.POST("", h.CreateC)
	c.PUT("/:id", h.requireAuth, h.UpdateC)
	c.DELETE("/:id", h.requireAuth, h.DeleteC)
}

// ListA returns all vendor A records
func (h *FeedHandler) ListA(c *gin.Context) {
	records, err := h.feedService.ListA(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// GetA returns one vendor A record
func (h *FeedHandler) GetA(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.feedService.GetA(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// CreateA stores a new vendor A record
func (h *FeedHandler) CreateA(c *gin.Context) {
	var req feed.RecordAInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.CreateA(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// UpdateA overwrites an existing vendor A record
func (h *FeedHandler) UpdateA(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req feed.RecordAInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.UpdateA(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// DeleteA removes a vendor A record
func (h *FeedHandler) DeleteA(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.feedService.DeleteA(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListB returns all vendor B records
func (h *FeedHandler) ListB(c *gin.Context) {
	records, err := h.feedService.ListB(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// GetB returns one vendor B record
func (h *FeedHandler) GetB(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.feedService.GetB(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// CreateB stores a new vendor B record
func (h *FeedHandler) CreateB(c *gin.Context) {
	var req feed.RecordBInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.CreateB(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// UpdateB overwrites an existing vendor B record
func (h *FeedHandler) UpdateB(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req feed.RecordBInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.UpdateB(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// DeleteB removes a vendor B record
func (h *FeedHandler) DeleteB(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.feedService.DeleteB(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListC returns all vendor C records
func (h *FeedHandler) ListC(c *gin.Context) {
	records, err := h.feedService.ListC(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// GetC returns one vendor C record
func (h *FeedHandler) GetC(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.feedService.GetC(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// CreateC stores a new vendor C record
func (h *FeedHandler) CreateC(c *gin.Context) {
	var req feed.RecordCInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.CreateC(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// UpdateC overwrites an existing vendor C record
func (h *FeedHandler) UpdateC(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req feed.RecordCInput
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.feedService.UpdateC(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// DeleteC removes a vendor C record
func (h *FeedHandler) DeleteC(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.feedService.DeleteC(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

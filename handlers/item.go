package handlers

import (
	"net/http"

	"shareit/middleware"
	"shareit/models"
	"shareit/services/item"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// ItemHandler exposes item management, search and commenting over HTTP.
type ItemHandler struct {
	Service item.ItemService
}

// NewItemHandler creates an ItemHandler backed by the given service.
func NewItemHandler(svc item.ItemService) *ItemHandler {
	return &ItemHandler{Service: svc}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var in models.ItemCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	it, err := h.Service.Create(middleware.CallerID(c), in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Update handles PATCH /items/:itemId.
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var patch models.ItemUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	it, err := h.Service.Update(middleware.CallerID(c), itemID, patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Get handles GET /items/:itemId.
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Service.GetByID(middleware.CallerID(c), itemID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /items/:itemId.
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Delete(middleware.CallerID(c), itemID); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListByOwner handles GET /items.
func (h *ItemHandler) ListByOwner(c *gin.Context) {
	from, err := queryInt(c, "from", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	size, err := queryInt(c, "size", 20)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.Service.ListByOwner(middleware.CallerID(c), from, size)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Search handles GET /items/search?text=.
func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.Service.Search(middleware.CallerID(c), c.Query("text"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddComment handles POST /items/:itemId/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var in models.CommentCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	comment, err := h.Service.AddComment(middleware.CallerID(c), itemID, in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

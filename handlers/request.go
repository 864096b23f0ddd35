package handlers

import (
	"net/http"

	"shareit/middleware"
	"shareit/models"
	"shareit/services/request"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the item request marketplace over HTTP.
type RequestHandler struct {
	Service request.RequestService
}

// NewRequestHandler creates a RequestHandler backed by the given service.
func NewRequestHandler(svc request.RequestService) *RequestHandler {
	return &RequestHandler{Service: svc}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c *gin.Context) {
	var in models.RequestCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := h.Service.Create(middleware.CallerID(c), in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetOwn handles GET /requests.
func (h *RequestHandler) GetOwn(c *gin.Context) {
	views, err := h.Service.GetOwn(middleware.CallerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetAllOthers handles GET /requests/all.
func (h *RequestHandler) GetAllOthers(c *gin.Context) {
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

	views, err := h.Service.GetAllOthers(middleware.CallerID(c), from, size)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get handles GET /requests/:requestId.
func (h *RequestHandler) Get(c *gin.Context) {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Service.GetByID(middleware.CallerID(c), requestID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"net/http"

	"shareit/models"
	"shareit/services/user"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes user management over HTTP. User routes carry no
// sharer header: they are the registration surface itself.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler backed by the given service.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var in models.UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Service.Create(in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update handles PATCH /users/:userId.
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var patch models.UserUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Service.Update(userID, patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Get handles GET /users/:userId.
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.Service.GetByID(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetAll handles GET /users.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Delete handles DELETE /users/:userId.
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Delete(userID); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

package handlers

import (
	"net/http"
	"strconv"

	"shareit/middleware"
	"shareit/models"
	"shareit/services/booking"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler backed by the given service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var in models.BookingCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.Create(middleware.CallerID(c), in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Approve handles PATCH /bookings/:bookingId?approved=.
func (h *BookingHandler) Approve(c *gin.Context) {
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved query parameter required"})
		return
	}

	b, err := h.Service.Approve(middleware.CallerID(c), bookingID, approved)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Get handles GET /bookings/:bookingId.
func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Service.GetByID(middleware.CallerID(c), bookingID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListForBooker handles GET /bookings.
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, models.RoleBooker)
}

// ListForOwner handles GET /bookings/owner.
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, models.RoleOwner)
}

func (h *BookingHandler) list(c *gin.Context, role models.Role) {
	state, ok := models.ParseBookingState(c.Query("state"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state: " + c.Query("state")})
		return
	}
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

	bookings, err := h.Service.List(middleware.CallerID(c), role, state, from, size)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

package routes

import (
	"shareit/handlers"
	"shareit/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired at startup so route
// registration stays a single call per entity.
type HandlerBundle struct {
	Users    *handlers.UserHandler
	Items    *handlers.ItemHandler
	Bookings *handlers.BookingHandler
	Requests *handlers.RequestHandler
}

// RegisterUserRoutes registers user endpoints. These are the
// registration surface itself, so they carry no sharer header.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/users")
	{
		api.POST("", hb.Users.Create)
		api.GET("", hb.Users.GetAll)
		api.GET("/:userId", hb.Users.Get)
		api.PATCH("/:userId", hb.Users.Update)
		api.DELETE("/:userId", hb.Users.Delete)
	}
}

// RegisterItemRoutes registers item endpoints.
func RegisterItemRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/items")
	api.Use(middleware.Identity())
	{
		api.POST("", hb.Items.Create)
		api.PATCH("/:itemId", hb.Items.Update)
		api.GET("/:itemId", hb.Items.Get)
		api.DELETE("/:itemId", hb.Items.Delete)
		api.GET("", hb.Items.ListByOwner)
		api.GET("/search", hb.Items.Search)
		api.POST("/:itemId/comment", hb.Items.AddComment)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/bookings")
	api.Use(middleware.Identity())
	{
		api.POST("", hb.Bookings.Create)
		api.PATCH("/:bookingId", hb.Bookings.Approve)
		api.GET("/:bookingId", hb.Bookings.Get)
		api.GET("", hb.Bookings.ListForBooker)
		api.GET("/owner", hb.Bookings.ListForOwner)
	}
}

// RegisterRequestRoutes registers item request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/requests")
	api.Use(middleware.Identity())
	{
		api.POST("", hb.Requests.Create)
		api.GET("", hb.Requests.GetOwn)
		api.GET("/all", hb.Requests.GetAllOthers)
		api.GET("/:requestId", hb.Requests.Get)
	}
}

// RegisterAllRoutes wires every route group onto the engine.
func RegisterAllRoutes(r *gin.Engine, hb *HandlerBundle) {
	RegisterUserRoutes(r, hb)
	RegisterItemRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
}

// File: shareit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareit/config"
	"shareit/database"
	bookingRepoPkg "shareit/database/repository/booking"
	commentRepoPkg "shareit/database/repository/comment"
	itemRepoPkg "shareit/database/repository/item"
	requestRepoPkg "shareit/database/repository/request"
	userRepoPkg "shareit/database/repository/user"
	"shareit/handlers"
	"shareit/middleware"
	"shareit/routes"
	"shareit/services/booking"
	"shareit/services/item"
	"shareit/services/request"
	"shareit/services/user"
	"shareit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.UserHeader, "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	itemRepo := itemRepoPkg.NewMongoItemRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	commentRepo := commentRepoPkg.NewMongoCommentRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()

	// services.
	userService := &user.DefaultUserService{
		Users: userRepo,
	}

	searchCache := item.NewSearchCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SearchCacheTTL)*time.Second,
	)
	itemService := &item.DefaultItemService{
		Items:    itemRepo,
		Users:    userRepo,
		Bookings: bookingRepo,
		Comments: commentRepo,
		Requests: requestRepo,
		Cache:    searchCache,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Items:    itemRepo,
		Users:    userRepo,
	}

	requestService := &request.DefaultRequestService{
		Requests: requestRepo,
		Users:    userRepo,
		Items:    itemRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Users:    handlers.NewUserHandler(userService),
		Items:    handlers.NewItemHandler(itemService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Requests: handlers.NewRequestHandler(requestService),
	}
	routes.RegisterAllRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// File: autoconecta/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoconecta/config"
	"autoconecta/database"
	listingRepoPkg "autoconecta/database/repository/listing"
	userRepoPkg "autoconecta/database/repository/user"
	"autoconecta/handlers"
	"autoconecta/middleware"
	"autoconecta/routes"
	"autoconecta/services/identity"
	"autoconecta/services/media"
	"autoconecta/services/notification"
	"autoconecta/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorage, err := media.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	accountRepo := userRepoPkg.NewMongoAccountRepo()

	// Services.
	gateway := &identity.FirebaseGateway{
		Auth:      utils.FirebaseAuthClient,
		Accounts:  accountRepo,
		Sessions:  utils.GetAuthCacheClient(),
		WebAPIKey: config.AppConfig.FirebaseWebAPIKey,
	}
	notificationService := notification.NewService()
	uploader := &media.BatchUploader{Storage: cloudinaryStorage}

	// Handlers.
	authHandler := handlers.NewAuthHandler(gateway, notificationService)
	listingHandler := handlers.NewListingHandler(uploader, listingRepo, notificationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Gateway: gateway,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,
		MeHandler:       authHandler.MeHandler,

		CreateListingHandler:     listingHandler.CreateListingHandler,
		GetActiveListingsHandler: listingHandler.GetActiveListingsHandler,
		GetListingHandler:        listingHandler.GetListingHandler,
		GetMyListingsHandler:     listingHandler.GetMyListingsHandler,

		ListNotificationsHandler:   notificationHandler.ListHandler,
		DismissNotificationHandler: notificationHandler.DismissHandler,
		DismissAllHandler:          notificationHandler.DismissAllHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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

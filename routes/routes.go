package routes

import (
	"net/http"
	"time"

	"autoconecta/handlers"
	"autoconecta/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.SessionAuthMiddleware(hb.Gateway, false), hb.LogoutHandler)
		api.GET("/me", middleware.SessionAuthMiddleware(hb.Gateway, false), hb.MeHandler)
	}
}

// RegisterListingRoutes registers the vehicle endpoints. Creation uses
// the optional session middleware: the submission workflow itself turns
// a missing session into its NotAuthenticated outcome.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/autos")
	{
		api.GET("", hb.GetActiveListingsHandler)
		api.POST("", middleware.SessionAuthMiddleware(hb.Gateway, true), hb.CreateListingHandler)
		api.GET("/mios", middleware.SessionAuthMiddleware(hb.Gateway, false), hb.GetMyListingsHandler)
		api.GET("/:id", hb.GetListingHandler)
	}
}

// RegisterNotificationRoutes registers the alert queue endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notificaciones")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Gateway, false))
		api.GET("", hb.ListNotificationsHandler)
		api.DELETE("/:id", hb.DismissNotificationHandler)
		api.DELETE("", hb.DismissAllHandler)
	}
}

// RegisterScreenRoutes mirrors the client's navigation surface: each
// path names the screen it serves, /login redirects to /, and unknown
// paths land on the not-found screen.
func RegisterScreenRoutes(r *gin.Engine) {
	screen := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"pantalla": name})
		}
	}

	r.GET("/", screen("login"))
	r.GET("/login", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
	r.GET("/registro", screen("registro"))
	r.GET("/dashboard", screen("dashboard"))
	r.GET("/registro-auto", screen("registro-auto"))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"pantalla": "not-found", "error": "Página no encontrada"})
	})
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hola, soy AutoConecta"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterScreenRoutes(r)
	RegisterHealthRoute(r)
}

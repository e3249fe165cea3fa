// File: autoconecta/handlers/bundle.go
package handlers

import (
	"autoconecta/services/identity"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Gateway identity.Gateway

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Listing endpoints
	CreateListingHandler     gin.HandlerFunc
	GetActiveListingsHandler gin.HandlerFunc
	GetListingHandler        gin.HandlerFunc
	GetMyListingsHandler     gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler   gin.HandlerFunc
	DismissNotificationHandler gin.HandlerFunc
	DismissAllHandler          gin.HandlerFunc
}

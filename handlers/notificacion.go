// File: autoconecta/handlers/notificacion.go
package handlers

import (
	"net/http"

	"autoconecta/middleware"
	"autoconecta/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the signed-in seller's alert queue.
type NotificationHandler struct {
	Notifications *notification.Service
}

func NewNotificationHandler(notifications *notification.Service) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// ListHandler returns the visible notifications in insertion order.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	queue := h.Notifications.ForUser(session.UID)
	c.JSON(http.StatusOK, gin.H{"notificaciones": queue.List()})
}

// DismissHandler removes one notification; dismissing an id that is
// already gone is a no-op and still returns 200.
func (h *NotificationHandler) DismissHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	queue := h.Notifications.ForUser(session.UID)
	queue.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"mensaje": "Notificación cerrada"})
}

// DismissAllHandler clears the seller's queue.
func (h *NotificationHandler) DismissAllHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	queue := h.Notifications.ForUser(session.UID)
	queue.DismissAll()
	c.JSON(http.StatusOK, gin.H{"mensaje": "Notificaciones cerradas"})
}

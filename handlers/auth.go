// File: autoconecta/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"autoconecta/middleware"
	"autoconecta/models"
	"autoconecta/services/identity"
	"autoconecta/services/listing"
	"autoconecta/services/notification"
	"autoconecta/services/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login against the identity provider.
type AuthHandler struct {
	Gateway       identity.Gateway
	Notifications *notification.Service
}

func NewAuthHandler(gw identity.Gateway, notifications *notification.Service) *AuthHandler {
	return &AuthHandler{Gateway: gw, Notifications: notifications}
}

// RegisterHandler handles account registration.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if errs := validation.Registration(&form); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errores": errs})
		return
	}

	account, err := h.Gateway.Register(c.Request.Context(), &form)
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			// Provider messages are surfaced verbatim.
			c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Message})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la cuenta"})
		return
	}

	h.Notifications.ForUser(account.UID).Exito("Registro exitoso", "Tu cuenta ha sido creada correctamente")

	c.JSON(http.StatusCreated, gin.H{
		"usuario":    account,
		"redirectTo": "/login",
		"redirectIn": listing.RedirectDelay.Milliseconds(),
	})
}

// LoginHandler handles sign-in and returns the provider token the
// client presents as its bearer credential.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if errs := validation.Login(&form); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errores": errs})
		return
	}

	session, err := h.Gateway.SignIn(c.Request.Context(), form.CorreoElectronico, form.Contrasena)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Message})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar sesión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       session.IDToken,
		"uid":         session.UID,
		"email":       session.Email,
		"displayName": session.DisplayName,
		"expiresAt":   session.ExpiresAt,
	})
}

// MeHandler returns the signed-in seller's stored profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	account, err := h.Gateway.Profile(session.UID)
	if err != nil {
		getLogger(c).Error("Failed to fetch profile", zap.String("uid", session.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el perfil"})
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"usuario": account})
}

// LogoutHandler drops the cached session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token, _ := c.Get("token")
	tokenStr, _ := token.(string)
	if tokenStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay sesión activa"})
		return
	}
	if err := h.Gateway.SignOut(tokenStr); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cerrar la sesión"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Sesión cerrada"})
}

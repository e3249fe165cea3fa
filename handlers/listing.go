// File: autoconecta/handlers/listing.go
package handlers

import (
	"net/http"

	listingRepoPkg "autoconecta/database/repository/listing"
	"autoconecta/middleware"
	"autoconecta/models"
	"autoconecta/services/listing"
	"autoconecta/services/notification"
	"autoconecta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the vehicle registration and browse endpoints.
type ListingHandler struct {
	Uploader      listing.Uploader
	Repo          listingRepoPkg.ListingRepository
	Notifications *notification.Service
}

func NewListingHandler(uploader listing.Uploader, repo listingRepoPkg.ListingRepository, notifications *notification.Service) *ListingHandler {
	return &ListingHandler{Uploader: uploader, Repo: repo, Notifications: notifications}
}

// CreateListingHandler runs one submission attempt. The request is a
// multipart form: the listing fields plus up to 5 images under the
// "imagenes" key. Image constraints are enforced while building the
// batch, before the workflow runs.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	logger := getLogger(c)

	form := models.DefaultListingForm()
	if err := c.ShouldBind(form); err != nil {
		logger.Error("Invalid listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var batch models.ImageBatch
	if mpForm, err := c.MultipartForm(); err == nil && mpForm != nil {
		for _, fh := range mpForm.File["imagenes"] {
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer la imagen " + fh.Filename})
				return
			}
			defer file.Close()

			addErr := batch.Add(models.ImageFile{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Reader:      file,
			})
			if addErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": addErr.Error()})
				return
			}
		}
	}

	session := middleware.SessionFromContext(c)

	notifier := h.Notifications.ForUser(notificationOwner(session))
	workflow := &listing.SubmissionWorkflow{
		Uploader: h.Uploader,
		Repo:     h.Repo,
		Notifier: notifier,
	}

	result := workflow.Submit(c.Request.Context(), form, &batch, session)
	switch result.Failure {
	case listing.FailureValidation:
		c.JSON(http.StatusBadRequest, gin.H{"errores": result.FieldErrors})
	case listing.FailureNotAuthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No estás autenticado"})
	case listing.FailureUpload:
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo registrar el vehículo"})
	case listing.FailurePersistence:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el vehículo"})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"id":         result.ListingID,
			"imagenes":   result.ImageURLs,
			"redirectTo": result.RedirectTo,
			"redirectIn": result.RedirectIn.Milliseconds(),
		})
	}
}

// GetActiveListingsHandler returns every active listing, newest first.
func (h *ListingHandler) GetActiveListingsHandler(c *gin.Context) {
	listings, err := h.Repo.GetAllActive()
	if err != nil {
		getLogger(c).Error("Failed to fetch listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los vehículos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"autos": listings})
}

// GetListingHandler returns one listing by id.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	l, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to fetch listing", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el vehículo"})
		return
	}
	if l == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehículo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auto": l})
}

// GetMyListingsHandler returns the signed-in seller's listings.
func (h *ListingHandler) GetMyListingsHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No estás autenticado"})
		return
	}
	listings, err := h.Repo.GetBySeller(session.UID)
	if err != nil {
		getLogger(c).Error("Failed to fetch seller listings", zap.String("vendedorId", session.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener tus vehículos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"autos": listings})
}

// notificationOwner keys unauthenticated submissions to a shared
// anonymous queue so their failure notifications still land somewhere.
func notificationOwner(session *utils.AuthSession) string {
	if session == nil {
		return "anonimo"
	}
	return session.UID
}

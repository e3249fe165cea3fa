package media

import (
	"context"

	"autoconecta/models"
)

// StorageService defines the contract with the external media host.
type StorageService interface {
	// Upload sends one image and returns its public URL.
	Upload(ctx context.Context, file models.ImageFile) (string, error)
	// Delete removes a previously uploaded image by its public ID.
	Delete(ctx context.Context, publicID string) error
}

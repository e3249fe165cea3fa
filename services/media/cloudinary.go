package media

import (
	"context"
	"fmt"

	"autoconecta/config"
	"autoconecta/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
	folder       string
}

// NewCloudinaryStorage initializes the Cloudinary client from AppConfig.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{
		cld:          cld,
		uploadPreset: cfg.CloudinaryUploadPreset,
		folder:       cfg.CloudinaryFolder,
	}, nil
}

// Upload sends the image to Cloudinary under the configured preset and
// folder and returns the resulting secure URL.
func (s *CloudinaryStorage) Upload(ctx context.Context, file models.ImageFile) (string, error) {
	params := uploader.UploadParams{
		Folder:       s.folder,
		UploadPreset: s.uploadPreset,
	}
	result, err := s.cld.Upload.Upload(ctx, file.Reader, params)
	if err != nil {
		return "", fmt.Errorf("media: failed to upload %q: %w", file.Name, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("media: no URL returned for %q", file.Name)
	}
	return result.SecureURL, nil
}

// Delete removes an image from Cloudinary given its public ID. The
// submission workflow does not call this today; it exists so a cleanup
// pass for orphaned uploads can be added without touching the gateway.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("media: failed to delete %q: %w", publicID, err)
	}
	return nil
}

package listingRepo

import "autoconecta/models"

// ListingRepository persists vehicle listings.
type ListingRepository interface {
	// Create writes a finished listing record and returns its id.
	Create(listing *models.Listing) (string, error)
	GetByID(id string) (*models.Listing, error)
	GetBySeller(vendedorID string) ([]models.Listing, error)
	GetAllActive() ([]models.Listing, error)
}

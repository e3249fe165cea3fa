package userRepo

import "autoconecta/models"

// AccountRepository persists seller profiles in the "usuarios" collection.
type AccountRepository interface {
	// Create writes the profile document keyed by the provider uid.
	Create(account *models.Account) error
	GetByUID(uid string) (*models.Account, error)
}

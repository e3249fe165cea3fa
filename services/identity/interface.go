package identity

import (
	"context"

	"autoconecta/models"
	"autoconecta/utils"
)

// Gateway is the narrow contract with the hosted identity provider and
// the local session cache.
type Gateway interface {
	// Register creates the provider account, sets its display name and
	// writes the profile document. Fails with ErrDuplicateAccount when
	// the email is taken.
	Register(ctx context.Context, form *models.RegistrationForm) (*models.Account, error)

	// SignIn exchanges email+password for a cached session. Fails with
	// ErrInvalidCredentials on a bad pair.
	SignIn(ctx context.Context, email, password string) (*utils.AuthSession, error)

	// Profile returns the stored profile for a uid, or nil when none
	// exists.
	Profile(uid string) (*models.Account, error)

	// CurrentSession resolves a bearer token against the session cache.
	// Returns nil when no session exists; never calls the provider.
	CurrentSession(token string) *utils.AuthSession

	// SignOut drops the cached session for the token.
	SignOut(token string) error
}

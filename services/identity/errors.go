package identity

import "errors"

// Sentinel errors for the two provider outcomes the screens branch on.
// Anything else from the provider is a network-level failure and is
// surfaced verbatim in the notification.
var (
	ErrDuplicateAccount   = errors.New("ya existe una cuenta con este correo electrónico")
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
)

// ProviderError carries the identity provider's own message so it can
// be shown verbatim.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

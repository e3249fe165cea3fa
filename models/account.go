// File: autoconecta/models/account.go
package models

import "time"

// RoleUsuario is the role every freshly registered account gets.
const RoleUsuario = "usuario"

// Account is the seller profile stored in the "usuarios" collection,
// keyed by the identity provider's uid.
type Account struct {
	UID               string    `bson:"uid" json:"uid"`
	Nombres           string    `bson:"nombres" json:"nombres"`
	Apellidos         string    `bson:"apellidos" json:"apellidos"`
	CarnetDeIdentidad string    `bson:"carnetDeIdentidad" json:"carnetDeIdentidad"`
	NumeroDeTelefono  string    `bson:"numeroDeTelefono" json:"numeroDeTelefono"`
	CorreoElectronico string    `bson:"correoElectronico" json:"correoElectronico"`
	Role              string    `bson:"role" json:"role"`
	CreadoEn          time.Time `bson:"creadoEn" json:"creadoEn"`
}

// DisplayName is what the identity provider profile shows.
func (a *Account) DisplayName() string {
	return a.Nombres + " " + a.Apellidos
}

// Document returns the storage representation, defaulting the role.
func (a *Account) Document() map[string]any {
	role := a.Role
	if role == "" {
		role = RoleUsuario
	}
	creadoEn := a.CreadoEn
	if creadoEn.IsZero() {
		creadoEn = time.Now()
	}
	return map[string]any{
		"uid":               a.UID,
		"nombres":           a.Nombres,
		"apellidos":         a.Apellidos,
		"carnetDeIdentidad": a.CarnetDeIdentidad,
		"numeroDeTelefono":  a.NumeroDeTelefono,
		"correoElectronico": a.CorreoElectronico,
		"role":              role,
		"creadoEn":          creadoEn,
	}
}

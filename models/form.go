// File: autoconecta/models/form.go
package models

import "strings"

// Option catalogs the listing form offers; anything else is rejected.
var (
	OpcionesMoneda      = []string{"USD", "BOB"}
	OpcionesCombustible = []string{"Gasolina", "Diesel", "Gas", "Híbrido", "Eléctrico"}
	OpcionesTransmision = []string{"Manual", "Automática", "CVT"}
	OpcionesCondicion   = []string{"Nuevo", "Usado", "Seminuevo"}
)

// ListingForm is one screen's worth of field values for the vehicle
// registration form. Numeric fields are pointers so "not filled in" is
// distinguishable from a typed zero. The form is replaced wholesale on
// reset, never patched field by field.
type ListingForm struct {
	Marca           string   `json:"marca" form:"marca"`
	Modelo          string   `json:"modelo" form:"modelo"`
	Version         string   `json:"version" form:"version"`
	Ano             *int     `json:"ano" form:"ano"`
	Precio          *float64 `json:"precio" form:"precio"`
	Moneda          string   `json:"moneda" form:"moneda"`
	Kilometraje     *int     `json:"kilometraje" form:"kilometraje"`
	ColorExterior   string   `json:"colorExterior" form:"colorExterior"`
	ColorInterior   string   `json:"colorInterior" form:"colorInterior"`
	TipoCombustible string   `json:"tipoCombustible" form:"tipoCombustible"`
	Transmision     string   `json:"transmision" form:"transmision"`
	Motor           string   `json:"motor" form:"motor"`
	VIN             string   `json:"vin" form:"vin"`
	Condicion       string   `json:"condicion" form:"condicion"`
	Descripcion     string   `json:"descripcion" form:"descripcion"`
	Caracteristicas []string `json:"caracteristicas" form:"caracteristicas"`
}

// DefaultListingForm returns a fresh form with the screen defaults.
func DefaultListingForm() *ListingForm {
	return &ListingForm{
		Moneda:          "USD",
		TipoCombustible: "Gasolina",
		Transmision:     "Manual",
		Condicion:       "Usado",
		Caracteristicas: []string{},
	}
}

// AddCaracteristica appends a trimmed feature tag, skipping empties and
// duplicates. Reports whether the tag was added.
func (f *ListingForm) AddCaracteristica(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, existing := range f.Caracteristicas {
		if existing == tag {
			return false
		}
	}
	f.Caracteristicas = append(f.Caracteristicas, tag)
	return true
}

// RemoveCaracteristica deletes the tag at index i, preserving order.
func (f *ListingForm) RemoveCaracteristica(i int) {
	if i < 0 || i >= len(f.Caracteristicas) {
		return
	}
	f.Caracteristicas = append(f.Caracteristicas[:i], f.Caracteristicas[i+1:]...)
}

// LoginForm holds the login screen's fields.
type LoginForm struct {
	CorreoElectronico string `json:"correoElectronico"`
	Contrasena        string `json:"contrasena"`
}

// RegistrationForm holds the account registration screen's fields.
type RegistrationForm struct {
	Nombres           string `json:"nombres"`
	Apellidos         string `json:"apellidos"`
	CarnetDeIdentidad string `json:"carnetDeIdentidad"`
	NumeroDeTelefono  string `json:"numeroDeTelefono"`
	CorreoElectronico string `json:"correoElectronico"`
	Contrasena        string `json:"contrasena"`
}

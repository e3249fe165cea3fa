// File: autoconecta/services/validation/validator.go
package validation

import (
	"regexp"
	"strings"
	"time"

	"autoconecta/models"
)

// Errors maps a field name to its human-readable message. Fields that
// pass their rule are absent. A screen's validator is re-run in full on
// every submit attempt; it has no side effects.
type Errors map[string]string

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{7,15}$`)
)

// Listing validates the vehicle registration form.
func Listing(f *models.ListingForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Marca) == "" {
		errs["marca"] = "La marca es requerida"
	}
	if strings.TrimSpace(f.Modelo) == "" {
		errs["modelo"] = "El modelo es requerido"
	}
	if f.Ano == nil {
		errs["ano"] = "El año es requerido"
	} else if *f.Ano < 1900 || *f.Ano > time.Now().Year()+1 {
		errs["ano"] = "El año no es válido"
	}
	if f.Precio == nil {
		errs["precio"] = "El precio es requerido"
	} else if *f.Precio <= 0 {
		errs["precio"] = "El precio debe ser mayor a 0"
	}
	if f.Kilometraje == nil {
		errs["kilometraje"] = "El kilometraje es requerido"
	} else if *f.Kilometraje < 0 {
		errs["kilometraje"] = "El kilometraje no puede ser negativo"
	}
	if strings.TrimSpace(f.ColorExterior) == "" {
		errs["colorExterior"] = "El color exterior es requerido"
	}
	if strings.TrimSpace(f.Motor) == "" {
		errs["motor"] = "La información del motor es requerida"
	}
	if f.Moneda != "" && !oneOf(f.Moneda, models.OpcionesMoneda) {
		errs["moneda"] = "La moneda no es válida"
	}
	if f.TipoCombustible != "" && !oneOf(f.TipoCombustible, models.OpcionesCombustible) {
		errs["tipoCombustible"] = "El tipo de combustible no es válido"
	}
	if f.Transmision != "" && !oneOf(f.Transmision, models.OpcionesTransmision) {
		errs["transmision"] = "La transmisión no es válida"
	}
	if f.Condicion != "" && !oneOf(f.Condicion, models.OpcionesCondicion) {
		errs["condicion"] = "La condición no es válida"
	}
	return errs
}

// Login validates the sign-in form.
func Login(f *models.LoginForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.CorreoElectronico) == "" {
		errs["correoElectronico"] = "El correo electrónico es requerido"
	} else if !emailPattern.MatchString(f.CorreoElectronico) {
		errs["correoElectronico"] = "El correo electrónico no es válido"
	}
	if f.Contrasena == "" {
		errs["contrasena"] = "La contraseña es requerida"
	} else if len(f.Contrasena) < 6 {
		errs["contrasena"] = "La contraseña debe tener al menos 6 caracteres"
	}
	return errs
}

// Registration validates the account registration form.
func Registration(f *models.RegistrationForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Nombres) == "" {
		errs["nombres"] = "Los nombres son requeridos"
	}
	if strings.TrimSpace(f.Apellidos) == "" {
		errs["apellidos"] = "Los apellidos son requeridos"
	}
	if strings.TrimSpace(f.CarnetDeIdentidad) == "" {
		errs["carnetDeIdentidad"] = "El carnet de identidad es requerido"
	}
	if strings.TrimSpace(f.NumeroDeTelefono) == "" {
		errs["numeroDeTelefono"] = "El número de teléfono es requerido"
	} else if !phonePattern.MatchString(f.NumeroDeTelefono) {
		errs["numeroDeTelefono"] = "El número de teléfono no es válido (solo números)"
	}
	if strings.TrimSpace(f.CorreoElectronico) == "" {
		errs["correoElectronico"] = "El correo electrónico es requerido"
	} else if !emailPattern.MatchString(f.CorreoElectronico) {
		errs["correoElectronico"] = "El correo electrónico no es válido"
	}
	if f.Contrasena == "" {
		errs["contrasena"] = "La contraseña es requerida"
	} else if len(f.Contrasena) < 6 {
		errs["contrasena"] = "La contraseña debe tener al menos 6 caracteres"
	}
	return errs
}

func oneOf(v string, opts []string) bool {
	for _, o := range opts {
		if v == o {
			return true
		}
	}
	return false
}

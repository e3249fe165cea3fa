package validation

import (
	"testing"
	"time"

	"autoconecta/models"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func validListingForm() *models.ListingForm {
	f := models.DefaultListingForm()
	f.Marca = "Toyota"
	f.Modelo = "Corolla"
	f.Ano = intPtr(2020)
	f.Precio = floatPtr(15000)
	f.Kilometraje = intPtr(50000)
	f.ColorExterior = "Blanco"
	f.Motor = "1.8L 4 cilindros"
	return f
}

func TestListing_Valid(t *testing.T) {
	errs := Listing(validListingForm())
	if len(errs) != 0 {
		t.Errorf("Listing() = %v; want no errors", errs)
	}
}

func TestListing_FieldRules(t *testing.T) {
	nextYear := time.Now().Year() + 1

	tests := []struct {
		name    string
		mutate  func(f *models.ListingForm)
		field   string
	}{
		{"empty marca", func(f *models.ListingForm) { f.Marca = "   " }, "marca"},
		{"empty modelo", func(f *models.ListingForm) { f.Modelo = "" }, "modelo"},
		{"missing ano", func(f *models.ListingForm) { f.Ano = nil }, "ano"},
		{"ano too old", func(f *models.ListingForm) { f.Ano = intPtr(1899) }, "ano"},
		{"ano too far ahead", func(f *models.ListingForm) { f.Ano = intPtr(nextYear + 1) }, "ano"},
		{"missing precio", func(f *models.ListingForm) { f.Precio = nil }, "precio"},
		{"zero precio", func(f *models.ListingForm) { f.Precio = floatPtr(0) }, "precio"},
		{"negative precio", func(f *models.ListingForm) { f.Precio = floatPtr(-100) }, "precio"},
		{"missing kilometraje", func(f *models.ListingForm) { f.Kilometraje = nil }, "kilometraje"},
		{"negative kilometraje", func(f *models.ListingForm) { f.Kilometraje = intPtr(-1) }, "kilometraje"},
		{"empty colorExterior", func(f *models.ListingForm) { f.ColorExterior = " " }, "colorExterior"},
		{"empty motor", func(f *models.ListingForm) { f.Motor = "" }, "motor"},
		{"unknown moneda", func(f *models.ListingForm) { f.Moneda = "EUR" }, "moneda"},
		{"unknown combustible", func(f *models.ListingForm) { f.TipoCombustible = "Carbón" }, "tipoCombustible"},
		{"unknown transmision", func(f *models.ListingForm) { f.Transmision = "Triptronic" }, "transmision"},
		{"unknown condicion", func(f *models.ListingForm) { f.Condicion = "Chatarra" }, "condicion"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := validListingForm()
			tc.mutate(f)
			errs := Listing(f)
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("Listing() = %v; want error on field %q", errs, tc.field)
			}
		})
	}
}

func TestListing_BoundaryYears(t *testing.T) {
	for _, year := range []int{1900, time.Now().Year() + 1} {
		f := validListingForm()
		f.Ano = intPtr(year)
		if errs := Listing(f); errs["ano"] != "" {
			t.Errorf("Listing() rejected boundary year %d: %v", year, errs["ano"])
		}
	}
}

func TestListing_ZeroKilometrajeAllowed(t *testing.T) {
	f := validListingForm()
	f.Kilometraje = intPtr(0)
	if errs := Listing(f); errs["kilometraje"] != "" {
		t.Errorf("Listing() rejected 0 km: %v", errs["kilometraje"])
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name   string
		form   models.LoginForm
		fields []string
	}{
		{"valid", models.LoginForm{CorreoElectronico: "ana@example.com", Contrasena: "secreto"}, nil},
		{"empty email", models.LoginForm{Contrasena: "secreto"}, []string{"correoElectronico"}},
		{"bad email shape", models.LoginForm{CorreoElectronico: "no-es-correo", Contrasena: "secreto"}, []string{"correoElectronico"}},
		{"empty password", models.LoginForm{CorreoElectronico: "ana@example.com"}, []string{"contrasena"}},
		{"short password", models.LoginForm{CorreoElectronico: "ana@example.com", Contrasena: "abc"}, []string{"contrasena"}},
		{"both invalid", models.LoginForm{}, []string{"correoElectronico", "contrasena"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Login(&tc.form)
			if len(errs) != len(tc.fields) {
				t.Fatalf("Login() = %v; want errors on %v", errs, tc.fields)
			}
			for _, field := range tc.fields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Login() missing error on field %q: %v", field, errs)
				}
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	valid := models.RegistrationForm{
		Nombres:           "Ana María",
		Apellidos:         "Quiroga",
		CarnetDeIdentidad: "1234567",
		NumeroDeTelefono:  "71234567",
		CorreoElectronico: "ana@example.com",
		Contrasena:        "secreto",
	}
	if errs := Registration(&valid); len(errs) != 0 {
		t.Errorf("Registration() = %v; want no errors", errs)
	}

	tests := []struct {
		name   string
		mutate func(f *models.RegistrationForm)
		field  string
	}{
		{"empty nombres", func(f *models.RegistrationForm) { f.Nombres = "  " }, "nombres"},
		{"empty apellidos", func(f *models.RegistrationForm) { f.Apellidos = "" }, "apellidos"},
		{"empty carnet", func(f *models.RegistrationForm) { f.CarnetDeIdentidad = "" }, "carnetDeIdentidad"},
		{"empty telefono", func(f *models.RegistrationForm) { f.NumeroDeTelefono = "" }, "numeroDeTelefono"},
		{"telefono with letters", func(f *models.RegistrationForm) { f.NumeroDeTelefono = "7123abc" }, "numeroDeTelefono"},
		{"telefono too short", func(f *models.RegistrationForm) { f.NumeroDeTelefono = "123456" }, "numeroDeTelefono"},
		{"telefono too long", func(f *models.RegistrationForm) { f.NumeroDeTelefono = "1234567890123456" }, "numeroDeTelefono"},
		{"bad email", func(f *models.RegistrationForm) { f.CorreoElectronico = "ana@" }, "correoElectronico"},
		{"short password", func(f *models.RegistrationForm) { f.Contrasena = "abc" }, "contrasena"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			errs := Registration(&f)
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("Registration() = %v; want error on field %q", errs, tc.field)
			}
		})
	}
}

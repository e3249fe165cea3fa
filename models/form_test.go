package models

import "testing"

func TestDefaultListingForm(t *testing.T) {
	f := DefaultListingForm()
	if f.Moneda != "USD" || f.TipoCombustible != "Gasolina" || f.Transmision != "Manual" || f.Condicion != "Usado" {
		t.Errorf("DefaultListingForm() = %+v; want screen defaults", f)
	}
	if f.Ano != nil || f.Precio != nil || f.Kilometraje != nil {
		t.Error("DefaultListingForm() numeric fields should start absent")
	}
}

func TestAddCaracteristica(t *testing.T) {
	f := DefaultListingForm()

	if !f.AddCaracteristica("  GPS  ") {
		t.Error("AddCaracteristica rejected a fresh tag")
	}
	if f.AddCaracteristica("GPS") {
		t.Error("AddCaracteristica accepted a duplicate")
	}
	if f.AddCaracteristica("   ") {
		t.Error("AddCaracteristica accepted a blank tag")
	}
	if !f.AddCaracteristica("Aire acondicionado") {
		t.Error("AddCaracteristica rejected a second fresh tag")
	}

	want := []string{"GPS", "Aire acondicionado"}
	if len(f.Caracteristicas) != len(want) {
		t.Fatalf("Caracteristicas = %v; want %v", f.Caracteristicas, want)
	}
	for i := range want {
		if f.Caracteristicas[i] != want[i] {
			t.Errorf("Caracteristicas[%d] = %q; want %q", i, f.Caracteristicas[i], want[i])
		}
	}
}

func TestRemoveCaracteristica(t *testing.T) {
	f := DefaultListingForm()
	f.AddCaracteristica("GPS")
	f.AddCaracteristica("Quemacocos")
	f.AddCaracteristica("Cámara de retroceso")

	f.RemoveCaracteristica(1)
	if len(f.Caracteristicas) != 2 || f.Caracteristicas[1] != "Cámara de retroceso" {
		t.Errorf("Caracteristicas = %v after remove; want [GPS, Cámara de retroceso]", f.Caracteristicas)
	}

	f.RemoveCaracteristica(10)
	f.RemoveCaracteristica(-1)
	if len(f.Caracteristicas) != 2 {
		t.Errorf("out-of-range removes changed the list: %v", f.Caracteristicas)
	}
}

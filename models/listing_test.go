package models

import (
	"testing"
	"time"
)

func TestListingDocument_PinsEstadoPublicacion(t *testing.T) {
	// Whatever the caller put on the struct, the stored document says "activo".
	for _, estado := range []string{"", "activo", "pausado", "vendido"} {
		l := &Listing{
			ID:                "auto-1",
			Marca:             "Toyota",
			Modelo:            "Corolla",
			EstadoPublicacion: estado,
		}
		doc := l.Document()
		if doc["estadoPublicacion"] != EstadoActivo {
			t.Errorf("Document()[estadoPublicacion] = %v with input %q; want %q", doc["estadoPublicacion"], estado, EstadoActivo)
		}
	}
}

func TestListingDocument_Fields(t *testing.T) {
	published := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	l := &Listing{
		ID:               "auto-2",
		Marca:            "Honda",
		Modelo:           "Civic",
		Version:          "Sport",
		Ano:              2021,
		Precio:           18500.50,
		Moneda:           "USD",
		Kilometraje:      32000,
		ColorExterior:    "Negro",
		Motor:            "2.0L",
		Imagenes:         []string{"https://res.example/a.jpg", "https://res.example/b.jpg"},
		Caracteristicas:  []string{"GPS", "Aire acondicionado"},
		FechaPublicacion: published,
		VendedorID:       "uid-123",
	}
	doc := l.Document()

	if doc["marca"] != "Honda" || doc["modelo"] != "Civic" {
		t.Errorf("Document() marca/modelo = %v/%v", doc["marca"], doc["modelo"])
	}
	if doc["precio"] != 18500.50 {
		t.Errorf("Document()[precio] = %v; want 18500.50", doc["precio"])
	}
	if doc["vendedorId"] != "uid-123" {
		t.Errorf("Document()[vendedorId] = %v; want uid-123", doc["vendedorId"])
	}
	urls, ok := doc["imagenes"].([]string)
	if !ok || len(urls) != 2 || urls[0] != "https://res.example/a.jpg" {
		t.Errorf("Document()[imagenes] = %v; want the two URLs in order", doc["imagenes"])
	}
}

func TestListingDocument_NilSlicesEncodeEmpty(t *testing.T) {
	l := &Listing{ID: "auto-3"}
	doc := l.Document()

	if urls, ok := doc["imagenes"].([]string); !ok || urls == nil {
		t.Errorf("Document()[imagenes] = %v; want empty non-nil slice", doc["imagenes"])
	}
	if tags, ok := doc["caracteristicas"].([]string); !ok || tags == nil {
		t.Errorf("Document()[caracteristicas] = %v; want empty non-nil slice", doc["caracteristicas"])
	}
}

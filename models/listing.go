// File: autoconecta/models/listing.go
package models

import "time"

// EstadoActivo is the only publication status a listing can be created
// with; the stored document always carries it regardless of input.
const EstadoActivo = "activo"

// Listing represents a published vehicle. Field names on the wire keep
// the schema the mobile and web clients already read ("autos" collection).
type Listing struct {
	ID               string    `bson:"id" json:"id"`
	Marca            string    `bson:"marca" json:"marca"`
	Modelo           string    `bson:"modelo" json:"modelo"`
	Version          string    `bson:"version" json:"version"`
	Ano              int       `bson:"ano" json:"ano"`
	Precio           float64   `bson:"precio" json:"precio"`
	Moneda           string    `bson:"moneda" json:"moneda"`
	Kilometraje      int       `bson:"kilometraje" json:"kilometraje"`
	ColorExterior    string    `bson:"colorExterior" json:"colorExterior"`
	ColorInterior    string    `bson:"colorInterior" json:"colorInterior"`
	TipoCombustible  string    `bson:"tipoCombustible" json:"tipoCombustible"`
	Transmision      string    `bson:"transmision" json:"transmision"`
	Motor            string    `bson:"motor" json:"motor"`
	VIN              string    `bson:"vin" json:"vin"`
	Condicion        string    `bson:"condicion" json:"condicion"`
	Descripcion      string    `bson:"descripcion" json:"descripcion"`
	Imagenes         []string  `bson:"imagenes" json:"imagenes"`
	Caracteristicas  []string  `bson:"caracteristicas" json:"caracteristicas"`
	FechaPublicacion time.Time `bson:"fechaPublicacion" json:"fechaPublicacion"`
	EstadoPublicacion string   `bson:"estadoPublicacion" json:"estadoPublicacion"`
	VendedorID       string    `bson:"vendedorId" json:"vendedorId"`
}

// Document returns the storage representation of the listing. The
// publication status is pinned to "activo" here no matter what the
// caller set on the struct; there is no edit flow that could change it.
func (l *Listing) Document() map[string]any {
	imagenes := l.Imagenes
	if imagenes == nil {
		imagenes = []string{}
	}
	caracteristicas := l.Caracteristicas
	if caracteristicas == nil {
		caracteristicas = []string{}
	}
	return map[string]any{
		"id":                l.ID,
		"marca":             l.Marca,
		"modelo":            l.Modelo,
		"version":           l.Version,
		"ano":               l.Ano,
		"precio":            l.Precio,
		"moneda":            l.Moneda,
		"kilometraje":       l.Kilometraje,
		"colorExterior":     l.ColorExterior,
		"colorInterior":     l.ColorInterior,
		"tipoCombustible":   l.TipoCombustible,
		"transmision":       l.Transmision,
		"motor":             l.Motor,
		"vin":               l.VIN,
		"condicion":         l.Condicion,
		"descripcion":       l.Descripcion,
		"imagenes":          imagenes,
		"caracteristicas":   caracteristicas,
		"fechaPublicacion":  l.FechaPublicacion,
		"estadoPublicacion": EstadoActivo,
		"vendedorId":        l.VendedorID,
	}
}

package models

import "time"

// Notification severities, kept on the wire as the clients render them.
const (
	NotifExito       = "exito"
	NotifError       = "error"
	NotifAdvertencia = "advertencia"
	NotifInformacion = "informacion"
)

type Notification struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Titulo    string    `json:"titulo"`
	Mensaje   string    `json:"mensaje"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

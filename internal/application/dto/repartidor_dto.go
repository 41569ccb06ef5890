package dto

import "time"

// CreateRepartidorRequest entrada para registrar un repartidor.
type CreateRepartidorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required,max=30"`
	Zona     string `json:"zona" validate:"required,max=100"`
}

// UpdateRepartidorRequest entrada parcial para actualizar un repartidor.
type UpdateRepartidorRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
	Zona     *string `json:"zona" validate:"omitempty,max=100"`
}

// RepartidorResponse salida de un repartidor.
type RepartidorResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Zona          string    `json:"zona"`
}

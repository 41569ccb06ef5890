package dto

import "time"

// CreateClienteRequest entrada para registrar un cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required,max=30"`
	Direccion string `json:"direccion" validate:"required,max=300"`
}

// UpdateClienteRequest entrada parcial para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=30"`
	Direccion *string `json:"direccion" validate:"omitempty,max=300"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Direccion     string    `json:"direccion"`
}

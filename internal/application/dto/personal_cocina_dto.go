package dto

import "time"

// CreatePersonalCocinaRequest entrada para registrar personal de cocina.
type CreatePersonalCocinaRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required,max=30"`
	Turno    string `json:"turno" validate:"required,max=50"`
	Area     string `json:"area" validate:"required,max=100"`
}

// UpdatePersonalCocinaRequest entrada parcial para actualizar personal de cocina.
type UpdatePersonalCocinaRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
	Turno    *string `json:"turno" validate:"omitempty,max=50"`
	Area     *string `json:"area" validate:"omitempty,max=100"`
}

// PersonalCocinaResponse salida de personal de cocina.
type PersonalCocinaResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Turno         string    `json:"turno"`
	Area          string    `json:"area"`
}

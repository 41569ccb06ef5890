package dto

// CreateCategoriaRequest entrada para crear una categoría de la carta.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	ImagenURL   string `json:"imagen_url" validate:"omitempty,url"`
	Estado      string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// UpdateCategoriaRequest entrada parcial para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=500"`
	ImagenURL   *string `json:"imagen_url" validate:"omitempty,url"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	ImagenURL   string `json:"imagen_url"`
	Estado      string `json:"estado"`
}

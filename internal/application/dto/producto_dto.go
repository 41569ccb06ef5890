package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto de la carta.
type CreateProductoRequest struct {
	IDCategoria       int64           `json:"id_categoria" validate:"required,gt=0"`
	Nombre            string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion       string          `json:"descripcion" validate:"max=1000"`
	Precio            decimal.Decimal `json:"precio" validate:"required"`
	ImagenURL         string          `json:"imagen_url" validate:"omitempty,url"`
	TiempoPreparacion int             `json:"tiempo_preparacion" validate:"min=0"`
	Ingredientes      string          `json:"ingredientes" validate:"max=1000"`
	Estado            string          `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Destacado         bool            `json:"destacado"`
}

// UpdateProductoRequest entrada parcial para actualizar un producto.
type UpdateProductoRequest struct {
	IDCategoria       *int64           `json:"id_categoria" validate:"omitempty,gt=0"`
	Nombre            *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion       *string          `json:"descripcion" validate:"omitempty,max=1000"`
	Precio            *decimal.Decimal `json:"precio"`
	ImagenURL         *string          `json:"imagen_url" validate:"omitempty,url"`
	TiempoPreparacion *int             `json:"tiempo_preparacion" validate:"omitempty,min=0"`
	Ingredientes      *string          `json:"ingredientes" validate:"omitempty,max=1000"`
	Estado            *string          `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Destacado         *bool            `json:"destacado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID                int64           `json:"id"`
	IDCategoria       int64           `json:"id_categoria"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	Precio            decimal.Decimal `json:"precio"`
	ImagenURL         string          `json:"imagen_url"`
	TiempoPreparacion int             `json:"tiempo_preparacion"`
	Ingredientes      string          `json:"ingredientes"`
	Estado            string          `json:"estado"`
	Destacado         bool            `json:"destacado"`
}

package entity

import "github.com/shopspring/decimal"

// Producto artículo de la carta del restaurante.
type Producto struct {
	ID                int64
	IDCategoria       int64
	Nombre            string
	Descripcion       string
	Precio            decimal.Decimal
	ImagenURL         string
	TiempoPreparacion int // minutos
	Ingredientes      string
	Estado            string // activo, inactivo
	Destacado         bool
}

package entity

// Estados de categorías y productos.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Categoria agrupa productos de la carta.
type Categoria struct {
	ID          int64
	Nombre      string
	Descripcion string
	ImagenURL   string
	Estado      string // activo, inactivo
}

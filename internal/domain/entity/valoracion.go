package entity

import "time"

// Valoracion calificación (1..5) de un pedido por parte de un cliente.
type Valoracion struct {
	ID                int64
	IDPedido          int64
	IDCliente         int64
	Puntuacion        int
	Comentario        string
	FechaModificacion time.Time
}

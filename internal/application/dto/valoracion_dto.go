package dto

import "time"

// CreateValoracionRequest entrada para calificar un pedido (1 a 5).
type CreateValoracionRequest struct {
	IDPedido   int64  `json:"id_pedido" validate:"required,gt=0"`
	IDCliente  int64  `json:"id_cliente" validate:"required,gt=0"`
	Puntuacion int    `json:"puntuacion" validate:"required,min=1,max=5"`
	Comentario string `json:"comentario" validate:"max=1000"`
}

// UpdateValoracionRequest entrada parcial para corregir una valoración.
type UpdateValoracionRequest struct {
	Puntuacion *int    `json:"puntuacion" validate:"omitempty,min=1,max=5"`
	Comentario *string `json:"comentario" validate:"omitempty,max=1000"`
}

// ValoracionResponse salida de una valoración.
type ValoracionResponse struct {
	ID                int64     `json:"id"`
	IDPedido          int64     `json:"id_pedido"`
	IDCliente         int64     `json:"id_cliente"`
	Puntuacion        int       `json:"puntuacion"`
	Comentario        string    `json:"comentario"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}

// PromedioResponse promedio de puntuaciones de un pedido o cliente.
type PromedioResponse struct {
	Promedio float64 `json:"promedio"`
}

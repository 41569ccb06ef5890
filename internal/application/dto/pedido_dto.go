package dto

import "time"

// CreatePedidoRequest entrada para crear un pedido. Si Estado viene vacío el
// pedido nace pendiente.
type CreatePedidoRequest struct {
	IDCliente int64  `json:"id_cliente" validate:"required,gt=0"`
	Estado    string `json:"estado" validate:"omitempty,oneof=pendiente en_preparacion listo en_camino entregado cancelado"`
}

// UpdatePedidoRequest entrada parcial para actualizar un pedido.
type UpdatePedidoRequest struct {
	IDCliente *int64  `json:"id_cliente" validate:"omitempty,gt=0"`
	Estado    *string `json:"estado" validate:"omitempty,oneof=pendiente en_preparacion listo en_camino entregado cancelado"`
}

// CambioEstadoRequest entrada para la transición de estado de un pedido.
// IDCliente o IDPersonaCocina identifican a quién originó el cambio.
type CambioEstadoRequest struct {
	Estado          string `json:"estado" validate:"required,oneof=pendiente en_preparacion listo en_camino entregado cancelado"`
	IDCliente       int64  `json:"id_cliente" validate:"min=0"`
	IDPersonaCocina int64  `json:"id_persona_cocina" validate:"min=0"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID          int64     `json:"id"`
	IDCliente   int64     `json:"id_cliente"`
	FechaPedido time.Time `json:"fecha_pedido"`
	Estado      string    `json:"estado"`
}

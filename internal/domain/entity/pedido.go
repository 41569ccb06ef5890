package entity

import "time"

// Estados del ciclo de vida de un pedido.
const (
	PedidoPendiente     = "pendiente"
	PedidoEnPreparacion = "en_preparacion"
	PedidoListo         = "listo"
	PedidoEnCamino      = "en_camino"
	PedidoEntregado     = "entregado"
	PedidoCancelado     = "cancelado"
)

// Pedido orden realizada por un cliente. Las líneas viven en DetallePedido.
type Pedido struct {
	ID          int64
	IDCliente   int64
	FechaPedido time.Time
	Estado      string
}

package entity

import "time"

// HistorialEstados registro de cada cambio de estado de un pedido.
type HistorialEstados struct {
	ID              int64
	IDPedido        int64
	Estado          string
	FechaCambio     time.Time
	IDCliente       int64
	IDPersonaCocina int64
}

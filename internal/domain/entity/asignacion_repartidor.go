package entity

import "time"

// AsignacionRepartidor vincula un pedido con el repartidor que lo entrega.
// FechaEntrega es nil mientras la entrega está pendiente.
type AsignacionRepartidor struct {
	ID              int64
	IDPedido        int64
	IDRepartidor    int64
	FechaAsignacion time.Time
	FechaEntrega    *time.Time
}

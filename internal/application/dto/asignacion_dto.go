package dto

import "time"

// CreateAsignacionRequest entrada para asignar un repartidor a un pedido.
type CreateAsignacionRequest struct {
	IDPedido     int64 `json:"id_pedido" validate:"required,gt=0"`
	IDRepartidor int64 `json:"id_repartidor" validate:"required,gt=0"`
}

// UpdateAsignacionRequest entrada parcial para actualizar una asignación.
type UpdateAsignacionRequest struct {
	IDPedido     *int64     `json:"id_pedido" validate:"omitempty,gt=0"`
	IDRepartidor *int64     `json:"id_repartidor" validate:"omitempty,gt=0"`
	FechaEntrega *time.Time `json:"fecha_entrega"`
}

// AsignacionResponse salida de una asignación de reparto. FechaEntrega es
// null mientras la entrega está pendiente.
type AsignacionResponse struct {
	ID              int64      `json:"id"`
	IDPedido        int64      `json:"id_pedido"`
	IDRepartidor    int64      `json:"id_repartidor"`
	FechaAsignacion time.Time  `json:"fecha_asignacion"`
	FechaEntrega    *time.Time `json:"fecha_entrega"`
}

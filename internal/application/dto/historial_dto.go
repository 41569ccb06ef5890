package dto

import "time"

// HistorialResponse salida de un registro del historial de estados.
type HistorialResponse struct {
	ID              int64     `json:"id"`
	IDPedido        int64     `json:"id_pedido"`
	Estado          string    `json:"estado"`
	FechaCambio     time.Time `json:"fecha_cambio"`
	IDCliente       int64     `json:"id_cliente"`
	IDPersonaCocina int64     `json:"id_persona_cocina"`
}

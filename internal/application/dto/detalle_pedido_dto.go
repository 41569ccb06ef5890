package dto

import "github.com/shopspring/decimal"

// CreateDetallePedidoRequest entrada para agregar una línea a un pedido. El
// precio unitario se congela al momento de ordenar.
type CreateDetallePedidoRequest struct {
	IDPedido              int64           `json:"id_pedido" validate:"required,gt=0"`
	IDProducto            int64           `json:"id_producto" validate:"required,gt=0"`
	Cantidad              int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario        decimal.Decimal `json:"precio_unitario"`
	InstruccionesEspecial string          `json:"instrucciones_especial" validate:"max=500"`
}

// UpdateDetallePedidoRequest entrada parcial para actualizar una línea.
type UpdateDetallePedidoRequest struct {
	Cantidad              *int             `json:"cantidad" validate:"omitempty,gt=0"`
	PrecioUnitario        *decimal.Decimal `json:"precio_unitario"`
	InstruccionesEspecial *string          `json:"instrucciones_especial" validate:"omitempty,max=500"`
}

// DetallePedidoResponse salida de una línea de pedido.
type DetallePedidoResponse struct {
	ID                    int64           `json:"id"`
	IDPedido              int64           `json:"id_pedido"`
	IDProducto            int64           `json:"id_producto"`
	Cantidad              int             `json:"cantidad"`
	PrecioUnitario        decimal.Decimal `json:"precio_unitario"`
	InstruccionesEspecial string          `json:"instrucciones_especial"`
}

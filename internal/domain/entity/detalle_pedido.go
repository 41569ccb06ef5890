package entity

import "github.com/shopspring/decimal"

// DetallePedido línea de un pedido: producto, cantidad y precio congelado
// al momento de ordenar.
type DetallePedido struct {
	ID                    int64
	IDPedido              int64
	IDProducto            int64
	Cantidad              int
	PrecioUnitario        decimal.Decimal
	InstruccionesEspecial string
}

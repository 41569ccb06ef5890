package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// DetallePedidoRepository define el puerto de persistencia para DetallePedido (DIP).
type DetallePedidoRepository interface {
	Create(ctx context.Context, d *entity.DetallePedido) error
	GetByID(ctx context.Context, id int64) (*entity.DetallePedido, error)
	List(ctx context.Context) ([]*entity.DetallePedido, error)
	ListByPedido(ctx context.Context, idPedido int64) ([]*entity.DetallePedido, error)
	ListByProducto(ctx context.Context, idProducto int64) ([]*entity.DetallePedido, error)
	ListConInstrucciones(ctx context.Context) ([]*entity.DetallePedido, error)
	Update(ctx context.Context, d *entity.DetallePedido) error
	Delete(ctx context.Context, id int64) error
	DeleteByPedido(ctx context.Context, idPedido int64) error
}

package repository

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	Create(ctx context.Context, p *entity.Pedido) error
	GetByID(ctx context.Context, id int64) (*entity.Pedido, error)
	List(ctx context.Context) ([]*entity.Pedido, error)
	ListByCliente(ctx context.Context, idCliente int64) ([]*entity.Pedido, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.Pedido, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.Pedido, error)
	Update(ctx context.Context, p *entity.Pedido) error
	Delete(ctx context.Context, id int64) error
}

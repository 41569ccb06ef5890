package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// ValoracionRepository define el puerto de persistencia para Valoracion (DIP).
type ValoracionRepository interface {
	Create(ctx context.Context, v *entity.Valoracion) error
	GetByID(ctx context.Context, id int64) (*entity.Valoracion, error)
	List(ctx context.Context) ([]*entity.Valoracion, error)
	ListByPedido(ctx context.Context, idPedido int64) ([]*entity.Valoracion, error)
	ListByCliente(ctx context.Context, idCliente int64) ([]*entity.Valoracion, error)
	PromedioByPedido(ctx context.Context, idPedido int64) (float64, error)
	PromedioByCliente(ctx context.Context, idCliente int64) (float64, error)
	Update(ctx context.Context, v *entity.Valoracion) error
	Delete(ctx context.Context, id int64) error
}

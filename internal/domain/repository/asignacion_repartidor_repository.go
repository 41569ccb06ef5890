package repository

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// AsignacionRepartidorRepository define el puerto de persistencia para AsignacionRepartidor (DIP).
type AsignacionRepartidorRepository interface {
	Create(ctx context.Context, a *entity.AsignacionRepartidor) error
	GetByID(ctx context.Context, id int64) (*entity.AsignacionRepartidor, error)
	List(ctx context.Context) ([]*entity.AsignacionRepartidor, error)
	ListByPedido(ctx context.Context, idPedido int64) ([]*entity.AsignacionRepartidor, error)
	ListByRepartidor(ctx context.Context, idRepartidor int64) ([]*entity.AsignacionRepartidor, error)
	ListPendientes(ctx context.Context) ([]*entity.AsignacionRepartidor, error)
	Update(ctx context.Context, a *entity.AsignacionRepartidor) error
	RegistrarEntrega(ctx context.Context, id int64, fecha time.Time) (*entity.AsignacionRepartidor, error)
	Delete(ctx context.Context, id int64) error
}

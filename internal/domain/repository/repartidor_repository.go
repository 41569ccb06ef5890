package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// RepartidorRepository define el puerto de persistencia para Repartidor (DIP).
type RepartidorRepository interface {
	Create(ctx context.Context, r *entity.Repartidor) error
	GetByID(ctx context.Context, id int64) (*entity.Repartidor, error)
	List(ctx context.Context) ([]*entity.Repartidor, error)
	Update(ctx context.Context, r *entity.Repartidor) error
	Delete(ctx context.Context, id int64) error
}

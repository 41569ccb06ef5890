package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(ctx context.Context, c *entity.Categoria) error
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	List(ctx context.Context) ([]*entity.Categoria, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.Categoria, error)
	SearchByNombre(ctx context.Context, nombre string) ([]*entity.Categoria, error)
	Update(ctx context.Context, c *entity.Categoria) error
	Delete(ctx context.Context, id int64) error
}

package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context) ([]*entity.Producto, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.Producto, error)
	ListDestacados(ctx context.Context) ([]*entity.Producto, error)
	ListByCategoriaAndEstado(ctx context.Context, idCategoria int64, estado string) ([]*entity.Producto, error)
	SearchByNombre(ctx context.Context, nombre string) ([]*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id int64) error
}

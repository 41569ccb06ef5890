package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// HistorialEstadosRepository define el puerto de persistencia para HistorialEstados (DIP).
type HistorialEstadosRepository interface {
	Create(ctx context.Context, h *entity.HistorialEstados) error
	GetByID(ctx context.Context, id int64) (*entity.HistorialEstados, error)
	List(ctx context.Context) ([]*entity.HistorialEstados, error)
	ListByPedido(ctx context.Context, idPedido int64) ([]*entity.HistorialEstados, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.HistorialEstados, error)
	ListByCliente(ctx context.Context, idCliente int64) ([]*entity.HistorialEstados, error)
	UltimoByPedido(ctx context.Context, idPedido int64) (*entity.HistorialEstados, error)
	Delete(ctx context.Context, id int64) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

var _ repository.HistorialEstadosRepository = (*HistorialEstadosRepo)(nil)

const historialCols = `id, id_pedido, estado, fecha_cambio, id_cliente, id_persona_cocina`

// HistorialEstadosRepo implementación PostgreSQL del puerto HistorialEstadosRepository.
type HistorialEstadosRepo struct {
	q Querier
}

func NewHistorialEstadosRepository(q Querier) *HistorialEstadosRepo {
	return &HistorialEstadosRepo{q: q}
}

func scanHistorial(row pgx.Row) (*entity.HistorialEstados, error) {
	var h entity.HistorialEstados
	err := row.Scan(&h.ID, &h.IDPedido, &h.Estado, &h.FechaCambio, &h.IDCliente, &h.IDPersonaCocina)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan historial: %w", err)
	}
	return &h, nil
}

func (r *HistorialEstadosRepo) Create(ctx context.Context, h *entity.HistorialEstados) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO historial_estados (id_pedido, estado, fecha_cambio, id_cliente, id_persona_cocina)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		h.IDPedido, h.Estado, h.FechaCambio, h.IDCliente, h.IDPersonaCocina,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insertar historial: %w", err)
	}
	return nil
}

func (r *HistorialEstadosRepo) GetByID(ctx context.Context, id int64) (*entity.HistorialEstados, error) {
	return scanHistorial(r.q.QueryRow(ctx,
		`SELECT `+historialCols+` FROM historial_estados WHERE id = $1`, id))
}

func (r *HistorialEstadosRepo) List(ctx context.Context) ([]*entity.HistorialEstados, error) {
	return queryList(ctx, r.q, scanHistorial,
		`SELECT `+historialCols+` FROM historial_estados ORDER BY id`)
}

func (r *HistorialEstadosRepo) ListByPedido(ctx context.Context, idPedido int64) ([]*entity.HistorialEstados, error) {
	return queryList(ctx, r.q, scanHistorial,
		`SELECT `+historialCols+` FROM historial_estados WHERE id_pedido = $1 ORDER BY fecha_cambio`, idPedido)
}

func (r *HistorialEstadosRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.HistorialEstados, error) {
	return queryList(ctx, r.q, scanHistorial,
		`SELECT `+historialCols+` FROM historial_estados WHERE estado = $1 ORDER BY fecha_cambio`, estado)
}

func (r *HistorialEstadosRepo) ListByCliente(ctx context.Context, idCliente int64) ([]*entity.HistorialEstados, error) {
	return queryList(ctx, r.q, scanHistorial,
		`SELECT `+historialCols+` FROM historial_estados WHERE id_cliente = $1 ORDER BY fecha_cambio`, idCliente)
}

func (r *HistorialEstadosRepo) UltimoByPedido(ctx context.Context, idPedido int64) (*entity.HistorialEstados, error) {
	return scanHistorial(r.q.QueryRow(ctx,
		`SELECT `+historialCols+` FROM historial_estados WHERE id_pedido = $1 ORDER BY fecha_cambio DESC, id DESC LIMIT 1`,
		idPedido))
}

func (r *HistorialEstadosRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM historial_estados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar historial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

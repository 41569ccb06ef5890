package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

var _ repository.AsignacionRepartidorRepository = (*AsignacionRepartidorRepo)(nil)

const asignacionCols = `id, id_pedido, id_repartidor, fecha_asignacion, fecha_entrega`

// AsignacionRepartidorRepo implementación PostgreSQL del puerto AsignacionRepartidorRepository.
type AsignacionRepartidorRepo struct {
	q Querier
}

func NewAsignacionRepartidorRepository(q Querier) *AsignacionRepartidorRepo {
	return &AsignacionRepartidorRepo{q: q}
}

func scanAsignacion(row pgx.Row) (*entity.AsignacionRepartidor, error) {
	var a entity.AsignacionRepartidor
	err := row.Scan(&a.ID, &a.IDPedido, &a.IDRepartidor, &a.FechaAsignacion, &a.FechaEntrega)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan asignación: %w", err)
	}
	return &a, nil
}

func (r *AsignacionRepartidorRepo) Create(ctx context.Context, a *entity.AsignacionRepartidor) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO asignacion_repartidor (id_pedido, id_repartidor, fecha_asignacion, fecha_entrega)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		a.IDPedido, a.IDRepartidor, a.FechaAsignacion, a.FechaEntrega,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insertar asignación: %w", err)
	}
	return nil
}

func (r *AsignacionRepartidorRepo) GetByID(ctx context.Context, id int64) (*entity.AsignacionRepartidor, error) {
	return scanAsignacion(r.q.QueryRow(ctx,
		`SELECT `+asignacionCols+` FROM asignacion_repartidor WHERE id = $1`, id))
}

func (r *AsignacionRepartidorRepo) List(ctx context.Context) ([]*entity.AsignacionRepartidor, error) {
	return queryList(ctx, r.q, scanAsignacion,
		`SELECT `+asignacionCols+` FROM asignacion_repartidor ORDER BY id`)
}

func (r *AsignacionRepartidorRepo) ListByPedido(ctx context.Context, idPedido int64) ([]*entity.AsignacionRepartidor, error) {
	return queryList(ctx, r.q, scanAsignacion,
		`SELECT `+asignacionCols+` FROM asignacion_repartidor WHERE id_pedido = $1 ORDER BY id`, idPedido)
}

func (r *AsignacionRepartidorRepo) ListByRepartidor(ctx context.Context, idRepartidor int64) ([]*entity.AsignacionRepartidor, error) {
	return queryList(ctx, r.q, scanAsignacion,
		`SELECT `+asignacionCols+` FROM asignacion_repartidor WHERE id_repartidor = $1 ORDER BY id`, idRepartidor)
}

// ListPendientes asignaciones sin fecha de entrega registrada.
func (r *AsignacionRepartidorRepo) ListPendientes(ctx context.Context) ([]*entity.AsignacionRepartidor, error) {
	return queryList(ctx, r.q, scanAsignacion,
		`SELECT `+asignacionCols+` FROM asignacion_repartidor WHERE fecha_entrega IS NULL ORDER BY id`)
}

func (r *AsignacionRepartidorRepo) Update(ctx context.Context, a *entity.AsignacionRepartidor) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE asignacion_repartidor SET id_pedido = $1, id_repartidor = $2, fecha_entrega = $3 WHERE id = $4`,
		a.IDPedido, a.IDRepartidor, a.FechaEntrega, a.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar asignación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RegistrarEntrega marca la asignación como entregada y devuelve la fila actualizada.
func (r *AsignacionRepartidorRepo) RegistrarEntrega(ctx context.Context, id int64, fecha time.Time) (*entity.AsignacionRepartidor, error) {
	return scanAsignacion(r.q.QueryRow(ctx,
		`UPDATE asignacion_repartidor SET fecha_entrega = $1 WHERE id = $2 RETURNING `+asignacionCols,
		fecha, id))
}

func (r *AsignacionRepartidorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM asignacion_repartidor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar asignación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

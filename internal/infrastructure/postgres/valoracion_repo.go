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

var _ repository.ValoracionRepository = (*ValoracionRepo)(nil)

const valoracionCols = `id, id_pedido, id_cliente, puntuacion, comentario, fecha_modificacion`

// ValoracionRepo implementación PostgreSQL del puerto ValoracionRepository.
type ValoracionRepo struct {
	q Querier
}

func NewValoracionRepository(q Querier) *ValoracionRepo {
	return &ValoracionRepo{q: q}
}

func scanValoracion(row pgx.Row) (*entity.Valoracion, error) {
	var v entity.Valoracion
	err := row.Scan(&v.ID, &v.IDPedido, &v.IDCliente, &v.Puntuacion, &v.Comentario, &v.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan valoración: %w", err)
	}
	return &v, nil
}

func (r *ValoracionRepo) Create(ctx context.Context, v *entity.Valoracion) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO valoraciones (id_pedido, id_cliente, puntuacion, comentario, fecha_modificacion)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		v.IDPedido, v.IDCliente, v.Puntuacion, v.Comentario, v.FechaModificacion,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insertar valoración: %w", err)
	}
	return nil
}

func (r *ValoracionRepo) GetByID(ctx context.Context, id int64) (*entity.Valoracion, error) {
	return scanValoracion(r.q.QueryRow(ctx,
		`SELECT `+valoracionCols+` FROM valoraciones WHERE id = $1`, id))
}

func (r *ValoracionRepo) List(ctx context.Context) ([]*entity.Valoracion, error) {
	return queryList(ctx, r.q, scanValoracion,
		`SELECT `+valoracionCols+` FROM valoraciones ORDER BY id`)
}

func (r *ValoracionRepo) ListByPedido(ctx context.Context, idPedido int64) ([]*entity.Valoracion, error) {
	return queryList(ctx, r.q, scanValoracion,
		`SELECT `+valoracionCols+` FROM valoraciones WHERE id_pedido = $1 ORDER BY id`, idPedido)
}

func (r *ValoracionRepo) ListByCliente(ctx context.Context, idCliente int64) ([]*entity.Valoracion, error) {
	return queryList(ctx, r.q, scanValoracion,
		`SELECT `+valoracionCols+` FROM valoraciones WHERE id_cliente = $1 ORDER BY id`, idCliente)
}

// PromedioByPedido promedio de puntuaciones del pedido; 0 si no tiene valoraciones.
func (r *ValoracionRepo) PromedioByPedido(ctx context.Context, idPedido int64) (float64, error) {
	var promedio float64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(AVG(puntuacion), 0) FROM valoraciones WHERE id_pedido = $1`, idPedido).Scan(&promedio)
	if err != nil {
		return 0, fmt.Errorf("promedio por pedido: %w", err)
	}
	return promedio, nil
}

// PromedioByCliente promedio de puntuaciones emitidas por el cliente; 0 si no tiene.
func (r *ValoracionRepo) PromedioByCliente(ctx context.Context, idCliente int64) (float64, error) {
	var promedio float64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(AVG(puntuacion), 0) FROM valoraciones WHERE id_cliente = $1`, idCliente).Scan(&promedio)
	if err != nil {
		return 0, fmt.Errorf("promedio por cliente: %w", err)
	}
	return promedio, nil
}

func (r *ValoracionRepo) Update(ctx context.Context, v *entity.Valoracion) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE valoraciones SET puntuacion = $1, comentario = $2, fecha_modificacion = $3 WHERE id = $4`,
		v.Puntuacion, v.Comentario, v.FechaModificacion, v.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar valoración: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ValoracionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM valoraciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar valoración: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

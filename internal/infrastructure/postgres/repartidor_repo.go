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

var _ repository.RepartidorRepository = (*RepartidorRepo)(nil)

const repartidorCols = `id, nombre, email, telefono, fecha_registro, zona`

// RepartidorRepo implementación PostgreSQL del puerto RepartidorRepository.
type RepartidorRepo struct {
	q Querier
}

func NewRepartidorRepository(q Querier) *RepartidorRepo {
	return &RepartidorRepo{q: q}
}

func scanRepartidor(row pgx.Row) (*entity.Repartidor, error) {
	var rp entity.Repartidor
	err := row.Scan(&rp.ID, &rp.Nombre, &rp.Email, &rp.Telefono, &rp.FechaRegistro, &rp.Zona)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan repartidor: %w", err)
	}
	return &rp, nil
}

func (r *RepartidorRepo) Create(ctx context.Context, rp *entity.Repartidor) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO repartidores (nombre, email, telefono, fecha_registro, zona)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rp.Nombre, rp.Email, rp.Telefono, rp.FechaRegistro, rp.Zona,
	).Scan(&rp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar repartidor: %w", err)
	}
	return nil
}

func (r *RepartidorRepo) GetByID(ctx context.Context, id int64) (*entity.Repartidor, error) {
	return scanRepartidor(r.q.QueryRow(ctx,
		`SELECT `+repartidorCols+` FROM repartidores WHERE id = $1`, id))
}

func (r *RepartidorRepo) List(ctx context.Context) ([]*entity.Repartidor, error) {
	return queryList(ctx, r.q, scanRepartidor,
		`SELECT `+repartidorCols+` FROM repartidores ORDER BY id`)
}

func (r *RepartidorRepo) Update(ctx context.Context, rp *entity.Repartidor) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE repartidores SET nombre = $1, email = $2, telefono = $3, zona = $4 WHERE id = $5`,
		rp.Nombre, rp.Email, rp.Telefono, rp.Zona, rp.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar repartidor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RepartidorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM repartidores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar repartidor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

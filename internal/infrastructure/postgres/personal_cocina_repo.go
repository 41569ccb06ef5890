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

var _ repository.PersonalCocinaRepository = (*PersonalCocinaRepo)(nil)

const personalCocinaCols = `id, nombre, email, telefono, fecha_registro, turno, area`

// PersonalCocinaRepo implementación PostgreSQL del puerto PersonalCocinaRepository.
type PersonalCocinaRepo struct {
	q Querier
}

func NewPersonalCocinaRepository(q Querier) *PersonalCocinaRepo {
	return &PersonalCocinaRepo{q: q}
}

func scanPersonalCocina(row pgx.Row) (*entity.PersonalCocina, error) {
	var p entity.PersonalCocina
	err := row.Scan(&p.ID, &p.Nombre, &p.Email, &p.Telefono, &p.FechaRegistro, &p.Turno, &p.Area)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan personal de cocina: %w", err)
	}
	return &p, nil
}

func (r *PersonalCocinaRepo) Create(ctx context.Context, p *entity.PersonalCocina) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO personal_cocina (nombre, email, telefono, fecha_registro, turno, area)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.Nombre, p.Email, p.Telefono, p.FechaRegistro, p.Turno, p.Area,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar personal de cocina: %w", err)
	}
	return nil
}

func (r *PersonalCocinaRepo) GetByID(ctx context.Context, id int64) (*entity.PersonalCocina, error) {
	return scanPersonalCocina(r.q.QueryRow(ctx,
		`SELECT `+personalCocinaCols+` FROM personal_cocina WHERE id = $1`, id))
}

func (r *PersonalCocinaRepo) List(ctx context.Context) ([]*entity.PersonalCocina, error) {
	return queryList(ctx, r.q, scanPersonalCocina,
		`SELECT `+personalCocinaCols+` FROM personal_cocina ORDER BY id`)
}

func (r *PersonalCocinaRepo) Update(ctx context.Context, p *entity.PersonalCocina) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE personal_cocina SET nombre = $1, email = $2, telefono = $3, turno = $4, area = $5 WHERE id = $6`,
		p.Nombre, p.Email, p.Telefono, p.Turno, p.Area, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar personal de cocina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PersonalCocinaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM personal_cocina WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar personal de cocina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

const categoriaCols = `id, nombre, descripcion, imagen_url, estado`

// CategoriaRepo implementación PostgreSQL del puerto CategoriaRepository.
type CategoriaRepo struct {
	q Querier
}

func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

func scanCategoria(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.ImagenURL, &c.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan categoría: %w", err)
	}
	return &c, nil
}

func (r *CategoriaRepo) Create(ctx context.Context, c *entity.Categoria) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categorias (nombre, descripcion, imagen_url, estado)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Nombre, c.Descripcion, c.ImagenURL, c.Estado,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar categoría: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	return scanCategoria(r.q.QueryRow(ctx,
		`SELECT `+categoriaCols+` FROM categorias WHERE id = $1`, id))
}

func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.Categoria, error) {
	return queryList(ctx, r.q, scanCategoria,
		`SELECT `+categoriaCols+` FROM categorias ORDER BY id`)
}

func (r *CategoriaRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.Categoria, error) {
	return queryList(ctx, r.q, scanCategoria,
		`SELECT `+categoriaCols+` FROM categorias WHERE estado = $1 ORDER BY id`, estado)
}

func (r *CategoriaRepo) SearchByNombre(ctx context.Context, nombre string) ([]*entity.Categoria, error) {
	return queryList(ctx, r.q, scanCategoria,
		`SELECT `+categoriaCols+` FROM categorias WHERE nombre ILIKE '%' || $1 || '%' ORDER BY id`, nombre)
}

func (r *CategoriaRepo) Update(ctx context.Context, c *entity.Categoria) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE categorias SET nombre = $1, descripcion = $2, imagen_url = $3, estado = $4 WHERE id = $5`,
		c.Nombre, c.Descripcion, c.ImagenURL, c.Estado, c.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoriaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar categoría: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

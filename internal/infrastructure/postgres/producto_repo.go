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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id, id_categoria, nombre, descripcion, precio, imagen_url, tiempo_preparacion, ingredientes, estado, destacado`

// ProductoRepo implementación PostgreSQL del puerto ProductoRepository.
type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.IDCategoria, &p.Nombre, &p.Descripcion, &p.Precio,
		&p.ImagenURL, &p.TiempoPreparacion, &p.Ingredientes, &p.Estado, &p.Destacado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO productos (id_categoria, nombre, descripcion, precio, imagen_url, tiempo_preparacion, ingredientes, estado, destacado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		p.IDCategoria, p.Nombre, p.Descripcion, p.Precio, p.ImagenURL,
		p.TiempoPreparacion, p.Ingredientes, p.Estado, p.Destacado,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return scanProducto(r.q.QueryRow(ctx,
		`SELECT `+productoCols+` FROM productos WHERE id = $1`, id))
}

func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	return queryList(ctx, r.q, scanProducto,
		`SELECT `+productoCols+` FROM productos ORDER BY id`)
}

func (r *ProductoRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.Producto, error) {
	return queryList(ctx, r.q, scanProducto,
		`SELECT `+productoCols+` FROM productos WHERE estado = $1 ORDER BY id`, estado)
}

func (r *ProductoRepo) ListDestacados(ctx context.Context) ([]*entity.Producto, error) {
	return queryList(ctx, r.q, scanProducto,
		`SELECT `+productoCols+` FROM productos WHERE destacado ORDER BY id`)
}

func (r *ProductoRepo) ListByCategoriaAndEstado(ctx context.Context, idCategoria int64, estado string) ([]*entity.Producto, error) {
	return queryList(ctx, r.q, scanProducto,
		`SELECT `+productoCols+` FROM productos WHERE id_categoria = $1 AND estado = $2 ORDER BY id`,
		idCategoria, estado)
}

func (r *ProductoRepo) SearchByNombre(ctx context.Context, nombre string) ([]*entity.Producto, error) {
	return queryList(ctx, r.q, scanProducto,
		`SELECT `+productoCols+` FROM productos WHERE nombre ILIKE '%' || $1 || '%' ORDER BY id`, nombre)
}

func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE productos SET id_categoria = $1, nombre = $2, descripcion = $3, precio = $4,
		 imagen_url = $5, tiempo_preparacion = $6, ingredientes = $7, estado = $8, destacado = $9
		 WHERE id = $10`,
		p.IDCategoria, p.Nombre, p.Descripcion, p.Precio, p.ImagenURL,
		p.TiempoPreparacion, p.Ingredientes, p.Estado, p.Destacado, p.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

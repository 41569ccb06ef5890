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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteCols = `id, nombre, email, telefono, fecha_registro, direccion`

// ClienteRepo implementación PostgreSQL del puerto ClienteRepository.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.FechaRegistro, &c.Direccion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO clientes (nombre, email, telefono, fecha_registro, direccion)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Nombre, c.Email, c.Telefono, c.FechaRegistro, c.Direccion,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	return scanCliente(r.q.QueryRow(ctx,
		`SELECT `+clienteCols+` FROM clientes WHERE id = $1`, id))
}

func (r *ClienteRepo) GetByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	return scanCliente(r.q.QueryRow(ctx,
		`SELECT `+clienteCols+` FROM clientes WHERE email = $1`, email))
}

func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	return queryList(ctx, r.q, scanCliente,
		`SELECT `+clienteCols+` FROM clientes ORDER BY id`)
}

func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clientes SET nombre = $1, email = $2, telefono = $3, direccion = $4 WHERE id = $5`,
		c.Nombre, c.Email, c.Telefono, c.Direccion, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

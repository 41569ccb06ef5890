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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoCols = `id, id_cliente, fecha_pedido, estado`

// PedidoRepo implementación PostgreSQL del puerto PedidoRepository.
type PedidoRepo struct {
	q Querier
}

func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(&p.ID, &p.IDCliente, &p.FechaPedido, &p.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan pedido: %w", err)
	}
	return &p, nil
}

func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO pedidos (id_cliente, fecha_pedido, estado)
		 VALUES ($1, $2, $3) RETURNING id`,
		p.IDCliente, p.FechaPedido, p.Estado,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insertar pedido: %w", err)
	}
	return nil
}

func (r *PedidoRepo) GetByID(ctx context.Context, id int64) (*entity.Pedido, error) {
	return scanPedido(r.q.QueryRow(ctx,
		`SELECT `+pedidoCols+` FROM pedidos WHERE id = $1`, id))
}

func (r *PedidoRepo) List(ctx context.Context) ([]*entity.Pedido, error) {
	return queryList(ctx, r.q, scanPedido,
		`SELECT `+pedidoCols+` FROM pedidos ORDER BY id`)
}

func (r *PedidoRepo) ListByCliente(ctx context.Context, idCliente int64) ([]*entity.Pedido, error) {
	return queryList(ctx, r.q, scanPedido,
		`SELECT `+pedidoCols+` FROM pedidos WHERE id_cliente = $1 ORDER BY id`, idCliente)
}

func (r *PedidoRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.Pedido, error) {
	return queryList(ctx, r.q, scanPedido,
		`SELECT `+pedidoCols+` FROM pedidos WHERE estado = $1 ORDER BY id`, estado)
}

func (r *PedidoRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.Pedido, error) {
	return queryList(ctx, r.q, scanPedido,
		`SELECT `+pedidoCols+` FROM pedidos WHERE fecha_pedido::date = $1::date ORDER BY id`, fecha)
}

func (r *PedidoRepo) Update(ctx context.Context, p *entity.Pedido) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pedidos SET id_cliente = $1, estado = $2 WHERE id = $3`,
		p.IDCliente, p.Estado, p.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PedidoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

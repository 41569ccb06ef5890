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

var _ repository.DetallePedidoRepository = (*DetallePedidoRepo)(nil)

const detallePedidoCols = `id, id_pedido, id_producto, cantidad, precio_unitario, instrucciones_especial`

// DetallePedidoRepo implementación PostgreSQL del puerto DetallePedidoRepository.
type DetallePedidoRepo struct {
	q Querier
}

func NewDetallePedidoRepository(q Querier) *DetallePedidoRepo {
	return &DetallePedidoRepo{q: q}
}

func scanDetallePedido(row pgx.Row) (*entity.DetallePedido, error) {
	var d entity.DetallePedido
	err := row.Scan(&d.ID, &d.IDPedido, &d.IDProducto, &d.Cantidad, &d.PrecioUnitario, &d.InstruccionesEspecial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan detalle de pedido: %w", err)
	}
	return &d, nil
}

func (r *DetallePedidoRepo) Create(ctx context.Context, d *entity.DetallePedido) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO detalle_pedido (id_pedido, id_producto, cantidad, precio_unitario, instrucciones_especial)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		d.IDPedido, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.InstruccionesEspecial,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insertar detalle de pedido: %w", err)
	}
	return nil
}

func (r *DetallePedidoRepo) GetByID(ctx context.Context, id int64) (*entity.DetallePedido, error) {
	return scanDetallePedido(r.q.QueryRow(ctx,
		`SELECT `+detallePedidoCols+` FROM detalle_pedido WHERE id = $1`, id))
}

func (r *DetallePedidoRepo) List(ctx context.Context) ([]*entity.DetallePedido, error) {
	return queryList(ctx, r.q, scanDetallePedido,
		`SELECT `+detallePedidoCols+` FROM detalle_pedido ORDER BY id`)
}

func (r *DetallePedidoRepo) ListByPedido(ctx context.Context, idPedido int64) ([]*entity.DetallePedido, error) {
	return queryList(ctx, r.q, scanDetallePedido,
		`SELECT `+detallePedidoCols+` FROM detalle_pedido WHERE id_pedido = $1 ORDER BY id`, idPedido)
}

func (r *DetallePedidoRepo) ListByProducto(ctx context.Context, idProducto int64) ([]*entity.DetallePedido, error) {
	return queryList(ctx, r.q, scanDetallePedido,
		`SELECT `+detallePedidoCols+` FROM detalle_pedido WHERE id_producto = $1 ORDER BY id`, idProducto)
}

func (r *DetallePedidoRepo) ListConInstrucciones(ctx context.Context) ([]*entity.DetallePedido, error) {
	return queryList(ctx, r.q, scanDetallePedido,
		`SELECT `+detallePedidoCols+` FROM detalle_pedido WHERE instrucciones_especial <> '' ORDER BY id`)
}

func (r *DetallePedidoRepo) Update(ctx context.Context, d *entity.DetallePedido) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE detalle_pedido SET id_pedido = $1, id_producto = $2, cantidad = $3,
		 precio_unitario = $4, instrucciones_especial = $5 WHERE id = $6`,
		d.IDPedido, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.InstruccionesEspecial, d.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar detalle de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DetallePedidoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM detalle_pedido WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar detalle de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DetallePedidoRepo) DeleteByPedido(ctx context.Context, idPedido int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM detalle_pedido WHERE id_pedido = $1`, idPedido); err != nil {
		return fmt.Errorf("eliminar detalles del pedido: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// TxBeginner abre transacciones; lo satisfacen pgxpool.Pool y los dobles de test.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ repository.RowLocker = (*RowLocker)(nil)

// RowLocker implementa el protocolo de lectura con candado exclusivo:
// abre una transacción, lee la fila con SELECT ... FOR UPDATE, retiene el
// candado durante el intervalo de permanencia y lo libera al cerrar la
// transacción. Mientras tanto, cualquier otro escritor sobre esa fila espera.
type RowLocker struct {
	db    TxBeginner
	dwell time.Duration
}

func NewRowLocker(db TxBeginner, dwell time.Duration) *RowLocker {
	return &RowLocker{db: db, dwell: dwell}
}

// fetchForUpdate ejecuta el protocolo completo. La cancelación del contexto
// acorta la permanencia pero no aborta la lectura: la entidad ya leída se
// devuelve igualmente y el candado se libera al cerrar la transacción, por
// eso el cierre usa un contexto sin cancelación.
func fetchForUpdate[T any](ctx context.Context, db TxBeginner, dwell time.Duration, fetch func(pgx.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("abrir transacción: %w", err)
	}
	done := context.WithoutCancel(ctx)
	defer func() { _ = tx.Rollback(done) }()

	v, err := fetch(tx)
	if err != nil {
		return zero, err
	}

	holdLock(ctx, dwell)

	if err := tx.Commit(done); err != nil {
		return zero, fmt.Errorf("cerrar transacción: %w", err)
	}
	return v, nil
}

// holdLock espera d o hasta que el contexto se cancele, lo que ocurra primero.
func holdLock(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (l *RowLocker) ClienteConBloqueo(ctx context.Context, id int64) (*entity.Cliente, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Cliente, error) {
		return scanCliente(tx.QueryRow(ctx,
			`SELECT `+clienteCols+` FROM clientes WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) PersonalCocinaConBloqueo(ctx context.Context, id int64) (*entity.PersonalCocina, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.PersonalCocina, error) {
		return scanPersonalCocina(tx.QueryRow(ctx,
			`SELECT `+personalCocinaCols+` FROM personal_cocina WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) RepartidorConBloqueo(ctx context.Context, id int64) (*entity.Repartidor, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Repartidor, error) {
		return scanRepartidor(tx.QueryRow(ctx,
			`SELECT `+repartidorCols+` FROM repartidores WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) CategoriaConBloqueo(ctx context.Context, id int64) (*entity.Categoria, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Categoria, error) {
		return scanCategoria(tx.QueryRow(ctx,
			`SELECT `+categoriaCols+` FROM categorias WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) ProductoConBloqueo(ctx context.Context, id int64) (*entity.Producto, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Producto, error) {
		return scanProducto(tx.QueryRow(ctx,
			`SELECT `+productoCols+` FROM productos WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) PedidoConBloqueo(ctx context.Context, id int64) (*entity.Pedido, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Pedido, error) {
		return scanPedido(tx.QueryRow(ctx,
			`SELECT `+pedidoCols+` FROM pedidos WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) DetallePedidoConBloqueo(ctx context.Context, id int64) (*entity.DetallePedido, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.DetallePedido, error) {
		return scanDetallePedido(tx.QueryRow(ctx,
			`SELECT `+detallePedidoCols+` FROM detalle_pedido WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) HistorialConBloqueo(ctx context.Context, id int64) (*entity.HistorialEstados, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.HistorialEstados, error) {
		return scanHistorial(tx.QueryRow(ctx,
			`SELECT `+historialCols+` FROM historial_estados WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) ValoracionConBloqueo(ctx context.Context, id int64) (*entity.Valoracion, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.Valoracion, error) {
		return scanValoracion(tx.QueryRow(ctx,
			`SELECT `+valoracionCols+` FROM valoraciones WHERE id = $1 FOR UPDATE`, id))
	})
}

func (l *RowLocker) AsignacionConBloqueo(ctx context.Context, id int64) (*entity.AsignacionRepartidor, error) {
	return fetchForUpdate(ctx, l.db, l.dwell, func(tx pgx.Tx) (*entity.AsignacionRepartidor, error) {
		return scanAsignacion(tx.QueryRow(ctx,
			`SELECT `+asignacionCols+` FROM asignacion_repartidor WHERE id = $1 FOR UPDATE`, id))
	})
}

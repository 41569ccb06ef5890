package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// RowLocker expone el protocolo uniforme de "fetch con bloqueo": cada método
// adquiere el candado exclusivo de la fila (SELECT ... FOR UPDATE), lo retiene
// durante el intervalo de permanencia configurado y devuelve la entidad al
// cerrar la transacción. Cualquier otro escritor sobre la misma fila queda
// bloqueado hasta entonces. Único error esperado: domain.ErrNotFound.
type RowLocker interface {
	ClienteConBloqueo(ctx context.Context, id int64) (*entity.Cliente, error)
	PersonalCocinaConBloqueo(ctx context.Context, id int64) (*entity.PersonalCocina, error)
	RepartidorConBloqueo(ctx context.Context, id int64) (*entity.Repartidor, error)
	CategoriaConBloqueo(ctx context.Context, id int64) (*entity.Categoria, error)
	ProductoConBloqueo(ctx context.Context, id int64) (*entity.Producto, error)
	PedidoConBloqueo(ctx context.Context, id int64) (*entity.Pedido, error)
	DetallePedidoConBloqueo(ctx context.Context, id int64) (*entity.DetallePedido, error)
	HistorialConBloqueo(ctx context.Context, id int64) (*entity.HistorialEstados, error)
	ValoracionConBloqueo(ctx context.Context, id int64) (*entity.Valoracion, error)
	AsignacionConBloqueo(ctx context.Context, id int64) (*entity.AsignacionRepartidor, error)
}

package usecase

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// DetallePedidoUseCase casos de uso para las líneas de pedido.
type DetallePedidoUseCase struct {
	repo      repository.DetallePedidoRepository
	productos repository.ProductoRepository
	locker    repository.RowLocker
}

// NewDetallePedidoUseCase construye el caso de uso.
func NewDetallePedidoUseCase(repo repository.DetallePedidoRepository, productos repository.ProductoRepository, locker repository.RowLocker) *DetallePedidoUseCase {
	return &DetallePedidoUseCase{repo: repo, productos: productos, locker: locker}
}

// Create agrega una línea a un pedido. Si no viene precio unitario se congela
// el precio vigente del producto.
func (uc *DetallePedidoUseCase) Create(ctx context.Context, in dto.CreateDetallePedidoRequest) (*dto.DetallePedidoResponse, error) {
	precio := in.PrecioUnitario
	if precio.IsZero() {
		producto, err := uc.productos.GetByID(ctx, in.IDProducto)
		if err != nil {
			return nil, err
		}
		precio = producto.Precio
	}
	d := &entity.DetallePedido{
		IDPedido:              in.IDPedido,
		IDProducto:            in.IDProducto,
		Cantidad:              in.Cantidad,
		PrecioUnitario:        precio,
		InstruccionesEspecial: in.InstruccionesEspecial,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDetallePedidoResponse(d), nil
}

// GetByID obtiene una línea por ID.
func (uc *DetallePedidoUseCase) GetByID(ctx context.Context, id int64) (*dto.DetallePedidoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponse(d), nil
}

// List lista todas las líneas de pedido.
func (uc *DetallePedidoUseCase) List(ctx context.Context) ([]dto.DetallePedidoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponses(list), nil
}

// ListByPedido lista las líneas de un pedido.
func (uc *DetallePedidoUseCase) ListByPedido(ctx context.Context, idPedido int64) ([]dto.DetallePedidoResponse, error) {
	list, err := uc.repo.ListByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponses(list), nil
}

// ListByProducto lista las líneas que referencian un producto.
func (uc *DetallePedidoUseCase) ListByProducto(ctx context.Context, idProducto int64) ([]dto.DetallePedidoResponse, error) {
	list, err := uc.repo.ListByProducto(ctx, idProducto)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponses(list), nil
}

// ListConInstrucciones lista las líneas que traen instrucciones especiales.
func (uc *DetallePedidoUseCase) ListConInstrucciones(ctx context.Context) ([]dto.DetallePedidoResponse, error) {
	list, err := uc.repo.ListConInstrucciones(ctx)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponses(list), nil
}

// Update aplica los campos presentes y persiste.
func (uc *DetallePedidoUseCase) Update(ctx context.Context, id int64, in dto.UpdateDetallePedidoRequest) (*dto.DetallePedidoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Cantidad != nil {
		d.Cantidad = *in.Cantidad
	}
	if in.PrecioUnitario != nil {
		d.PrecioUnitario = *in.PrecioUnitario
	}
	if in.InstruccionesEspecial != nil {
		d.InstruccionesEspecial = *in.InstruccionesEspecial
	}
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDetallePedidoResponse(d), nil
}

// Delete elimina una línea por ID.
func (uc *DetallePedidoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// DeleteByPedido elimina todas las líneas de un pedido.
func (uc *DetallePedidoUseCase) DeleteByPedido(ctx context.Context, idPedido int64) error {
	return uc.repo.DeleteByPedido(ctx, idPedido)
}

// GetConBloqueo lee la línea reteniendo el candado exclusivo de la fila.
func (uc *DetallePedidoUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.DetallePedidoResponse, error) {
	d, err := uc.locker.DetallePedidoConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetallePedidoResponse(d), nil
}

func toDetallePedidoResponse(d *entity.DetallePedido) *dto.DetallePedidoResponse {
	if d == nil {
		return nil
	}
	return &dto.DetallePedidoResponse{
		ID:                    d.ID,
		IDPedido:              d.IDPedido,
		IDProducto:            d.IDProducto,
		Cantidad:              d.Cantidad,
		PrecioUnitario:        d.PrecioUnitario,
		InstruccionesEspecial: d.InstruccionesEspecial,
	}
}

func toDetallePedidoResponses(list []*entity.DetallePedido) []dto.DetallePedidoResponse {
	items := make([]dto.DetallePedidoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDetallePedidoResponse(d))
	}
	return items
}

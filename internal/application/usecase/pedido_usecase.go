package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// PedidoUseCase casos de uso para pedidos. Toda transición de estado deja
// rastro en el historial.
type PedidoUseCase struct {
	repo      repository.PedidoRepository
	historial repository.HistorialEstadosRepository
	locker    repository.RowLocker
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, historial repository.HistorialEstadosRepository, locker repository.RowLocker) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, historial: historial, locker: locker}
}

// Create crea un pedido. Estado vacío nace pendiente y queda registrado en
// el historial como primer cambio, atribuido al cliente.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.PedidoPendiente
	}
	p := &entity.Pedido{
		IDCliente:   in.IDCliente,
		FechaPedido: time.Now(),
		Estado:      estado,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := uc.historial.Create(ctx, &entity.HistorialEstados{
		IDPedido:    p.ID,
		Estado:      p.Estado,
		FechaCambio: time.Now(),
		IDCliente:   p.IDCliente,
	}); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// GetByID obtiene un pedido por ID.
func (uc *PedidoUseCase) GetByID(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// List lista todos los pedidos.
func (uc *PedidoUseCase) List(ctx context.Context) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListByCliente lista los pedidos de un cliente.
func (uc *PedidoUseCase) ListByCliente(ctx context.Context, idCliente int64) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.ListByCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListByEstado lista los pedidos en un estado dado.
func (uc *PedidoUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListByFecha lista los pedidos de una fecha.
func (uc *PedidoUseCase) ListByFecha(ctx context.Context, fecha time.Time) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListHoy lista los pedidos del día en curso.
func (uc *PedidoUseCase) ListHoy(ctx context.Context) ([]dto.PedidoResponse, error) {
	return uc.ListByFecha(ctx, time.Now())
}

// Update aplica los campos presentes y persiste. Un cambio de estado por esta
// vía también queda en el historial.
func (uc *PedidoUseCase) Update(ctx context.Context, id int64, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	estadoAnterior := p.Estado
	if in.IDCliente != nil {
		p.IDCliente = *in.IDCliente
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Estado != estadoAnterior {
		if err := uc.historial.Create(ctx, &entity.HistorialEstados{
			IDPedido:    p.ID,
			Estado:      p.Estado,
			FechaCambio: time.Now(),
			IDCliente:   p.IDCliente,
		}); err != nil {
			return nil, err
		}
	}
	return toPedidoResponse(p), nil
}

// CambiarEstado transiciona el pedido al estado indicado y registra quién
// originó el cambio en el historial.
func (uc *PedidoUseCase) CambiarEstado(ctx context.Context, id int64, in dto.CambioEstadoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Estado = in.Estado
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := uc.historial.Create(ctx, &entity.HistorialEstados{
		IDPedido:        p.ID,
		Estado:          in.Estado,
		FechaCambio:     time.Now(),
		IDCliente:       in.IDCliente,
		IDPersonaCocina: in.IDPersonaCocina,
	}); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Delete elimina un pedido por ID.
func (uc *PedidoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee el pedido reteniendo el candado exclusivo de la fila.
func (uc *PedidoUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	p, err := uc.locker.PedidoConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		IDCliente:   p.IDCliente,
		FechaPedido: p.FechaPedido,
		Estado:      p.Estado,
	}
}

func toPedidoResponses(list []*entity.Pedido) []dto.PedidoResponse {
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p))
	}
	return items
}

package usecase

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// HistorialUseCase consultas sobre el historial de estados. Los registros se
// crean desde PedidoUseCase en cada transición; aquí solo se leen o depuran.
type HistorialUseCase struct {
	repo   repository.HistorialEstadosRepository
	locker repository.RowLocker
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(repo repository.HistorialEstadosRepository, locker repository.RowLocker) *HistorialUseCase {
	return &HistorialUseCase{repo: repo, locker: locker}
}

// GetByID obtiene un registro por ID.
func (uc *HistorialUseCase) GetByID(ctx context.Context, id int64) (*dto.HistorialResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHistorialResponse(h), nil
}

// List lista todo el historial.
func (uc *HistorialUseCase) List(ctx context.Context) ([]dto.HistorialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toHistorialResponses(list), nil
}

// ListByPedido lista los cambios de un pedido en orden cronológico.
func (uc *HistorialUseCase) ListByPedido(ctx context.Context, idPedido int64) ([]dto.HistorialResponse, error) {
	list, err := uc.repo.ListByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return toHistorialResponses(list), nil
}

// ListByEstado lista los cambios hacia un estado dado.
func (uc *HistorialUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.HistorialResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toHistorialResponses(list), nil
}

// ListByCliente lista los cambios originados por un cliente.
func (uc *HistorialUseCase) ListByCliente(ctx context.Context, idCliente int64) ([]dto.HistorialResponse, error) {
	list, err := uc.repo.ListByCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return toHistorialResponses(list), nil
}

// UltimoByPedido devuelve el cambio más reciente de un pedido.
func (uc *HistorialUseCase) UltimoByPedido(ctx context.Context, idPedido int64) (*dto.HistorialResponse, error) {
	h, err := uc.repo.UltimoByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return toHistorialResponse(h), nil
}

// Delete elimina un registro del historial.
func (uc *HistorialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee el registro reteniendo el candado exclusivo de la fila.
func (uc *HistorialUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.HistorialResponse, error) {
	h, err := uc.locker.HistorialConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHistorialResponse(h), nil
}

func toHistorialResponse(h *entity.HistorialEstados) *dto.HistorialResponse {
	if h == nil {
		return nil
	}
	return &dto.HistorialResponse{
		ID:              h.ID,
		IDPedido:        h.IDPedido,
		Estado:          h.Estado,
		FechaCambio:     h.FechaCambio,
		IDCliente:       h.IDCliente,
		IDPersonaCocina: h.IDPersonaCocina,
	}
}

func toHistorialResponses(list []*entity.HistorialEstados) []dto.HistorialResponse {
	items := make([]dto.HistorialResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHistorialResponse(h))
	}
	return items
}

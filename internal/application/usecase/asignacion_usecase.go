package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// AsignacionUseCase casos de uso para asignaciones de reparto.
type AsignacionUseCase struct {
	repo   repository.AsignacionRepartidorRepository
	locker repository.RowLocker
}

// NewAsignacionUseCase construye el caso de uso.
func NewAsignacionUseCase(repo repository.AsignacionRepartidorRepository, locker repository.RowLocker) *AsignacionUseCase {
	return &AsignacionUseCase{repo: repo, locker: locker}
}

// Create asigna un repartidor a un pedido. La entrega queda pendiente.
func (uc *AsignacionUseCase) Create(ctx context.Context, in dto.CreateAsignacionRequest) (*dto.AsignacionResponse, error) {
	a := &entity.AsignacionRepartidor{
		IDPedido:        in.IDPedido,
		IDRepartidor:    in.IDRepartidor,
		FechaAsignacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAsignacionResponse(a), nil
}

// GetByID obtiene una asignación por ID.
func (uc *AsignacionUseCase) GetByID(ctx context.Context, id int64) (*dto.AsignacionResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponse(a), nil
}

// List lista todas las asignaciones.
func (uc *AsignacionUseCase) List(ctx context.Context) ([]dto.AsignacionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponses(list), nil
}

// ListByPedido lista las asignaciones de un pedido.
func (uc *AsignacionUseCase) ListByPedido(ctx context.Context, idPedido int64) ([]dto.AsignacionResponse, error) {
	list, err := uc.repo.ListByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponses(list), nil
}

// ListByRepartidor lista las asignaciones de un repartidor.
func (uc *AsignacionUseCase) ListByRepartidor(ctx context.Context, idRepartidor int64) ([]dto.AsignacionResponse, error) {
	list, err := uc.repo.ListByRepartidor(ctx, idRepartidor)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponses(list), nil
}

// ListPendientes lista las asignaciones con entrega pendiente.
func (uc *AsignacionUseCase) ListPendientes(ctx context.Context) ([]dto.AsignacionResponse, error) {
	list, err := uc.repo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponses(list), nil
}

// Update aplica los campos presentes y persiste.
func (uc *AsignacionUseCase) Update(ctx context.Context, id int64, in dto.UpdateAsignacionRequest) (*dto.AsignacionResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IDPedido != nil {
		a.IDPedido = *in.IDPedido
	}
	if in.IDRepartidor != nil {
		a.IDRepartidor = *in.IDRepartidor
	}
	if in.FechaEntrega != nil {
		a.FechaEntrega = in.FechaEntrega
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAsignacionResponse(a), nil
}

// RegistrarEntrega marca la asignación como entregada con la hora actual.
func (uc *AsignacionUseCase) RegistrarEntrega(ctx context.Context, id int64) (*dto.AsignacionResponse, error) {
	a, err := uc.repo.RegistrarEntrega(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}
	return toAsignacionResponse(a), nil
}

// Delete elimina una asignación por ID.
func (uc *AsignacionUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee la asignación reteniendo el candado exclusivo de la fila.
func (uc *AsignacionUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.AsignacionResponse, error) {
	a, err := uc.locker.AsignacionConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAsignacionResponse(a), nil
}

func toAsignacionResponse(a *entity.AsignacionRepartidor) *dto.AsignacionResponse {
	if a == nil {
		return nil
	}
	return &dto.AsignacionResponse{
		ID:              a.ID,
		IDPedido:        a.IDPedido,
		IDRepartidor:    a.IDRepartidor,
		FechaAsignacion: a.FechaAsignacion,
		FechaEntrega:    a.FechaEntrega,
	}
}

func toAsignacionResponses(list []*entity.AsignacionRepartidor) []dto.AsignacionResponse {
	items := make([]dto.AsignacionResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAsignacionResponse(a))
	}
	return items
}

package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// ValoracionUseCase casos de uso para valoraciones de pedidos.
type ValoracionUseCase struct {
	repo   repository.ValoracionRepository
	locker repository.RowLocker
}

// NewValoracionUseCase construye el caso de uso.
func NewValoracionUseCase(repo repository.ValoracionRepository, locker repository.RowLocker) *ValoracionUseCase {
	return &ValoracionUseCase{repo: repo, locker: locker}
}

// Create registra la valoración de un pedido.
func (uc *ValoracionUseCase) Create(ctx context.Context, in dto.CreateValoracionRequest) (*dto.ValoracionResponse, error) {
	v := &entity.Valoracion{
		IDPedido:          in.IDPedido,
		IDCliente:         in.IDCliente,
		Puntuacion:        in.Puntuacion,
		Comentario:        in.Comentario,
		FechaModificacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toValoracionResponse(v), nil
}

// GetByID obtiene una valoración por ID.
func (uc *ValoracionUseCase) GetByID(ctx context.Context, id int64) (*dto.ValoracionResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toValoracionResponse(v), nil
}

// List lista todas las valoraciones.
func (uc *ValoracionUseCase) List(ctx context.Context) ([]dto.ValoracionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toValoracionResponses(list), nil
}

// ListByPedido lista las valoraciones de un pedido.
func (uc *ValoracionUseCase) ListByPedido(ctx context.Context, idPedido int64) ([]dto.ValoracionResponse, error) {
	list, err := uc.repo.ListByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return toValoracionResponses(list), nil
}

// ListByCliente lista las valoraciones emitidas por un cliente.
func (uc *ValoracionUseCase) ListByCliente(ctx context.Context, idCliente int64) ([]dto.ValoracionResponse, error) {
	list, err := uc.repo.ListByCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return toValoracionResponses(list), nil
}

// PromedioByPedido promedio de puntuaciones de un pedido.
func (uc *ValoracionUseCase) PromedioByPedido(ctx context.Context, idPedido int64) (*dto.PromedioResponse, error) {
	promedio, err := uc.repo.PromedioByPedido(ctx, idPedido)
	if err != nil {
		return nil, err
	}
	return &dto.PromedioResponse{Promedio: promedio}, nil
}

// PromedioByCliente promedio de puntuaciones emitidas por un cliente.
func (uc *ValoracionUseCase) PromedioByCliente(ctx context.Context, idCliente int64) (*dto.PromedioResponse, error) {
	promedio, err := uc.repo.PromedioByCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return &dto.PromedioResponse{Promedio: promedio}, nil
}

// Update aplica los campos presentes, refresca la fecha de modificación y persiste.
func (uc *ValoracionUseCase) Update(ctx context.Context, id int64, in dto.UpdateValoracionRequest) (*dto.ValoracionResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Puntuacion != nil {
		v.Puntuacion = *in.Puntuacion
	}
	if in.Comentario != nil {
		v.Comentario = *in.Comentario
	}
	v.FechaModificacion = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toValoracionResponse(v), nil
}

// Delete elimina una valoración por ID.
func (uc *ValoracionUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee la valoración reteniendo el candado exclusivo de la fila.
func (uc *ValoracionUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.ValoracionResponse, error) {
	v, err := uc.locker.ValoracionConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toValoracionResponse(v), nil
}

func toValoracionResponse(v *entity.Valoracion) *dto.ValoracionResponse {
	if v == nil {
		return nil
	}
	return &dto.ValoracionResponse{
		ID:                v.ID,
		IDPedido:          v.IDPedido,
		IDCliente:         v.IDCliente,
		Puntuacion:        v.Puntuacion,
		Comentario:        v.Comentario,
		FechaModificacion: v.FechaModificacion,
	}
}

func toValoracionResponses(list []*entity.Valoracion) []dto.ValoracionResponse {
	items := make([]dto.ValoracionResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toValoracionResponse(v))
	}
	return items
}

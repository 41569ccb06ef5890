package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// RepartidorUseCase casos de uso CRUD para repartidores.
type RepartidorUseCase struct {
	repo   repository.RepartidorRepository
	locker repository.RowLocker
}

// NewRepartidorUseCase construye el caso de uso.
func NewRepartidorUseCase(repo repository.RepartidorRepository, locker repository.RowLocker) *RepartidorUseCase {
	return &RepartidorUseCase{repo: repo, locker: locker}
}

// Create registra un repartidor.
func (uc *RepartidorUseCase) Create(ctx context.Context, in dto.CreateRepartidorRequest) (*dto.RepartidorResponse, error) {
	r := &entity.Repartidor{
		Persona: entity.Persona{
			Nombre:        in.Nombre,
			Email:         in.Email,
			Telefono:      in.Telefono,
			FechaRegistro: time.Now(),
		},
		Zona: in.Zona,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRepartidorResponse(r), nil
}

// GetByID obtiene un repartidor por ID.
func (uc *RepartidorUseCase) GetByID(ctx context.Context, id int64) (*dto.RepartidorResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRepartidorResponse(r), nil
}

// List lista todos los repartidores.
func (uc *RepartidorUseCase) List(ctx context.Context) ([]dto.RepartidorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepartidorResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepartidorResponse(r))
	}
	return items, nil
}

// Update aplica los campos presentes y persiste.
func (uc *RepartidorUseCase) Update(ctx context.Context, id int64, in dto.UpdateRepartidorRequest) (*dto.RepartidorResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		r.Nombre = *in.Nombre
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.Telefono != nil {
		r.Telefono = *in.Telefono
	}
	if in.Zona != nil {
		r.Zona = *in.Zona
	}
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRepartidorResponse(r), nil
}

// Delete elimina un repartidor por ID.
func (uc *RepartidorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee el repartidor reteniendo el candado exclusivo de la fila.
func (uc *RepartidorUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.RepartidorResponse, error) {
	r, err := uc.locker.RepartidorConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRepartidorResponse(r), nil
}

func toRepartidorResponse(r *entity.Repartidor) *dto.RepartidorResponse {
	if r == nil {
		return nil
	}
	return &dto.RepartidorResponse{
		ID:            r.ID,
		Nombre:        r.Nombre,
		Email:         r.Email,
		Telefono:      r.Telefono,
		FechaRegistro: r.FechaRegistro,
		Zona:          r.Zona,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// PersonalCocinaUseCase casos de uso CRUD para el personal de cocina.
type PersonalCocinaUseCase struct {
	repo   repository.PersonalCocinaRepository
	locker repository.RowLocker
}

// NewPersonalCocinaUseCase construye el caso de uso.
func NewPersonalCocinaUseCase(repo repository.PersonalCocinaRepository, locker repository.RowLocker) *PersonalCocinaUseCase {
	return &PersonalCocinaUseCase{repo: repo, locker: locker}
}

// Create registra un integrante del personal de cocina.
func (uc *PersonalCocinaUseCase) Create(ctx context.Context, in dto.CreatePersonalCocinaRequest) (*dto.PersonalCocinaResponse, error) {
	p := &entity.PersonalCocina{
		Persona: entity.Persona{
			Nombre:        in.Nombre,
			Email:         in.Email,
			Telefono:      in.Telefono,
			FechaRegistro: time.Now(),
		},
		Turno: in.Turno,
		Area:  in.Area,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPersonalCocinaResponse(p), nil
}

// GetByID obtiene un integrante por ID.
func (uc *PersonalCocinaUseCase) GetByID(ctx context.Context, id int64) (*dto.PersonalCocinaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPersonalCocinaResponse(p), nil
}

// List lista todo el personal de cocina.
func (uc *PersonalCocinaUseCase) List(ctx context.Context) ([]dto.PersonalCocinaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonalCocinaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPersonalCocinaResponse(p))
	}
	return items, nil
}

// Update aplica los campos presentes y persiste.
func (uc *PersonalCocinaUseCase) Update(ctx context.Context, id int64, in dto.UpdatePersonalCocinaRequest) (*dto.PersonalCocinaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Turno != nil {
		p.Turno = *in.Turno
	}
	if in.Area != nil {
		p.Area = *in.Area
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPersonalCocinaResponse(p), nil
}

// Delete elimina un integrante por ID.
func (uc *PersonalCocinaUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee el integrante reteniendo el candado exclusivo de la fila.
func (uc *PersonalCocinaUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.PersonalCocinaResponse, error) {
	p, err := uc.locker.PersonalCocinaConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPersonalCocinaResponse(p), nil
}

func toPersonalCocinaResponse(p *entity.PersonalCocina) *dto.PersonalCocinaResponse {
	if p == nil {
		return nil
	}
	return &dto.PersonalCocinaResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Email:         p.Email,
		Telefono:      p.Telefono,
		FechaRegistro: p.FechaRegistro,
		Turno:         p.Turno,
		Area:          p.Area,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo   repository.ClienteRepository
	locker repository.RowLocker
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, locker repository.RowLocker) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, locker: locker}
}

// Create registra un cliente nuevo.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{
		Persona: entity.Persona{
			Nombre:        in.Nombre,
			Email:         in.Email,
			Telefono:      in.Telefono,
			FechaRegistro: time.Now(),
		},
		Direccion: in.Direccion,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByEmail obtiene un cliente por email.
func (uc *ClienteUseCase) GetByEmail(ctx context.Context, email string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// Update aplica los campos presentes y persiste.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente por ID.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetConBloqueo lee el cliente reteniendo el candado exclusivo de la fila
// durante el intervalo de permanencia configurado.
func (uc *ClienteUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.locker.ClienteConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Email:         c.Email,
		Telefono:      c.Telefono,
		FechaRegistro: c.FechaRegistro,
		Direccion:     c.Direccion,
	}
}

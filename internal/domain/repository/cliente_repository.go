package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}

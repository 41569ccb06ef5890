package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// PersonalCocinaRepository define el puerto de persistencia para PersonalCocina (DIP).
type PersonalCocinaRepository interface {
	Create(ctx context.Context, p *entity.PersonalCocina) error
	GetByID(ctx context.Context, id int64) (*entity.PersonalCocina, error)
	List(ctx context.Context) ([]*entity.PersonalCocina, error)
	Update(ctx context.Context, p *entity.PersonalCocina) error
	Delete(ctx context.Context, id int64) error
}

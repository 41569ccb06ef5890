package repository

import (
	"context"

	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para las credenciales (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

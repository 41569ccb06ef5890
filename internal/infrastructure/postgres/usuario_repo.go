package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioCols = `id, username, password_hash, email, activo, roles`

// UsuarioRepo implementación PostgreSQL del puerto de credenciales.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Activo, &u.Roles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO usuarios (username, password_hash, email, activo, roles)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.Username, u.PasswordHash, u.Email, u.Activo, u.Roles,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return scanUsuario(r.q.QueryRow(ctx,
		`SELECT `+usuarioCols+` FROM usuarios WHERE username = $1`, username))
}

func (r *UsuarioRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("existe username: %w", err)
	}
	return exists, nil
}

func (r *UsuarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("existe email: %w", err)
	}
	return exists, nil
}

func (r *UsuarioRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM usuarios`).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar usuarios: %w", err)
	}
	return count, nil
}

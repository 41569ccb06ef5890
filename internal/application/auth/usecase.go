package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

// Claves cortas de rol aceptadas en el registro.
const (
	roleKeyAdmin          = "admin"
	roleKeyPersonalCocina = "personal_cocina"
)

// UseCase casos de uso de autenticación: login, registro y carga del principal.
type UseCase struct {
	usuarios repository.UsuarioRepository
	codec    *token.Codec
	ttl      time.Duration
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarios repository.UsuarioRepository, codec *token.Codec, ttl time.Duration) *UseCase {
	return &UseCase{usuarios: usuarios, codec: codec, ttl: ttl}
}

// Login verifica username/password y emite un token firmado. Credenciales
// inválidas y usuario inexistente devuelven el mismo error para no filtrar
// qué cuentas existen.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.JwtResponse, error) {
	user, err := uc.usuarios.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrInactiveUser
	}
	tok, err := uc.codec.Issue(user.Username, uc.ttl)
	if err != nil {
		return nil, err
	}
	return &dto.JwtResponse{
		Token:    tok,
		Type:     "Bearer",
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	}, nil
}

// Register crea un usuario nuevo. Username y email deben ser únicos; las
// claves de rol desconocidas o ausentes registran un cliente.
func (uc *UseCase) Register(ctx context.Context, in dto.SignupRequest) error {
	taken, err := uc.usuarios.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrUsernameTaken
	}
	taken, err = uc.usuarios.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.Usuario{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Activo:       true,
		Roles:        resolveRoles(in.Roles),
	}
	if err := uc.usuarios.Create(ctx, user); err != nil {
		// Carrera entre el chequeo de existencia y el insert.
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Load reconstruye el principal a partir del subject de un token ya
// verificado. Un usuario inactivo no produce principal.
func (uc *UseCase) Load(ctx context.Context, subject string) (*Principal, error) {
	user, err := uc.usuarios.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if !user.Activo {
		return nil, domain.ErrInactiveUser
	}
	authorities := make([]string, 0, len(user.Roles))
	for _, rol := range user.Roles {
		authorities = append(authorities, RoleToAuthority(rol))
	}
	return &Principal{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Authorities: authorities,
	}, nil
}

func resolveRoles(keys []string) []string {
	if len(keys) == 0 {
		return []string{entity.RolCliente}
	}
	roles := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case roleKeyAdmin:
			roles = append(roles, entity.RolAdmin)
		case roleKeyPersonalCocina:
			roles = append(roles, entity.RolPersonalCocina)
		default:
			roles = append(roles, entity.RolCliente)
		}
	}
	return roles
}

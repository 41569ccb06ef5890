package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

// fakeUsuarioRepo repositorio en memoria para los tests del caso de uso.
type fakeUsuarioRepo struct {
	users  map[string]*entity.Usuario
	nextID int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{users: map[string]*entity.Usuario{}, nextID: 1}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*entity.Usuario, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUsuarioRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestUseCase(t *testing.T) (*UseCase, *fakeUsuarioRepo) {
	t.Helper()
	codec, err := token.NewCodec("secreto-de-test", "restaurante-api")
	require.NoError(t, err)
	repo := newFakeUsuarioRepo()
	return NewUseCase(repo, codec, time.Hour), repo
}

func seedUser(t *testing.T, repo *fakeUsuarioRepo, username, password string, activo bool, roles ...string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.Usuario{
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@test.local",
		Activo:       activo,
		Roles:        roles,
	}))
}

func TestLoginExitoso(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", true, entity.RolCliente)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "clave123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.Type)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, []string{entity.RolCliente}, resp.Roles)
}

func TestLoginNoDistingueUsuarioInexistenteDePasswordIncorrecta(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", true, entity.RolCliente)

	_, errNoExiste := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	_, errPassword := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "incorrecta"})

	assert.ErrorIs(t, errNoExiste, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)
}

func TestLoginUsuarioInactivoNuncaEmiteToken(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", false, entity.RolCliente)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "clave123"})

	assert.ErrorIs(t, err, domain.ErrInactiveUser)
	assert.Nil(t, resp)
}

func TestRegisterAsignaRolClientePorDefecto(t *testing.T) {
	uc, repo := newTestUseCase(t)

	err := uc.Register(context.Background(), dto.SignupRequest{
		Username: "pedro", Email: "pedro@test.local", Password: "clave123",
	})

	require.NoError(t, err)
	u, err := repo.FindByUsername(context.Background(), "pedro")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RolCliente}, u.Roles)
	assert.True(t, u.Activo)
	assert.NotEqual(t, "clave123", u.PasswordHash, "la password nunca se guarda en claro")
}

func TestRegisterResuelveClavesDeRol(t *testing.T) {
	uc, repo := newTestUseCase(t)

	err := uc.Register(context.Background(), dto.SignupRequest{
		Username: "chef", Email: "chef@test.local", Password: "clave123",
		Roles: []string{"admin", "personal_cocina"},
	})

	require.NoError(t, err)
	u, err := repo.FindByUsername(context.Background(), "chef")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RolAdmin, entity.RolPersonalCocina}, u.Roles)
}

func TestRegisterRechazaUsernameYEmailDuplicados(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", true, entity.RolCliente)

	errUsername := uc.Register(context.Background(), dto.SignupRequest{
		Username: "maria", Email: "otra@test.local", Password: "clave123",
	})
	errEmail := uc.Register(context.Background(), dto.SignupRequest{
		Username: "otra", Email: "maria@test.local", Password: "clave123",
	})

	assert.ErrorIs(t, errUsername, domain.ErrUsernameTaken)
	assert.ErrorIs(t, errEmail, domain.ErrEmailTaken)
	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count, "un registro rechazado no debe mutar el almacén")
}

func TestLoadNormalizaAuthorities(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", true, entity.RolAdmin, entity.RolCliente)

	p, err := uc.Load(context.Background(), "maria")

	require.NoError(t, err)
	assert.Equal(t, []string{AuthorityAdmin, AuthorityCliente}, p.Authorities)
	assert.True(t, p.HasAuthority(AuthorityAdmin))
	assert.False(t, p.HasAuthority(AuthorityPersonalCocina))
}

func TestLoadUsuarioInactivoNoProducePrincipal(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedUser(t, repo, "maria", "clave123", false, entity.RolCliente)

	p, err := uc.Load(context.Background(), "maria")

	assert.ErrorIs(t, err, domain.ErrInactiveUser)
	assert.Nil(t, p)
}

func TestRoleToAuthority(t *testing.T) {
	cases := []struct {
		rol  string
		want string
	}{
		{"ROL_ADMIN", "ROLE_ADMIN"},
		{"ROL_PERSONAL_COCINA", "ROLE_PERSONAL_COCINA"},
		{"ROLE_CLIENTE", "ROLE_CLIENTE"},
		{"CLIENTE", "ROLE_CLIENTE"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoleToAuthority(tc.rol), tc.rol)
	}
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/pkg/logger"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

type stubLoader struct {
	principals map[string]*auth.Principal
}

func (s *stubLoader) Load(_ context.Context, subject string) (*auth.Principal, error) {
	p, ok := s.principals[subject]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

// appConSonda monta el middleware de autenticación y una ruta que reporta
// qué principal vio la petición.
func appConSonda(t *testing.T, loader PrincipalLoader) (*fiber.App, *token.Codec) {
	t.Helper()
	codec, err := token.NewCodec("clave-de-pruebas-suficientemente-larga", "restaurante-api")
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	app := fiber.New()
	app.Use(Authenticate(codec, loader, log))
	app.Get("/sonda", func(c *fiber.Ctx) error {
		if p := GetPrincipal(c); p != nil {
			return c.JSON(fiber.Map{"username": p.Username})
		}
		return c.JSON(fiber.Map{"username": ""})
	})
	return app, codec
}

func TestAuthenticateSinHeaderSigueAnonima(t *testing.T) {
	app, _ := appConSonda(t, &stubLoader{})

	req := httptest.NewRequest(http.MethodGet, "/sonda", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// La puerta nunca rechaza: la ruta responde con normalidad.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticateTokenInvalidoSigueAnonima(t *testing.T) {
	loader := &stubLoader{principals: map[string]*auth.Principal{
		"maria": {ID: 1, Username: "maria", Authorities: []string{auth.AuthorityCliente}},
	}}
	app, _ := appConSonda(t, loader)

	casos := []string{
		"Bearer no-es-un-jwt",
		"Bearer ",
		"Basic bWFyaWE6c2VjcmV0bw==",
		"Bearer eyJhbGciOiJIUzI1NiJ9.e30.firmainvalida",
	}
	for _, header := range casos {
		req := httptest.NewRequest(http.MethodGet, "/sonda", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
	}
}

func TestAuthenticateTokenValidoAdjuntaPrincipal(t *testing.T) {
	loader := &stubLoader{principals: map[string]*auth.Principal{
		"maria": {ID: 1, Username: "maria", Authorities: []string{auth.AuthorityCliente}},
	}}
	app, codec := appConSonda(t, loader)

	var visto *auth.Principal
	app.Get("/quien", func(c *fiber.Ctx) error {
		visto = GetPrincipal(c)
		return c.SendStatus(http.StatusOK)
	})

	tok, err := codec.Issue("maria", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, visto)
	assert.Equal(t, "maria", visto.Username)
	assert.True(t, visto.HasAuthority(auth.AuthorityCliente))
}

func TestAuthenticateUsuarioDesconocidoSigueAnonima(t *testing.T) {
	app, codec := appConSonda(t, &stubLoader{})

	tok, err := codec.Issue("fantasma", time.Minute)
	require.NoError(t, err)

	var visto *auth.Principal
	app.Get("/quien", func(c *fiber.Ctx) error {
		visto = GetPrincipal(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, visto)
}

func TestAuthenticateTokenExpiradoSigueAnonima(t *testing.T) {
	loader := &stubLoader{principals: map[string]*auth.Principal{
		"maria": {ID: 1, Username: "maria", Authorities: []string{auth.AuthorityCliente}},
	}}
	app, codec := appConSonda(t, loader)

	tok, err := codec.Issue("maria", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/sonda", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireDistingue401De403(t *testing.T) {
	loader := &stubLoader{principals: map[string]*auth.Principal{
		"maria": {ID: 1, Username: "maria", Authorities: []string{auth.AuthorityCliente}},
	}}
	app, codec := appConSonda(t, loader)
	app.Get("/solo-admin", Require(Rule{}), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	// Anónimo: 401.
	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Autenticado sin permiso: 403.
	tok, err := codec.Issue("maria", time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

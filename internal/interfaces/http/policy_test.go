package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/internal/domain"
)

func principalCliente() *auth.Principal {
	return &auth.Principal{
		ID:          42,
		Username:    "maria",
		Email:       "maria@example.com",
		Authorities: []string{auth.AuthorityCliente},
	}
}

func principalAdmin() *auth.Principal {
	return &auth.Principal{
		ID:          1,
		Username:    "admin",
		Authorities: []string{auth.AuthorityAdmin},
	}
}

func TestEvaluateAnonimaSiemprePermite(t *testing.T) {
	r := Rule{Anonymous: true}

	assert.NoError(t, Evaluate(r, nil, ""))
	assert.NoError(t, Evaluate(r, principalCliente(), ""))
}

func TestEvaluateSinPrincipalDevuelveUnauthorized(t *testing.T) {
	casos := []Rule{
		{},
		{Roles: []string{auth.AuthorityCliente}},
		{OwnerParam: "id", OwnerBy: OwnerByUsername},
	}
	for _, r := range casos {
		assert.ErrorIs(t, Evaluate(r, nil, "maria"), domain.ErrUnauthorized)
	}
}

func TestEvaluateAdminSatisfaceCualquierReglaNoAnonima(t *testing.T) {
	admin := principalAdmin()

	assert.NoError(t, Evaluate(Rule{}, admin, ""))
	assert.NoError(t, Evaluate(Rule{Roles: []string{auth.AuthorityCliente}}, admin, ""))
	assert.NoError(t, Evaluate(Rule{OwnerParam: "id", OwnerBy: OwnerByUsername}, admin, "otro"))
}

func TestEvaluateRolDirecto(t *testing.T) {
	r := Rule{Roles: []string{auth.AuthorityPersonalCocina, auth.AuthorityCliente}}

	assert.NoError(t, Evaluate(r, principalCliente(), ""))

	sinRol := &auth.Principal{ID: 7, Username: "pepe", Authorities: []string{"ROLE_REPARTIDOR"}}
	assert.ErrorIs(t, Evaluate(r, sinRol, ""), domain.ErrForbidden)
}

func TestEvaluatePropiedadPorUsername(t *testing.T) {
	r := Rule{OwnerParam: "id", OwnerBy: OwnerByUsername}
	p := principalCliente()

	assert.NoError(t, Evaluate(r, p, "maria"))
	assert.ErrorIs(t, Evaluate(r, p, "otra"), domain.ErrForbidden)
}

func TestEvaluatePropiedadPorID(t *testing.T) {
	r := Rule{OwnerParam: "idCliente", OwnerBy: OwnerByID}
	p := principalCliente()

	assert.NoError(t, Evaluate(r, p, "42"))
	assert.ErrorIs(t, Evaluate(r, p, "43"), domain.ErrForbidden)
	// Un parámetro no numérico nunca coincide.
	assert.ErrorIs(t, Evaluate(r, p, "cuarenta"), domain.ErrForbidden)
}

func TestEvaluatePropiedadExigeOwnerRoles(t *testing.T) {
	r := Rule{
		OwnerParam: "idCliente", OwnerBy: OwnerByID,
		OwnerRoles: []string{auth.AuthorityCliente},
	}

	assert.NoError(t, Evaluate(r, principalCliente(), "42"))

	// Mismo ID pero sin el rol base: la propiedad no alcanza.
	cocinero := &auth.Principal{ID: 42, Username: "chef", Authorities: []string{auth.AuthorityPersonalCocina}}
	assert.ErrorIs(t, Evaluate(r, cocinero, "42"), domain.ErrForbidden)
}

func TestEvaluatePropiedadPorUsernameExigeRolBase(t *testing.T) {
	// Regla de ficha propia: ser dueño del parámetro no alcanza sin el
	// rol base; un cocinero cuyo username coincide con el :id de un
	// cliente no debe poder leer ni editar esa ficha.
	r := Rule{
		OwnerParam: "id", OwnerBy: OwnerByUsername,
		OwnerRoles: []string{auth.AuthorityCliente},
	}

	cocinero := &auth.Principal{ID: 9, Username: "77", Authorities: []string{auth.AuthorityPersonalCocina}}
	assert.ErrorIs(t, Evaluate(r, cocinero, "77"), domain.ErrForbidden)

	cliente := &auth.Principal{ID: 10, Username: "77", Authorities: []string{auth.AuthorityCliente}}
	assert.NoError(t, Evaluate(r, cliente, "77"))

	assert.NoError(t, Evaluate(r, principalAdmin(), "77"))
}

func TestEvaluateReglaDeClienteParaValorar(t *testing.T) {
	// Crear o editar una valoración: cliente o admin; el listado general
	// y las fichas individuales son lectura anónima.
	r := Rule{Roles: []string{auth.AuthorityCliente}}

	assert.NoError(t, Evaluate(r, principalCliente(), ""))
	assert.NoError(t, Evaluate(r, principalAdmin(), ""))
	assert.ErrorIs(t, Evaluate(r, nil, ""), domain.ErrUnauthorized)

	cocinero := &auth.Principal{ID: 3, Username: "chef", Authorities: []string{auth.AuthorityPersonalCocina}}
	assert.ErrorIs(t, Evaluate(r, cocinero, ""), domain.ErrForbidden)

	assert.NoError(t, Evaluate(Rule{Anonymous: true}, nil, ""))
}

func TestEvaluateReglaVaciaEsSoloAdmin(t *testing.T) {
	assert.ErrorIs(t, Evaluate(Rule{}, principalCliente(), ""), domain.ErrForbidden)
	assert.NoError(t, Evaluate(Rule{}, principalAdmin(), ""))
}

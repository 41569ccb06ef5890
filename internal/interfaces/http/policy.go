package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
)

// OwnerBy indica contra qué atributo del principal se compara el parámetro
// de ruta en las reglas de propiedad.
type OwnerBy int

const (
	// OwnerNone la regla no evalúa propiedad.
	OwnerNone OwnerBy = iota
	// OwnerByUsername el parámetro debe coincidir con el username del principal.
	OwnerByUsername
	// OwnerByID el parámetro debe coincidir con el ID numérico del principal.
	OwnerByID
)

// Rule regla declarativa de acceso de una ruta: roles que conceden acceso
// directo y, opcionalmente, una condición de propiedad sobre un parámetro.
// ROLE_ADMIN siempre satisface cualquier regla no anónima.
type Rule struct {
	// Anonymous permite el acceso sin autenticación.
	Anonymous bool
	// Roles authorities que conceden acceso directo.
	Roles []string
	// OwnerParam nombre del parámetro de ruta que identifica al dueño.
	OwnerParam string
	// OwnerBy atributo del principal contra el que se compara OwnerParam.
	OwnerBy OwnerBy
	// OwnerRoles roles base exigidos además de la propiedad; vacío acepta
	// a cualquier autenticado que sea dueño.
	OwnerRoles []string
}

// Evaluate decide el acceso de un principal (nil = anónimo) bajo una regla.
// Devuelve nil, domain.ErrUnauthorized o domain.ErrForbidden.
func Evaluate(r Rule, p *auth.Principal, ownerValue string) error {
	if r.Anonymous {
		return nil
	}
	if p == nil {
		return domain.ErrUnauthorized
	}
	if p.HasAuthority(auth.AuthorityAdmin) {
		return nil
	}
	for _, role := range r.Roles {
		if p.HasAuthority(role) {
			return nil
		}
	}
	if r.OwnerParam != "" && ownerMatches(r, p, ownerValue) {
		return nil
	}
	return domain.ErrForbidden
}

func ownerMatches(r Rule, p *auth.Principal, ownerValue string) bool {
	if len(r.OwnerRoles) > 0 {
		ok := false
		for _, role := range r.OwnerRoles {
			if p.HasAuthority(role) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	switch r.OwnerBy {
	case OwnerByUsername:
		return ownerValue == p.Username
	case OwnerByID:
		id, err := strconv.ParseInt(ownerValue, 10, 64)
		return err == nil && id == p.ID
	default:
		return false
	}
}

// Require construye el middleware de autorización de una ruta. Asume que el
// middleware de autenticación ya corrió; lo anónimo recibe 401 y lo
// autenticado sin permiso 403.
func Require(r Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ownerValue string
		if r.OwnerParam != "" {
			ownerValue = c.Params(r.OwnerParam)
		}
		switch err := Evaluate(r, GetPrincipal(c), ownerValue); err {
		case nil:
			return c.Next()
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "autenticación requerida",
			})
		default:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "acceso denegado",
			})
		}
	}
}

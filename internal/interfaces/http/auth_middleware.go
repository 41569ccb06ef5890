package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/pkg/logger"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

// LocalPrincipal clave de Locals donde queda el principal autenticado.
const LocalPrincipal = "principal"

// PrincipalLoader reconstruye el principal a partir del subject de un token
// ya verificado.
type PrincipalLoader interface {
	Load(ctx context.Context, subject string) (*auth.Principal, error)
}

// Authenticate intenta autenticar la petición con el Bearer token del header.
// Nunca rechaza: cualquier fallo (header ausente, token malformado, firma
// inválida, expirado, usuario desconocido o inactivo) degrada la petición a
// anónima y la deja continuar. Decidir si lo anónimo alcanza es trabajo de
// la capa de autorización, no de esta.
func Authenticate(codec *token.Codec, loader PrincipalLoader, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return c.Next()
		}
		subject, err := codec.Verify(raw)
		if err != nil {
			log.Debug().Err(err).Msg("token rechazado; la petición sigue anónima")
			return c.Next()
		}
		principal, err := loader.Load(c.UserContext(), subject)
		if err != nil {
			log.Debug().Err(err).Str("subject", subject).Msg("principal no disponible; la petición sigue anónima")
			return c.Next()
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization; "" si no hay Bearer.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetPrincipal devuelve el principal de la petición o nil si es anónima.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

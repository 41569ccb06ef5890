package auth

import "strings"

// Authorities normalizadas que evalúa la capa de autorización.
const (
	AuthorityAdmin          = "ROLE_ADMIN"
	AuthorityCliente        = "ROLE_CLIENTE"
	AuthorityPersonalCocina = "ROLE_PERSONAL_COCINA"
)

// Principal identidad autenticada de la petición en curso.
type Principal struct {
	ID          int64
	Username    string
	Email       string
	Authorities []string
}

// HasAuthority indica si el principal porta la authority dada.
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// RoleToAuthority normaliza un rol persistido a su authority. Los roles se
// guardan con prefijo ROL_ y las authorities usan ROLE_; esta función es el
// único punto donde se hace esa traducción.
func RoleToAuthority(rol string) string {
	switch {
	case strings.HasPrefix(rol, "ROLE_"):
		return rol
	case strings.HasPrefix(rol, "ROL_"):
		return "ROLE_" + strings.TrimPrefix(rol, "ROL_")
	default:
		return "ROLE_" + rol
	}
}

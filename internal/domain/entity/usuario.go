package entity

// Roles del dominio. El prefijo ROL_ es el nombre canónico en la base de
// datos; la capa de auth los normaliza a authorities ROLE_* en un único punto.
const (
	RolAdmin          = "ROL_ADMIN"
	RolCliente        = "ROL_CLIENTE"
	RolPersonalCocina = "ROL_PERSONAL_COCINA"
)

// Usuario credencial de acceso al sistema. Un usuario inactivo nunca debe
// pasar la autenticación.
type Usuario struct {
	ID           int64
	Username     string // único
	PasswordHash string
	Email        string // único
	Activo       bool
	Roles        []string // valores ROL_*
}

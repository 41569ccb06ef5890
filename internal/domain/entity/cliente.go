package entity

// Cliente persona que realiza pedidos.
type Cliente struct {
	Persona
	Direccion string
}

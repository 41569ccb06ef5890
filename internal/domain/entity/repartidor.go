package entity

// Repartidor persona que entrega pedidos a domicilio.
type Repartidor struct {
	Persona
	Zona string
}

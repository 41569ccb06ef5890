package entity

// PersonalCocina persona del equipo de cocina.
type PersonalCocina struct {
	Persona
	Turno string // mañana, tarde, noche
	Area  string
}

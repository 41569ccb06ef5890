package entity

import "time"

// Persona agrupa los datos comunes de las personas del dominio (clientes,
// personal de cocina, repartidores). Se compone en cada entidad concreta en
// lugar de heredarse; cada tabla guarda sus propios campos de persona.
type Persona struct {
	ID            int64
	Nombre        string
	Email         string // único por tabla
	Telefono      string
	FechaRegistro time.Time
}

package entity

import "time"

// Roles de usuario de la clínica.
const (
	RolAdmin       = "admin"
	RolVeterinario = "veterinario"
	RolAuxiliar    = "auxiliar"
)

// Usuario actor de los movimientos de inventario. La gestión completa de
// usuarios vive fuera de este servicio; aquí solo lo mínimo para autenticar
// y registrar quién ejecutó cada movimiento.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

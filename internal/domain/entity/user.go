package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleEmpleado = "empleado"
)

// User representa un miembro del personal. BranchID vacío solo para administradores
// con alcance global; gerentes y empleados siempre están atados a una sucursal.
type User struct {
	ID           string
	BranchID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, gerente, empleado
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

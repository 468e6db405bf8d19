package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleGerente   = "gerente"
	RoleComercial = "comercial"
	RoleCliente   = "cliente"
)

// AllRoles lista cerrada de roles; la tabla de capacidades debe cubrirlos todos.
var AllRoles = []string{RoleAdmin, RoleGerente, RoleComercial, RoleCliente}

// ValidRole indica si role pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema.
// AssignedProjectIDs solo tiene significado para el rol comercial (alcance de proyectos).
type User struct {
	ID                 string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Name               string
	Role               string // admin, gerente, comercial, cliente
	Phone              string
	AssignedProjectIDs []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package entity

import "time"

// Role es el rol de un usuario. Conjunto cerrado: el RBAC de toda la
// aplicación se decide sobre estos cuatro valores y nada más.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "Admin"
	RoleStaff   Role = "Staff"
	RoleVet     Role = "Vet"
	RoleAuditor Role = "Auditor"
)

// AllRoles devuelve los roles válidos en orden estable.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleStaff, RoleVet, RoleAuditor}
}

// Valid informa si r pertenece al conjunto cerrado de roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleVet, RoleAuditor:
		return true
	}
	return false
}

// ParseRole convierte un string a Role. Devuelve "" y false si no es un rol válido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// User representa una identidad del sistema. Inmutable durante la sesión:
// el login lo emite y el store lo retiene hasta el logout.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Avatar       string // URI opcional
	PasswordHash string // bcrypt hash para usuarios gestionados; vacío en cuentas demo
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DemoAccount es una entrada de la tabla fija de cuentas de demostración.
// La contraseña se compara en texto plano de forma deliberada: es una
// aplicación demo sin endurecimiento de autenticación.
type DemoAccount struct {
	Email    string
	Password string
	User     User
}

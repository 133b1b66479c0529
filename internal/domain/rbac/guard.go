package rbac

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// Decision clasifica el resultado del guard. Función pura de (user, módulo):
// entradas idénticas producen siempre la misma clasificación.
type Decision int

const (
	// Allow el usuario puede ver el contenido del módulo.
	Allow Decision = iota
	// DenyAnonymous no hay usuario autenticado; corresponde mostrar el login.
	DenyAnonymous
	// DenyRole hay usuario pero su rol no está en el conjunto requerido
	// (o el módulo no está mapeado; un conjunto vacío niega a todos).
	DenyRole
)

// Guard evalúa el acceso de user al módulo m contra la tabla de políticas.
// Nunca entra en pánico y no tiene estado.
func Guard(user *entity.User, m Module) Decision {
	if user == nil {
		return DenyAnonymous
	}
	if !HasAccess(user.Role, m) {
		return DenyRole
	}
	return Allow
}

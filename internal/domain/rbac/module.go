// Package rbac define el núcleo de control de acceso por roles: el conjunto
// cerrado de módulos de la aplicación, la tabla estática de políticas
// módulo→roles y la decisión pura del guard.
//
// La tabla es exhaustiva sobre el enum Module y nunca se muta en runtime.
// Cualquier identificador fuera del enum resuelve a un conjunto vacío de
// roles y el guard lo niega para todo rol: fail-closed por construcción.
package rbac

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// Module identifica una pantalla/área funcional de la aplicación.
type Module string

// Módulos de la aplicación. Conjunto cerrado.
const (
	ModuleDashboard     Module = "dashboard"
	ModuleGRN           Module = "grn"
	ModuleDelivery      Module = "delivery"
	ModuleInventory     Module = "inventory"
	ModuleConsultations Module = "consultations"
	ModuleUsers         Module = "users"
	ModuleSettings      Module = "settings"
	ModuleReports       Module = "reports"
	ModuleAudit         Module = "audit"
)

// DefaultModule es el módulo activo tras login y tras logout.
const DefaultModule = ModuleDashboard

// policy es la tabla estática módulo→roles permitidos.
// Admin pertenece a todas las entradas.
var policy = map[Module][]entity.Role{
	ModuleDashboard:     {entity.RoleAdmin, entity.RoleStaff, entity.RoleVet, entity.RoleAuditor},
	ModuleGRN:           {entity.RoleAdmin, entity.RoleStaff},
	ModuleDelivery:      {entity.RoleAdmin, entity.RoleStaff},
	ModuleInventory:     {entity.RoleAdmin, entity.RoleStaff, entity.RoleVet},
	ModuleConsultations: {entity.RoleAdmin, entity.RoleVet},
	ModuleUsers:         {entity.RoleAdmin},
	ModuleSettings:      {entity.RoleAdmin},
	ModuleReports:       {entity.RoleAdmin, entity.RoleAuditor},
	ModuleAudit:         {entity.RoleAdmin, entity.RoleAuditor},
}

// AllModules devuelve los módulos en el orden de navegación del sidebar.
func AllModules() []Module {
	return []Module{
		ModuleDashboard, ModuleGRN, ModuleDelivery, ModuleInventory,
		ModuleConsultations, ModuleUsers, ModuleReports, ModuleAudit, ModuleSettings,
	}
}

// Valid informa si m pertenece al conjunto cerrado de módulos.
func (m Module) Valid() bool {
	_, ok := policy[m]
	return ok
}

// ParseModule convierte un string a Module. Devuelve false si el id no está mapeado.
func ParseModule(s string) (Module, bool) {
	m := Module(s)
	if !m.Valid() {
		return "", false
	}
	return m, true
}

// RolesFor devuelve una copia del conjunto de roles permitidos para el módulo.
// Conjunto vacío para cualquier módulo desconocido (fail-closed).
func RolesFor(m Module) []entity.Role {
	roles, ok := policy[m]
	if !ok {
		return nil
	}
	out := make([]entity.Role, len(roles))
	copy(out, roles)
	return out
}

// HasAccess informa si el rol puede abrir el módulo.
func HasAccess(role entity.Role, m Module) bool {
	for _, r := range policy[m] {
		if r == role {
			return true
		}
	}
	return false
}

// ModulesFor devuelve los módulos visibles para el rol, en orden de sidebar.
func ModulesFor(role entity.Role) []Module {
	var out []Module
	for _, m := range AllModules() {
		if HasAccess(role, m) {
			out = append(out, m)
		}
	}
	return out
}

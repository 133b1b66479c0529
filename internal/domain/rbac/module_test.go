package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests tabla de políticas
// ──────────────────────────────────────────────────────────────────────────────

// Admin pertenece al conjunto de roles de todos los módulos.
func TestPolicy_AdminEnTodosLosModulos(t *testing.T) {
	for _, m := range rbac.AllModules() {
		assert.True(t, rbac.HasAccess(entity.RoleAdmin, m),
			"Admin debe tener acceso al módulo %s", m)
	}
}

// Cada módulo mapeado tiene un conjunto de roles no vacío.
func TestPolicy_NingunModuloSinRoles(t *testing.T) {
	for _, m := range rbac.AllModules() {
		roles := rbac.RolesFor(m)
		require.NotEmpty(t, roles, "el módulo %s no puede tener conjunto vacío", m)
		for _, r := range roles {
			assert.True(t, r.Valid(), "rol inválido %q en el módulo %s", r, m)
		}
	}
}

// Un identificador fuera del enum resuelve a conjunto vacío y se niega a todo rol.
func TestPolicy_ModuloDesconocidoFailClosed(t *testing.T) {
	unknown := rbac.Module("billing")

	assert.False(t, unknown.Valid())
	assert.Empty(t, rbac.RolesFor(unknown))
	for _, r := range entity.AllRoles() {
		assert.False(t, rbac.HasAccess(r, unknown),
			"el rol %s no debe acceder a un módulo no mapeado", r)
	}

	_, ok := rbac.ParseModule("billing")
	assert.False(t, ok, "ParseModule no debe aceptar ids fuera del enum")
}

// Asignaciones concretas de la tabla.
func TestPolicy_AsignacionesPorRol(t *testing.T) {
	cases := []struct {
		role    entity.Role
		module  rbac.Module
		allowed bool
	}{
		{entity.RoleStaff, rbac.ModuleGRN, true},
		{entity.RoleStaff, rbac.ModuleDelivery, true},
		{entity.RoleStaff, rbac.ModuleInventory, true},
		{entity.RoleStaff, rbac.ModuleUsers, false},
		{entity.RoleStaff, rbac.ModuleConsultations, false},
		{entity.RoleStaff, rbac.ModuleAudit, false},
		{entity.RoleVet, rbac.ModuleConsultations, true},
		{entity.RoleVet, rbac.ModuleInventory, true},
		{entity.RoleVet, rbac.ModuleGRN, false},
		{entity.RoleVet, rbac.ModuleSettings, false},
		{entity.RoleAuditor, rbac.ModuleAudit, true},
		{entity.RoleAuditor, rbac.ModuleReports, true},
		{entity.RoleAuditor, rbac.ModuleInventory, false},
		{entity.RoleAuditor, rbac.ModuleUsers, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, rbac.HasAccess(tc.role, tc.module),
			"rol=%s módulo=%s", tc.role, tc.module)
	}
}

// Todos los roles ven el dashboard; es además el módulo por defecto.
func TestPolicy_DashboardParaTodos(t *testing.T) {
	for _, r := range entity.AllRoles() {
		assert.True(t, rbac.HasAccess(r, rbac.ModuleDashboard))
	}
	assert.Equal(t, rbac.ModuleDashboard, rbac.DefaultModule)
}

// ModulesFor respeta el orden del sidebar y filtra por la misma tabla.
func TestModulesFor_OrdenYFiltrado(t *testing.T) {
	admin := rbac.ModulesFor(entity.RoleAdmin)
	assert.Equal(t, rbac.AllModules(), admin, "Admin ve todos los módulos en orden de sidebar")

	auditor := rbac.ModulesFor(entity.RoleAuditor)
	assert.Equal(t, []rbac.Module{rbac.ModuleDashboard, rbac.ModuleReports, rbac.ModuleAudit}, auditor)

	for _, m := range rbac.ModulesFor(entity.RoleStaff) {
		assert.True(t, rbac.HasAccess(entity.RoleStaff, m))
	}
}

// RolesFor devuelve una copia: mutarla no cambia la tabla.
func TestRolesFor_DevuelveCopia(t *testing.T) {
	roles := rbac.RolesFor(rbac.ModuleUsers)
	require.NotEmpty(t, roles)
	roles[0] = entity.RoleStaff

	assert.False(t, rbac.HasAccess(entity.RoleStaff, rbac.ModuleUsers),
		"mutar el slice devuelto no debe alterar la política")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests títulos del header
// ──────────────────────────────────────────────────────────────────────────────

func TestTitleFor_ModulosConocidosYFallback(t *testing.T) {
	dash := rbac.TitleFor(rbac.ModuleDashboard)
	assert.Equal(t, "Dashboard", dash.Title)
	assert.NotEmpty(t, dash.Subtitle)

	for _, m := range rbac.AllModules() {
		tt := rbac.TitleFor(m)
		assert.NotEmpty(t, tt.Title, "módulo %s sin título", m)
		assert.NotEmpty(t, tt.Subtitle, "módulo %s sin subtítulo", m)
	}

	fallback := rbac.TitleFor(rbac.Module("no-existe"))
	assert.Equal(t, "VetPharm Pro", fallback.Title)
}

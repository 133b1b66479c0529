package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// Sin usuario el guard siempre niega como anónimo, para todo módulo.
func TestGuard_SinUsuarioDenyAnonymous(t *testing.T) {
	for _, m := range rbac.AllModules() {
		assert.Equal(t, rbac.DenyAnonymous, rbac.Guard(nil, m),
			"módulo %s debe negar a anónimos", m)
	}
	assert.Equal(t, rbac.DenyAnonymous, rbac.Guard(nil, rbac.Module("no-existe")))
}

// Con usuario, la decisión coincide con la tabla de políticas para cada
// combinación (rol, módulo).
func TestGuard_DecisionCoincideConPolitica(t *testing.T) {
	for _, r := range entity.AllRoles() {
		user := &entity.User{ID: "u1", Name: "Test", Role: r}
		for _, m := range rbac.AllModules() {
			want := rbac.DenyRole
			if rbac.HasAccess(r, m) {
				want = rbac.Allow
			}
			assert.Equal(t, want, rbac.Guard(user, m), "rol=%s módulo=%s", r, m)
		}
	}
}

// Módulo desconocido → DenyRole para cualquier usuario autenticado (fail-closed).
func TestGuard_ModuloDesconocidoNiegaAutenticados(t *testing.T) {
	for _, r := range entity.AllRoles() {
		user := &entity.User{ID: "u1", Role: r}
		assert.Equal(t, rbac.DenyRole, rbac.Guard(user, rbac.Module("facturacion")))
	}
}

// Función pura: entradas idénticas, misma decisión siempre.
func TestGuard_Deterministico(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleStaff}
	first := rbac.Guard(user, rbac.ModuleUsers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, rbac.Guard(user, rbac.ModuleUsers))
	}
}

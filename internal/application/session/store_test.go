package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

func testUser(role entity.Role) *entity.User {
	return &entity.User{ID: "u1", Name: "Test", Email: "test@vetpharm.com", Role: role}
}

// Store recién creado: sin usuario, navegación en el módulo por defecto.
func TestStore_EstadoInicial(t *testing.T) {
	s := session.NewStore()
	assert.Nil(t, s.User())
	assert.Equal(t, rbac.DefaultModule, s.Current())
}

// SetUser retiene la identidad y reinicia la navegación a dashboard.
func TestStore_SetUserReiniciaNavegacion(t *testing.T) {
	s := session.NewStore()
	s.SetCurrent(rbac.ModuleInventory)

	s.SetUser(testUser(entity.RoleAdmin))

	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, rbac.DefaultModule, s.Current(),
		"un nuevo login debe reiniciar la navegación al módulo por defecto")
}

// Exactamente una identidad activa: el segundo SetUser reemplaza al primero.
func TestStore_UnaSolaIdentidadActiva(t *testing.T) {
	s := session.NewStore()
	s.SetUser(testUser(entity.RoleAdmin))
	s.SetUser(&entity.User{ID: "u2", Name: "Otro", Role: entity.RoleVet})

	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, entity.RoleVet, got.Role)
}

// Logout limpia la identidad y reinicia la navegación; el reset es del store,
// no del caller.
func TestStore_LogoutLimpiaYReinicia(t *testing.T) {
	s := session.NewStore()
	s.SetUser(testUser(entity.RoleStaff))
	s.SetCurrent(rbac.ModuleGRN)

	s.Logout()

	assert.Nil(t, s.User(), "después de logout no debe haber usuario")
	assert.Equal(t, rbac.DefaultModule, s.Current(),
		"logout debe dejar la navegación en dashboard")
}

// Logout sobre un store vacío es incondicional y no falla.
func TestStore_LogoutSinSesion(t *testing.T) {
	s := session.NewStore()
	s.Logout()
	assert.Nil(t, s.User())
	assert.Equal(t, rbac.DefaultModule, s.Current())
}

// HasRole: true solo si hay usuario y su rol pertenece al conjunto.
func TestStore_HasRole(t *testing.T) {
	s := session.NewStore()
	assert.False(t, s.HasRole(entity.RoleAdmin), "sin usuario siempre false")

	s.SetUser(testUser(entity.RoleVet))
	assert.True(t, s.HasRole(entity.RoleVet))
	assert.True(t, s.HasRole(entity.RoleAdmin, entity.RoleVet))
	assert.False(t, s.HasRole(entity.RoleAdmin, entity.RoleStaff))
	assert.False(t, s.HasRole())
}

// User devuelve una copia: mutarla no altera el estado retenido.
func TestStore_UserDevuelveCopia(t *testing.T) {
	s := session.NewStore()
	s.SetUser(testUser(entity.RoleAdmin))

	cp := s.User()
	cp.Role = entity.RoleStaff

	assert.Equal(t, entity.RoleAdmin, s.User().Role)
}

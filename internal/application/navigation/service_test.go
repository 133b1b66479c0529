package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/navigation"
	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

func newSvc(role entity.Role) (*navigation.Service, *session.Store) {
	store := session.NewStore()
	store.SetUser(&entity.User{ID: "u1", Name: "Test", Role: role})
	return navigation.NewService(store), store
}

// Sin sesión la navegación se rechaza y el estado no cambia.
func TestNavigateTo_SinSesion(t *testing.T) {
	store := session.NewStore()
	svc := navigation.NewService(store)

	_, err := svc.NavigateTo("inventory")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, rbac.DefaultModule, store.Current())
}

// Navegación permitida mueve el estado y devuelve el título del header.
func TestNavigateTo_Permitida(t *testing.T) {
	svc, store := newSvc(entity.RoleStaff)

	out, err := svc.NavigateTo("grn")
	require.NoError(t, err)
	assert.Equal(t, "grn", out.Module)
	assert.NotEmpty(t, out.Title)
	assert.NotEmpty(t, out.Subtitle)
	assert.Equal(t, rbac.ModuleGRN, store.Current())
}

// Idempotencia: repetir el mismo destino no cambia nada.
func TestNavigateTo_Idempotente(t *testing.T) {
	svc, store := newSvc(entity.RoleAdmin)

	first, err := svc.NavigateTo("inventory")
	require.NoError(t, err)
	second, err := svc.NavigateTo("inventory")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, rbac.ModuleInventory, store.Current())
}

// Destino negado por la política: error y el módulo activo queda intacto.
func TestNavigateTo_NegadaNoMueveEstado(t *testing.T) {
	svc, store := newSvc(entity.RoleStaff)

	_, err := svc.NavigateTo("grn")
	require.NoError(t, err)

	_, err = svc.NavigateTo("users")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, rbac.ModuleGRN, store.Current(),
		"una navegación negada no debe cambiar el módulo activo")
}

// Id fuera del enum: ErrNotFound, nunca fail-open.
func TestNavigateTo_ModuloDesconocido(t *testing.T) {
	svc, store := newSvc(entity.RoleAdmin)

	_, err := svc.NavigateTo("billing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, rbac.DefaultModule, store.Current())
}

// Current refleja el estado del store con el título derivado.
func TestCurrent_TituloDerivado(t *testing.T) {
	svc, _ := newSvc(entity.RoleAdmin)

	out := svc.Current()
	assert.Equal(t, string(rbac.DefaultModule), out.Module)
	assert.Equal(t, "Dashboard", out.Title)
}

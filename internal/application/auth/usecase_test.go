package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/auth"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
)

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "vetpharm-pro-test",
}

func demoAccounts() []entity.DemoAccount {
	return []entity.DemoAccount{
		{
			Email:    "admin@vetpharm.com",
			Password: "admin123",
			User:     entity.User{ID: "u-admin", Name: "Alicia Gómez", Email: "admin@vetpharm.com", Role: entity.RoleAdmin, Status: "active"},
		},
		{
			Email:    "staff@vetpharm.com",
			Password: "staff123",
			User:     entity.User{ID: "u-staff", Name: "Marcos Rivera", Email: "staff@vetpharm.com", Role: entity.RoleStaff, Status: "active"},
		},
	}
}

func newAuthUC() (*auth.AuthUseCase, *session.Store) {
	store := session.NewStore()
	repo := memory.NewDemoAccountRepository(demoAccounts())
	return auth.NewAuthUseCase(repo, store, testJWT, 0), store
}

// Login con credenciales exactas: sesión con el rol de la cuenta, token
// presente y navegación en dashboard.
func TestLogin_CredencialesExactas(t *testing.T) {
	uc, store := newAuthUC()

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@vetpharm.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Admin", out.User.Role)
	assert.Equal(t, "dashboard", out.Navigation)

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, rbac.DefaultModule, store.Current())
}

// Un carácter alterado en email o password: sin sesión y sin cambio de estado.
func TestLogin_UnCaracterAlterado(t *testing.T) {
	uc, store := newAuthUC()

	cases := []dto.LoginRequest{
		{Email: "admin@vetpharm.con", Password: "admin123"}, // email alterado
		{Email: "admin@vetpharm.com", Password: "admin124"}, // password alterado
		{Email: "admin@vetpharm.com", Password: "Admin123"}, // mayúscula: match exacto
		{Email: "", Password: ""},
	}
	for _, in := range cases {
		_, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "email=%q password=%q", in.Email, in.Password)
		assert.Nil(t, store.User(), "un login fallido no debe crear sesión")
	}
}

// Un login fallido después de uno exitoso no toca la sesión vigente.
func TestLogin_FalloNoDescartaSesionVigente(t *testing.T) {
	uc, store := newAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "staff@vetpharm.com", Password: "staff123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "staff@vetpharm.com", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	user := store.User()
	require.NotNil(t, user, "la sesión previa debe seguir activa")
	assert.Equal(t, entity.RoleStaff, user.Role)
}

// Logout limpia la sesión y la navegación vuelve a dashboard.
func TestLogout(t *testing.T) {
	uc, store := newAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@vetpharm.com", Password: "admin123"})
	require.NoError(t, err)

	uc.Logout()

	assert.Nil(t, store.User())
	assert.Equal(t, rbac.DefaultModule, store.Current())
}

// DemoAccounts expone la tabla para pre-llenar el formulario sin autenticar.
func TestDemoAccounts_NoAutentica(t *testing.T) {
	uc, store := newAuthUC()

	accounts := uc.DemoAccounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, "admin@vetpharm.com", accounts[0].Email)
	assert.Equal(t, "admin123", accounts[0].Password)
	assert.Equal(t, "Admin", accounts[0].Role)

	assert.Nil(t, store.User(), "listar cuentas demo no debe crear sesión")
}

// Session refleja usuario, navegación y módulos visibles según el rol.
func TestSession(t *testing.T) {
	uc, _ := newAuthUC()

	// Sin sesión
	out := uc.Session()
	assert.Nil(t, out.User)
	assert.Equal(t, "dashboard", out.Navigation)
	assert.Empty(t, out.Modules)

	// Con sesión Staff: sidebar sin users/consultations/audit
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "staff@vetpharm.com", Password: "staff123"})
	require.NoError(t, err)

	out = uc.Session()
	require.NotNil(t, out.User)
	assert.Equal(t, "Staff", out.User.Role)
	assert.Equal(t, []string{"dashboard", "grn", "delivery", "inventory"}, out.Modules)
}

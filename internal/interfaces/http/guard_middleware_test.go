package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
	vphttp "github.com/vetpharm/vetpharm-pro/internal/interfaces/http"
	"github.com/vetpharm/vetpharm-pro/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// ──────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────

// buildTestApp monta dos rutas mínimas detrás del middleware de
// autenticación y del guard de módulo: una de usuarios (solo Admin)
// y una de GRN (Admin y Staff).
func buildTestApp(t *testing.T) (*fiber.App, *audit.AuditUseCase) {
	t.Helper()

	auditUC := audit.NewAuditUseCase(memory.NewAuditRepository())
	app := fiber.New()
	protected := app.Group("/api", vphttp.AuthMiddleware(testSecret))

	users := protected.Group("/users", vphttp.RequireModule(rbac.ModuleUsers, auditUC))
	users.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"users": []string{"alicia", "marcos"}})
	})

	grn := protected.Group("/grn", vphttp.RequireModule(rbac.ModuleGRN, auditUC))
	grn.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"grns": []string{}})
	})

	return app, auditUC
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u-test", role+"@vetpharm.com", "Usuario de Prueba", role, "vetpharm-pro", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────

// Staff intenta entrar a Usuarios (solo Admin): 403 con los roles
// requeridos y el rol actual, sin filtrar contenido del módulo.
func TestGuard_StaffEnUsuariosRestringido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, body := doRequest(t, app, "/api/users/", tokenForRole(t, "Staff"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	assert.Contains(t, body, "Required roles")
	assert.Contains(t, body, "Admin")
	assert.Contains(t, body, "Staff")
	assert.NotContains(t, body, "alicia", "la respuesta de acceso restringido no expone contenido del módulo")

	var out struct {
		Code          string   `json:"code"`
		Module        string   `json:"module"`
		RequiredRoles []string `json:"required_roles"`
		CurrentRole   string   `json:"current_role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "ACCESS_RESTRICTED", out.Code)
	assert.Equal(t, "users", out.Module)
	assert.Equal(t, []string{"Admin"}, out.RequiredRoles)
	assert.Equal(t, "Staff", out.CurrentRole)
}

// El mismo token de Staff sí entra a GRN.
func TestGuard_StaffEnGRNPermitido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, body := doRequest(t, app, "/api/grn/", tokenForRole(t, "Staff"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "grns")
}

// Admin entra a todos los módulos montados.
func TestGuard_AdminEnTodo(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, path := range []string{"/api/users/", "/api/grn/"} {
		resp, _ := doRequest(t, app, path, tokenForRole(t, "Admin"))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "ruta %s", path)
	}
}

// Sin token o con token inválido no se llega al guard: 401.
func TestGuard_SinIdentidad(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := doRequest(t, app, "/api/grn/", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, "/api/grn/", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// firmado con otro secreto
	otro, err := jwt.Generate("otro-secreto", "u", "e@x.com", "X", "Admin", "vetpharm-pro", 15)
	require.NoError(t, err)
	resp, _ = doRequest(t, app, "/api/grn/", otro)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Cada negación por rol queda en la bitácora como access_denied.
func TestGuard_NegacionAuditada(t *testing.T) {
	app, auditUC := buildTestApp(t)

	_, _ = doRequest(t, app, "/api/users/", tokenForRole(t, "Vet"))

	out, err := auditUC.List(repository.AuditFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	entry := out.Items[0]
	assert.Equal(t, "access_denied", entry.Action)
	assert.Equal(t, "users", entry.Module)
	assert.Equal(t, "denied", entry.Status)
	assert.Equal(t, "warning", entry.Severity)
	assert.True(t, strings.Contains(entry.Details, "users"))
}

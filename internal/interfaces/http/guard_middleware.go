package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// RequireModule devuelve un middleware Fiber que aplica la tabla de políticas
// del módulo sobre el rol del token. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → sin identidad en el contexto (el guard niega a anónimos).
//   - 403 Forbidden    → el rol no pertenece al conjunto requerido; el cuerpo
//     declara los roles exigidos y el rol actual, nunca contenido del módulo.
//
// Cada negación por rol queda registrada en auditoría como access_denied.
func RequireModule(m rbac.Module, auditUC *audit.AuditUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := GetRole(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el token",
			})
		}

		user := &entity.User{Role: role}
		if rbac.Guard(user, m) != rbac.Allow {
			_ = auditUC.Record(audit.Entry{
				User:         GetUserName(c),
				Role:         role,
				Action:       "access_denied",
				Module:       string(m),
				ResourceType: "module",
				Details:      "Acceso denegado al módulo " + string(m),
				Status:       entity.AuditStatusDenied,
				Severity:     entity.AuditSeverityWarning,
				IPAddress:    c.IP(),
			})
			required := make([]string, 0, 4)
			for _, r := range rbac.RolesFor(m) {
				required = append(required, string(r))
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.AccessRestrictedResponse{
				Code:          "ACCESS_RESTRICTED",
				Message:       "Access Restricted. Required roles: " + joinRoles(required),
				Module:        string(m),
				RequiredRoles: required,
				CurrentRole:   string(role),
			})
		}

		return c.Next()
	}
}

func joinRoles(roles []string) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += ", "
		}
		out += r
	}
	return out
}

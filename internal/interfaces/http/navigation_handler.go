package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/navigation"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// NavigationHandler expone el router de módulos: módulo activo y transiciones.
type NavigationHandler struct {
	svc     *navigation.Service
	auditUC *audit.AuditUseCase
}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler(svc *navigation.Service, auditUC *audit.AuditUseCase) *NavigationHandler {
	return &NavigationHandler{svc: svc, auditUC: auditUC}
}

// Current godoc
// @Summary      Módulo activo con título y subtítulo del header
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Current(c *fiber.Ctx) error {
	return c.JSON(h.svc.Current())
}

// Navigate godoc
// @Summary      Cambiar el módulo activo
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NavigateRequest  true  "módulo destino"
// @Success      200   {object}  dto.NavigationResponse
// @Failure      403   {object}  dto.AccessRestrictedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/navigation [post]
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var in dto.NavigateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	role, _ := GetRole(c)
	out, err := h.svc.NavigateTo(in.Module)
	if err != nil {
		switch err {
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no hay sesión activa"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "módulo desconocido"})
		case domain.ErrForbidden:
			m, _ := rbac.ParseModule(in.Module)
			required := make([]string, 0, 4)
			for _, r := range rbac.RolesFor(m) {
				required = append(required, string(r))
			}
			_ = h.auditUC.Record(audit.Entry{
				User:         GetUserName(c),
				Role:         role,
				Action:       "access_denied",
				Module:       in.Module,
				ResourceType: "module",
				Details:      "Navegación denegada al módulo " + in.Module,
				Status:       entity.AuditStatusDenied,
				Severity:     entity.AuditSeverityWarning,
				IPAddress:    c.IP(),
			})
			return c.Status(fiber.StatusForbidden).JSON(dto.AccessRestrictedResponse{
				Code:          "ACCESS_RESTRICTED",
				Message:       "Access Restricted. Required roles: " + joinRoles(required),
				Module:        in.Module,
				RequiredRoles: required,
				CurrentRole:   string(role),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	_ = h.auditUC.Record(audit.Entry{
		User:      GetUserName(c),
		Role:      role,
		Action:    "navigate",
		Module:    out.Module,
		Details:   "Navegación al módulo " + out.Module,
		IPAddress: c.IP(),
	})
	return c.JSON(out)
}

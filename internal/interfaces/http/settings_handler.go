package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
)

// SettingsHandler maneja la configuración de la farmacia (protegido: solo Admin).
type SettingsHandler struct {
	uc      *usecase.SettingsUseCase
	auditUC *audit.AuditUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, auditUC *audit.AuditUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc, auditUC: auditUC}
}

// Get godoc
// @Summary      Obtener la configuración de la farmacia
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la configuración de la farmacia
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(in, GetUserName(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	role, _ := GetRole(c)
	_ = h.auditUC.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       "update",
		Module:       "settings",
		ResourceType: "settings",
		Details:      "Configuración de la farmacia actualizada",
		IPAddress:    c.IP(),
	})
	return c.JSON(out)
}

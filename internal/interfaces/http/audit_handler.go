package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// AuditHandler expone el registro de auditoría (protegido: Admin, Auditor).
type AuditHandler struct {
	uc *audit.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas de auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        user      query  string  false  "Filtro por usuario"
// @Param        role      query  string  false  "Admin | Staff | Vet | Auditor"
// @Param        action    query  string  false  "login, logout, navigate, create, ..."
// @Param        module    query  string  false  "Filtro por módulo"
// @Param        severity  query  string  false  "info | warning | critical"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AuditListResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(auditFilter(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar entradas de auditoría como CSV
// @Tags         audit
// @Security     Bearer
// @Produce      text/csv
// @Param        user      query  string  false  "Filtro por usuario"
// @Param        role      query  string  false  "Admin | Staff | Vet | Auditor"
// @Param        module    query  string  false  "Filtro por módulo"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/audit/export [get]
func (h *AuditHandler) Export(c *fiber.Ctx) error {
	filter := auditFilter(c)
	filename, data, err := h.uc.ExportCSV(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	role, _ := GetRole(c)
	_ = h.uc.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       "export",
		Module:       "audit",
		ResourceType: "audit_log",
		Details:      "Export CSV " + filename,
		IPAddress:    c.IP(),
	})
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func auditFilter(c *fiber.Ctx) repository.AuditFilter {
	return repository.AuditFilter{
		User:     c.Query("user"),
		Role:     entity.Role(c.Query("role")),
		Action:   c.Query("action"),
		Module:   c.Query("module"),
		Severity: c.Query("severity"),
		From:     queryTime(c, "from"),
		To:       queryTime(c, "to"),
	}
}

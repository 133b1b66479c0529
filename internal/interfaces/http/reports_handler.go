package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/reports"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
)

// ReportsHandler expone los reportes agregados y los PDFs de documentos
// (protegido: Admin, Auditor).
type ReportsHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Operations godoc
// @Summary      Reporte operativo sobre un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (yyyy-mm-dd)"
// @Param        to    query  string  false  "Fecha final (yyyy-mm-dd)"
// @Success      200  {object}  dto.OperationsReportDTO
// @Router       /api/reports/operations [get]
func (h *ReportsHandler) Operations(c *fiber.Ctx) error {
	out, err := h.uc.Operations(queryTime(c, "from"), queryTime(c, "to"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GRNDocument godoc
// @Summary      Descargar el PDF de una nota de entrada
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la nota"
// @Success      200  {string}  string  "archivo PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/grn/{id}/pdf [get]
func (h *ReportsHandler) GRNDocument(c *fiber.Ctx) error {
	name, data, err := h.uc.GRNDocument(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrada no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, name, data)
}

// DeliveryDocument godoc
// @Summary      Descargar el PDF de una nota de entrega
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la nota"
// @Success      200  {string}  string  "archivo PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/delivery/{id}/pdf [get]
func (h *ReportsHandler) DeliveryDocument(c *fiber.Ctx) error {
	name, data, err := h.uc.DeliveryDocument(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, name, data)
}

func sendPDF(c *fiber.Ctx, name string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

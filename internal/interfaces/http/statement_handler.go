package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/usecase"
)

// StatementHandler estado de cuenta por lote y reporte ejecutivo.
type StatementHandler struct {
	statementUC *usecase.StatementUseCase
	reportUC    *usecase.ReportUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(statementUC *usecase.StatementUseCase, reportUC *usecase.ReportUseCase) *StatementHandler {
	return &StatementHandler{statementUC: statementUC, reportUC: reportUC}
}

// GetForLot godoc
// @Summary      Estado de cuenta de un lote
// @Tags         statements
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.StatementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/statement [get]
func (h *StatementHandler) GetForLot(c *fiber.Ctx) error {
	out, err := h.statementUC.GetForLot(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ExecutiveReport godoc
// @Summary      Reporte ejecutivo consolidado
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ExecutiveReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/executive [get]
func (h *StatementHandler) ExecutiveReport(c *fiber.Ctx) error {
	out, err := h.reportUC.ExecutiveReport()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

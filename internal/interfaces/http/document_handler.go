package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/document"
)

// DocumentHandler descarga de documentos PDF.
type DocumentHandler struct {
	uc *document.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *document.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// StatementPDF godoc
// @Summary      Descargar estado de cuenta en PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/statement/pdf [get]
func (h *DocumentHandler) StatementPDF(c *fiber.Ctx) error {
	lotID := c.Params("id")
	data, err := h.uc.StatementPDF(c.UserContext(), GetPrincipal(c), lotID)
	if err != nil {
		return domainError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("estado-cuenta-%s.pdf", lotID), data)
}

// ReceiptPDF godoc
// @Summary      Descargar recibo de pago en PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt/pdf [get]
func (h *DocumentHandler) ReceiptPDF(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	data, err := h.uc.ReceiptPDF(c.UserContext(), GetPrincipal(c), paymentID)
	if err != nil {
		return domainError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("recibo-%s.pdf", paymentID), data)
}

// ExecutiveReportPDF godoc
// @Summary      Descargar reporte ejecutivo en PDF
// @Tags         documents
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/executive/pdf [get]
func (h *DocumentHandler) ExecutiveReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExecutiveReportPDF(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return domainError(c, err)
	}
	return sendPDF(c, "reporte-ejecutivo.pdf", data)
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

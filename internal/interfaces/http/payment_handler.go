package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/application/payment"
)

// PaymentHandler registro y consulta de pagos.
type PaymentHandler struct {
	uc *payment.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar pago sobre un lote
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPaymentRequest  true  "lot_id, amount, type, method"
// @Success      201  {object}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lot_id es requerido"})
	}
	p, err := h.uc.Register(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetByID godoc
// @Summary      Obtener pago
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(p)
}

// List godoc
// @Summary      Listar pagos con alcance por rol
// @Tags         payments
// @Produce      json
// @Param        lot_id  query  string  false  "filtrar por lote"
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	principal := GetPrincipal(c)
	if lotID := c.Query("lot_id"); lotID != "" {
		out, err := h.uc.ListByLot(principal, lotID)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(principal)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByClient godoc
// @Summary      Listar pagos de un cliente
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.PaymentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/payments [get]
func (h *PaymentHandler) ListByClient(c *fiber.Ctx) error {
	out, err := h.uc.ListByClient(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

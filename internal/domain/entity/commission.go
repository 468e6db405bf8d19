package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/domain"
)

// Estados válidos para Commission. paid y cancelled son terminales.
const (
	CommissionStatusPending   = "pending"
	CommissionStatusApproved  = "approved"
	CommissionStatusPaid      = "paid"
	CommissionStatusCancelled = "cancelled"
)

// Disparadores de creación de comisión.
const (
	CommissionTriggerReservation = "reservation"
	CommissionTriggerSale        = "sale"
)

// Commission representa la comisión de un comercial por el cierre de un lote.
// ClientName, LotLabel y ProjectName se desnormalizan al crearla para que los
// listados no dependan de resolver referencias.
type Commission struct {
	ID               string
	LotID            string
	SellerID         string
	ClientName       string
	LotLabel         string
	ProjectName      string
	SaleAmount       decimal.Decimal
	CommissionRate   decimal.Decimal // porcentaje plano: 3 significa 3%
	CommissionAmount decimal.Decimal
	Status           string // pending, approved, paid, cancelled
	TriggerType      string // reservation, sale
	ApprovedBy       string
	ApprovedAt       *time.Time
	PaidBy           string
	PaidAt           *time.Time
	CreatedAt        time.Time
}

// CommissionAmountFor calcula la comisión: monto × (tasa / 100).
// La tasa se expresa como porcentaje plano (3 → 3%).
func CommissionAmountFor(saleAmount, rate decimal.Decimal) decimal.Decimal {
	return saleAmount.Mul(rate).Div(decimal.NewFromInt(100))
}

// Approve pasa la comisión de pending a approved registrando quién y cuándo.
// Cualquier otro estado de origen es rechazado.
func (c *Commission) Approve(actorID string, now time.Time) error {
	if c.Status != CommissionStatusPending {
		return domain.ErrInvalidTransition
	}
	c.Status = CommissionStatusApproved
	c.ApprovedBy = actorID
	c.ApprovedAt = &now
	return nil
}

// MarkPaid pasa la comisión de approved a paid registrando quién y cuándo.
// pending → paid directo es inválido: primero debe aprobarse.
func (c *Commission) MarkPaid(actorID string, now time.Time) error {
	if c.Status != CommissionStatusApproved {
		return domain.ErrInvalidTransition
	}
	c.Status = CommissionStatusPaid
	c.PaidBy = actorID
	c.PaidAt = &now
	return nil
}

// Cancel pasa la comisión a cancelled desde pending o approved.
// No hay salida de cancelled ni de paid.
func (c *Commission) Cancel() error {
	if c.Status != CommissionStatusPending && c.Status != CommissionStatusApproved {
		return domain.ErrInvalidTransition
	}
	c.Status = CommissionStatusCancelled
	return nil
}

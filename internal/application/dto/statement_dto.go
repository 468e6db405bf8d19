package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementResponse estado de cuenta derivado de un lote. Nunca se persiste;
// se recalcula en cada lectura. El saldo puede ser negativo (sobrepago) y se
// muestra tal cual.
type StatementResponse struct {
	LotID           string            `json:"lot_id"`
	LotLabel        string            `json:"lot_label"`
	ProjectName     string            `json:"project_name"`
	ClientName      string            `json:"client_name"`
	TotalPrice      decimal.Decimal   `json:"total_price"`
	TotalPaid       decimal.Decimal   `json:"total_paid"`
	Remaining       decimal.Decimal   `json:"remaining"`
	PaidPercentage  decimal.Decimal   `json:"paid_percentage"`
	MonthsPaid      int               `json:"months_paid"`
	MonthsRemaining int               `json:"months_remaining"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Payments        []PaymentResponse `json:"payments"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos para Payment.
const (
	PaymentTypeDownPayment = "down_payment"
	PaymentTypeMonthly     = "monthly"
	PaymentTypeExtra       = "extra"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCard     = "card"
)

// Payment representa un abono registrado contra un lote. Los pagos son
// append-only: no existe operación de edición ni borrado.
type Payment struct {
	ID            string
	LotID         string
	ClientID      string
	Amount        decimal.Decimal
	Type          string // down_payment, monthly, extra
	PaymentNumber int    // secuencia de cuota, solo para monthly
	Date          time.Time
	ReceiptNumber string // REC-<timestamp base36>-<sufijo base36>
	Method        string // cash, transfer, card
	CreatedBy     string
	CreatedAt     time.Time
}

// ValidPaymentType indica si t es un tipo de pago reconocido.
func ValidPaymentType(t string) bool {
	return t == PaymentTypeDownPayment || t == PaymentTypeMonthly || t == PaymentTypeExtra
}

// ValidPaymentMethod indica si m es un método de pago reconocido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodTransfer || m == PaymentMethodCard
}

// PositiveAmount valida el invariante de monto estrictamente positivo.
func PositiveAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

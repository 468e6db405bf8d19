package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest registro de un abono contra un lote.
// PaymentNumber solo aplica para el tipo monthly.
type RegisterPaymentRequest struct {
	LotID         string          `json:"lot_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentNumber int             `json:"payment_number"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
}

// PaymentResponse pago con nombres resueltos de forma tolerante ("-" si el
// lote o el cliente ya no existen).
type PaymentResponse struct {
	ID                string          `json:"id"`
	LotID             string          `json:"lot_id"`
	LotLabel          string          `json:"lot_label"`
	ClientID          string          `json:"client_id"`
	ClientName        string          `json:"client_name"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	PaymentNumber     int             `json:"payment_number,omitempty"`
	Date              time.Time       `json:"date"`
	ReceiptNumber     string          `json:"receipt_number"`
	Method            string          `json:"method"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PaymentListResponse listado de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Total int               `json:"total"`
}

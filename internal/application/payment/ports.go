package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeResult resultado de un cargo en la pasarela.
type ChargeResult struct {
	AuthorizationCode string
	ProcessedAt       time.Time
}

// Gateway puerto hacia la pasarela de pagos. En esta aplicación la única
// implementación es la pasarela simulada (pausa fija, siempre aprueba).
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, method string) (*ChargeResult, error)
}

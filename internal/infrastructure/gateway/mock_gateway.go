// Package gateway implementa la pasarela de pagos simulada del flujo demo:
// una pausa fija que emula latencia de red y luego resuelve el cargo como
// aprobado. No hay I/O real debajo.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/application/payment"
)

// MockGateway implementa payment.Gateway con retardo fijo configurable.
type MockGateway struct {
	delay time.Duration
}

// NewMockGateway construye la pasarela. delayMS en milisegundos (0 = sin pausa).
func NewMockGateway(delayMS int) *MockGateway {
	return &MockGateway{delay: time.Duration(delayMS) * time.Millisecond}
}

// Charge simula el cobro: espera el retardo configurado y aprueba.
// Respeta la cancelación del contexto durante la espera.
func (g *MockGateway) Charge(ctx context.Context, amount decimal.Decimal, method string) (*payment.ChargeResult, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gateway: cargo cancelado: %w", ctx.Err())
		case <-timer.C:
		}
	}
	return &payment.ChargeResult{
		AuthorizationCode: "AUTH-" + uuid.New().String()[:8],
		ProcessedAt:       time.Now(),
	}, nil
}

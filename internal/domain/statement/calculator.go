// Package statement deriva el estado de cuenta de un lote a partir de su
// precio, sus condiciones de financiamiento y su historial de pagos.
// Compute es puro: no retiene estado derivado y se recalcula en cada lectura.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// Statement resumen financiero derivado de un lote. Nunca se persiste.
type Statement struct {
	TotalPrice      decimal.Decimal
	TotalPaid       decimal.Decimal
	Remaining       decimal.Decimal
	PaidPercentage  decimal.Decimal
	MonthsPaid      int
	MonthsRemaining int
}

// Compute deriva el estado de cuenta del lote.
//
// Semántica:
//   - TotalPaid suma los pagos cuyo LotID coincide, en cualquier orden.
//   - Remaining = precio − pagado; NO se trunca en cero. Un sobrepago deja
//     el saldo en negativo y así debe mostrarse.
//   - MonthsPaid cuenta los pagos de tipo monthly sin deduplicar por número
//     de cuota: una mensualidad duplicada sigue contando. MonthsRemaining
//     puede quedar negativo por la misma razón y no se trunca.
//   - Un precio cero o negativo es falla de validación de entrada (el precio
//     se valida positivo al crear el lote); se rechaza en vez de producir
//     Inf o NaN en el porcentaje.
func Compute(lot *entity.Lot, payments []*entity.Payment) (Statement, error) {
	if lot == nil {
		return Statement{}, domain.ErrInvalidInput
	}
	if lot.Price.LessThanOrEqual(decimal.Zero) {
		return Statement{}, domain.ErrInvalidInput
	}

	totalPaid := decimal.Zero
	monthsPaid := 0
	for _, p := range payments {
		if p.LotID != lot.ID {
			continue
		}
		totalPaid = totalPaid.Add(p.Amount)
		if p.Type == entity.PaymentTypeMonthly {
			monthsPaid++
		}
	}

	totalMonths := 0
	if lot.Financing != nil {
		totalMonths = lot.Financing.TotalMonths
	}

	return Statement{
		TotalPrice:      lot.Price,
		TotalPaid:       totalPaid,
		Remaining:       lot.Price.Sub(totalPaid),
		PaidPercentage:  totalPaid.Div(lot.Price).Mul(decimal.NewFromInt(100)),
		MonthsPaid:      monthsPaid,
		MonthsRemaining: totalMonths - monthsPaid,
	}, nil
}

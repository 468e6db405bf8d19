package statement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/statement"
)

func lote(id string, price int64, totalMonths int) *entity.Lot {
	l := &entity.Lot{ID: id, Price: decimal.NewFromInt(price)}
	if totalMonths > 0 {
		l.Financing = &entity.Financing{TotalMonths: totalMonths}
	}
	return l
}

func pago(lotID, tipo string, amount int64) *entity.Payment {
	return &entity.Payment{LotID: lotID, Type: tipo, Amount: decimal.NewFromInt(amount)}
}

// Caso de referencia: precio 700000, prima 140000 y dos mensualidades de 9333.
func TestCompute_AritmeticaBasica(t *testing.T) {
	lot := lote("l1", 700000, 60)
	payments := []*entity.Payment{
		pago("l1", entity.PaymentTypeDownPayment, 140000),
		pago("l1", entity.PaymentTypeMonthly, 9333),
		pago("l1", entity.PaymentTypeMonthly, 9333),
	}

	st, err := statement.Compute(lot, payments)
	require.NoError(t, err)

	assert.True(t, st.TotalPaid.Equal(decimal.NewFromInt(158666)), "pagado: %s", st.TotalPaid)
	assert.True(t, st.Remaining.Equal(decimal.NewFromInt(541334)), "saldo: %s", st.Remaining)
	pct, _ := st.PaidPercentage.Float64()
	assert.InDelta(t, 22.666, pct, 0.01)
	assert.Equal(t, 2, st.MonthsPaid)
	assert.Equal(t, 58, st.MonthsRemaining)
}

// El orden de los pagos no altera el resultado (la suma es conmutativa).
func TestCompute_IndependienteDelOrden(t *testing.T) {
	lot := lote("l1", 500000, 0)
	a := []*entity.Payment{pago("l1", entity.PaymentTypeExtra, 100), pago("l1", entity.PaymentTypeExtra, 250)}
	b := []*entity.Payment{a[1], a[0]}

	s1, err := statement.Compute(lot, a)
	require.NoError(t, err)
	s2, err := statement.Compute(lot, b)
	require.NoError(t, err)
	assert.True(t, s1.TotalPaid.Equal(s2.TotalPaid))
}

// Pagos de otros lotes no entran en la suma.
func TestCompute_IgnoraPagosDeOtrosLotes(t *testing.T) {
	lot := lote("l1", 1000, 0)
	payments := []*entity.Payment{
		pago("l1", entity.PaymentTypeExtra, 300),
		pago("l2", entity.PaymentTypeExtra, 999),
	}
	st, err := statement.Compute(lot, payments)
	require.NoError(t, err)
	assert.True(t, st.TotalPaid.Equal(decimal.NewFromInt(300)))
}

// Un sobrepago deja el saldo en negativo; no se trunca en cero.
func TestCompute_SaldoNegativoSePreserva(t *testing.T) {
	lot := lote("l1", 100, 0)
	payments := []*entity.Payment{
		pago("l1", entity.PaymentTypeExtra, 60),
		pago("l1", entity.PaymentTypeExtra, 60),
	}
	st, err := statement.Compute(lot, payments)
	require.NoError(t, err)
	assert.True(t, st.TotalPaid.Equal(decimal.NewFromInt(120)))
	assert.True(t, st.Remaining.Equal(decimal.NewFromInt(-20)), "saldo: %s", st.Remaining)
}

// Las mensualidades se cuentan sin deduplicar por número de cuota: una cuota
// duplicada sigue contando y MonthsRemaining puede quedar negativo.
func TestCompute_MensualidadesDuplicadasCuentan(t *testing.T) {
	lot := lote("l1", 10000, 2)
	payments := []*entity.Payment{
		{LotID: "l1", Type: entity.PaymentTypeMonthly, PaymentNumber: 1, Amount: decimal.NewFromInt(100)},
		{LotID: "l1", Type: entity.PaymentTypeMonthly, PaymentNumber: 1, Amount: decimal.NewFromInt(100)},
		{LotID: "l1", Type: entity.PaymentTypeMonthly, PaymentNumber: 2, Amount: decimal.NewFromInt(100)},
	}
	st, err := statement.Compute(lot, payments)
	require.NoError(t, err)
	assert.Equal(t, 3, st.MonthsPaid)
	assert.Equal(t, -1, st.MonthsRemaining)
}

// Precio cero es falla de validación, nunca un porcentaje Inf/NaN.
func TestCompute_PrecioCeroEsEntradaInvalida(t *testing.T) {
	lot := &entity.Lot{ID: "l1", Price: decimal.Zero}
	_, err := statement.Compute(lot, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Compute es puro: dos invocaciones con la misma entrada producen el mismo
// resultado y no mutan los pagos de entrada.
func TestCompute_Idempotente(t *testing.T) {
	lot := lote("l1", 700000, 60)
	payments := []*entity.Payment{
		pago("l1", entity.PaymentTypeDownPayment, 140000),
		pago("l1", entity.PaymentTypeMonthly, 9333),
	}

	s1, err := statement.Compute(lot, payments)
	require.NoError(t, err)
	s2, err := statement.Compute(lot, payments)
	require.NoError(t, err)

	assert.Equal(t, s1.MonthsPaid, s2.MonthsPaid)
	assert.True(t, s1.TotalPaid.Equal(s2.TotalPaid))
	assert.True(t, s1.Remaining.Equal(s2.Remaining))
	assert.True(t, s1.PaidPercentage.Equal(s2.PaidPercentage))
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(140000)), "la entrada no debe mutarse")
}

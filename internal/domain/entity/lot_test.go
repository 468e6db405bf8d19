package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

func loteDisponible() *entity.Lot {
	return &entity.Lot{
		ID:        "l1",
		ProjectID: "p1",
		Number:    "12",
		Block:     "B",
		Price:     decimal.NewFromInt(700000),
		Status:    entity.LotStatusAvailable,
	}
}

func TestLot_ReservaYVenta(t *testing.T) {
	lot := loteDisponible()
	now := time.Now()
	fin := &entity.Financing{
		DownPayment:    decimal.NewFromInt(140000),
		MonthlyPayment: decimal.NewFromInt(9333),
		TotalMonths:    60,
		StartDate:      now,
	}

	require.NoError(t, lot.Reserve("cliente-1", "comercial-1", fin, now))
	assert.Equal(t, entity.LotStatusReserved, lot.Status)
	assert.Equal(t, "cliente-1", lot.ClientID)
	require.NotNil(t, lot.ReservedAt)

	require.NoError(t, lot.Sell(now))
	assert.Equal(t, entity.LotStatusSold, lot.Status)
	require.NotNil(t, lot.SoldAt)
}

// Un lote ya vendido no puede reservarse de nuevo (transición directa prohibida).
func TestLot_ReservarLoteVendidoRechazado(t *testing.T) {
	lot := loteDisponible()
	now := time.Now()
	require.NoError(t, lot.Reserve("c1", "s1", nil, now))
	require.NoError(t, lot.Sell(now))

	err := lot.Reserve("c2", "s1", nil, now)
	assert.ErrorIs(t, err, domain.ErrLotNotAvailable)
	assert.Equal(t, "c1", lot.ClientID, "el cliente original no debe pisarse")
}

// Vender un lote disponible sin reserva previa es inválido.
func TestLot_VenderSinReservaRechazado(t *testing.T) {
	lot := loteDisponible()
	err := lot.Sell(time.Now())
	assert.ErrorIs(t, err, domain.ErrLotNotReserved)
	assert.Equal(t, entity.LotStatusAvailable, lot.Status)
}

func TestLot_ReleaseLimpiaReserva(t *testing.T) {
	lot := loteDisponible()
	now := time.Now()
	require.NoError(t, lot.Reserve("c1", "s1", &entity.Financing{TotalMonths: 36}, now))
	require.NoError(t, lot.Release(now))

	assert.Equal(t, entity.LotStatusAvailable, lot.Status)
	assert.Empty(t, lot.ClientID)
	assert.Nil(t, lot.Financing)
	assert.Nil(t, lot.ReservedAt)
}

func TestLot_ReleaseDeVendidoRechazado(t *testing.T) {
	lot := loteDisponible()
	now := time.Now()
	require.NoError(t, lot.Reserve("c1", "s1", nil, now))
	require.NoError(t, lot.Sell(now))
	assert.ErrorIs(t, lot.Release(now), domain.ErrLotNotReserved)
}

func TestLot_Label(t *testing.T) {
	lot := loteDisponible()
	assert.Equal(t, "Mz B - Lote 12", lot.Label())
	lot.Block = ""
	assert.Equal(t, "Lote 12", lot.Label())
}

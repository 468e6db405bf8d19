package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/application/usecase"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/infrastructure/memory"
)

// lotFixture caso de uso de lotes sobre un store sembrado con los datos demo.
type lotFixture struct {
	uc             *usecase.LotUseCase
	commissionRepo *memory.CommissionRepository
}

func newLotFixture(t *testing.T) *lotFixture {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemoData(store, "123"))
	commissionRepo := memory.NewCommissionRepository(store)
	uc := usecase.NewLotUseCase(
		memory.NewLotRepository(store),
		memory.NewProjectRepository(store),
		memory.NewUserRepository(store),
		commissionRepo,
	)
	return &lotFixture{uc: uc, commissionRepo: commissionRepo}
}

func comercialPrincipal() authz.Principal {
	return authz.Principal{UserID: "u-comercial", Role: entity.RoleComercial, AssignedProjectIDs: []string{"p-altos"}}
}

func TestReserve_CreaComisionPendiente(t *testing.T) {
	f := newLotFixture(t)

	lot, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{
		ClientID:       "u-cliente",
		CommissionRate: decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LotStatusReserved, lot.Status)
	assert.Equal(t, "u-cliente", lot.ClientID)
	assert.Equal(t, "u-comercial", lot.SellerID,
		"sin seller_id explícito el comercial que reserva queda como vendedor")

	// El cierre con tasa positiva crea la comisión pending trigger=reservation.
	commissions, err := f.commissionRepo.ListBySeller("u-comercial")
	require.NoError(t, err)
	var created *entity.Commission
	for _, c := range commissions {
		if c.LotID == "l-a02" {
			created = c
		}
	}
	require.NotNil(t, created, "debe crearse la comisión de la reserva")
	assert.Equal(t, entity.CommissionStatusPending, created.Status)
	assert.Equal(t, entity.CommissionTriggerReservation, created.TriggerType)
	// 490000 × 3% = 14700
	assert.True(t, decimal.NewFromInt(14700).Equal(created.CommissionAmount),
		"monto esperado 14700, obtenido %s", created.CommissionAmount)
	assert.Equal(t, "Jorge Medina", created.ClientName)
	assert.Equal(t, "Altos del Roble", created.ProjectName)
}

func TestReserve_SinTasa_NoCreaComision(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{ClientID: "u-cliente"})
	require.NoError(t, err)

	commissions, err := f.commissionRepo.ListBySeller("u-comercial")
	require.NoError(t, err)
	for _, c := range commissions {
		assert.NotEqual(t, "l-a02", c.LotID, "tasa cero no debe generar comisión")
	}
}

func TestReserve_LoteVendido_Rechazado(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a01", dto.ReserveLotRequest{ClientID: "u-cliente"})
	assert.ErrorIs(t, err, domain.ErrLotNotAvailable)
}

func TestReserve_ClienteDebeTenerRolCliente(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{ClientID: "u-gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReserve_FinanciamientoNegativo_Rechazado(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{
		ClientID: "u-cliente",
		Financing: &dto.FinancingRequest{
			DownPayment: decimal.NewFromInt(-1),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSell_ReservadoPasaAVendido(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{ClientID: "u-cliente"})
	require.NoError(t, err)

	lot, err := f.uc.Sell("l-a02", dto.SellLotRequest{CommissionRate: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.Equal(t, entity.LotStatusSold, lot.Status)
	require.NotNil(t, lot.SoldAt)

	commissions, err := f.commissionRepo.ListBySeller("u-comercial")
	require.NoError(t, err)
	var sale *entity.Commission
	for _, c := range commissions {
		if c.LotID == "l-a02" && c.TriggerType == entity.CommissionTriggerSale {
			sale = c
		}
	}
	require.NotNil(t, sale, "debe crearse la comisión de la venta")
}

func TestSell_DisponibleNoSeVende(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Sell("l-a02", dto.SellLotRequest{})
	assert.ErrorIs(t, err, domain.ErrLotNotReserved)
}

func TestRelease_LimpiaReserva(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Reserve(comercialPrincipal(), "l-a02", dto.ReserveLotRequest{ClientID: "u-cliente"})
	require.NoError(t, err)

	lot, err := f.uc.Release("l-a02")
	require.NoError(t, err)
	assert.Equal(t, entity.LotStatusAvailable, lot.Status)
	assert.Empty(t, lot.ClientID)
	assert.Empty(t, lot.SellerID)
	assert.Nil(t, lot.Financing)
}

func TestRelease_VendidoNoSeLibera(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Release("l-a01")
	assert.ErrorIs(t, err, domain.ErrLotNotReserved)
}

func TestList_ComercialSoloVeSusProyectos(t *testing.T) {
	f := newLotFixture(t)

	out, err := f.uc.List(comercialPrincipal(), "")
	require.NoError(t, err)
	// p-altos tiene 2 lotes; el de p-mirador queda fuera del alcance.
	assert.Equal(t, 2, out.Total)
	for _, l := range out.Items {
		assert.Equal(t, "p-altos", l.ProjectID)
	}
}

func TestList_ClienteSoloVeSusLotes(t *testing.T) {
	f := newLotFixture(t)

	out, err := f.uc.List(authz.Principal{UserID: "u-cliente", Role: entity.RoleCliente}, "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "l-a01", out.Items[0].ID)
}

func TestGetByID_ClienteBloqueadoEnLoteAjeno(t *testing.T) {
	f := newLotFixture(t)
	cliente := authz.Principal{UserID: "u-cliente", Role: entity.RoleCliente}

	_, err := f.uc.GetByID(cliente, "l-a02")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	lot, err := f.uc.GetByID(cliente, "l-a01")
	require.NoError(t, err)
	assert.Equal(t, "Mz A - Lote 1", lot.Label)
}

func TestCreate_PrecioNoPositivo_Rechazado(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Create(dto.CreateLotRequest{
		ProjectID: "p-altos",
		Number:    "3",
		Area:      decimal.NewFromInt(300),
		Price:     decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProyectoInexistente_Rechazado(t *testing.T) {
	f := newLotFixture(t)

	_, err := f.uc.Create(dto.CreateLotRequest{
		ProjectID: "p-fantasma",
		Number:    "1",
		Area:      decimal.NewFromInt(300),
		Price:     decimal.NewFromInt(100000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

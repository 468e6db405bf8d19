package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/application/usecase"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/infrastructure/memory"
)

func newCommissionUseCase(t *testing.T) *usecase.CommissionUseCase {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemoData(store, "123"))
	return usecase.NewCommissionUseCase(
		memory.NewCommissionRepository(store),
		memory.NewUserRepository(store),
	)
}

func adminPrincipal() authz.Principal {
	return authz.Principal{UserID: "u-admin", Role: entity.RoleAdmin}
}

func TestCommissionApprove_GerentePuede(t *testing.T) {
	uc := newCommissionUseCase(t)
	gerente := authz.Principal{UserID: "u-gerente", Role: entity.RoleGerente}

	resp, err := uc.Approve(gerente, "com-001")
	require.NoError(t, err)
	assert.Equal(t, entity.CommissionStatusApproved, resp.Status)
	assert.Equal(t, "u-gerente", resp.ApprovedBy)
	require.NotNil(t, resp.ApprovedAt)
}

func TestCommissionApprove_ComercialBloqueado(t *testing.T) {
	uc := newCommissionUseCase(t)
	comercial := authz.Principal{UserID: "u-comercial", Role: entity.RoleComercial}

	_, err := uc.Approve(comercial, "com-001")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCommissionMarkPaid_SoloAdmin(t *testing.T) {
	uc := newCommissionUseCase(t)
	gerente := authz.Principal{UserID: "u-gerente", Role: entity.RoleGerente}

	_, err := uc.Approve(gerente, "com-001")
	require.NoError(t, err)

	// Gerente aprueba pero no paga.
	_, err = uc.MarkPaid(gerente, "com-001")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	resp, err := uc.MarkPaid(adminPrincipal(), "com-001")
	require.NoError(t, err)
	assert.Equal(t, entity.CommissionStatusPaid, resp.Status)
	assert.Equal(t, "u-admin", resp.PaidBy)
}

func TestCommissionMarkPaid_PendingNoSePaga(t *testing.T) {
	uc := newCommissionUseCase(t)

	// pending → paid sin aprobación intermedia se rechaza en la entidad.
	_, err := uc.MarkPaid(adminPrincipal(), "com-001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCommissionCancel_PagadaNoSeCancela(t *testing.T) {
	uc := newCommissionUseCase(t)
	admin := adminPrincipal()

	_, err := uc.Approve(admin, "com-001")
	require.NoError(t, err)
	_, err = uc.MarkPaid(admin, "com-001")
	require.NoError(t, err)

	_, err = uc.Cancel(admin, "com-001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCommissionList_ComercialSoloLasSuyas(t *testing.T) {
	uc := newCommissionUseCase(t)
	comercial := authz.Principal{UserID: "u-comercial", Role: entity.RoleComercial}

	out, err := uc.List(comercial, "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "com-001", out.Items[0].ID)
	assert.Equal(t, "Andrea Ruiz", out.Items[0].SellerName)

	otro := authz.Principal{UserID: "u-otro-comercial", Role: entity.RoleComercial}
	out, err = uc.List(otro, "")
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestCommissionList_ClienteBloqueado(t *testing.T) {
	uc := newCommissionUseCase(t)

	_, err := uc.List(authz.Principal{UserID: "u-cliente", Role: entity.RoleCliente}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCommissionList_FiltroPorEstado(t *testing.T) {
	uc := newCommissionUseCase(t)

	out, err := uc.List(adminPrincipal(), entity.CommissionStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	out, err = uc.List(adminPrincipal(), entity.CommissionStatusPaid)
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestCommissionGetByID_ComercialBloqueadoEnAjena(t *testing.T) {
	uc := newCommissionUseCase(t)
	otro := authz.Principal{UserID: "u-otro-comercial", Role: entity.RoleComercial}

	_, err := uc.GetByID(otro, "com-001")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// Todos los roles del conjunto cerrado deben tener fila en la tabla de
// capacidades: ningún rol puede quedar con un set indefinido.
func TestCapabilities_TablaCompletaParaTodosLosRoles(t *testing.T) {
	for _, role := range entity.AllRoles {
		caps, err := authz.Capabilities(role)
		require.NoError(t, err, "el rol %q debe tener fila en la tabla", role)
		// Al menos una capacidad activa por rol: una fila toda en false
		// indicaría una fila olvidada, no un rol sin permisos.
		assert.NotEqual(t, authz.CapabilitySet{}, caps,
			"el rol %q no debe mapear a un set vacío", role)
	}
}

func TestCapabilities_RolDesconocidoFallaRapido(t *testing.T) {
	_, err := authz.Capabilities("superusuario")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestCapabilities_SoloAdminPagaComisiones(t *testing.T) {
	for _, role := range entity.AllRoles {
		caps, err := authz.Capabilities(role)
		require.NoError(t, err)
		if role == entity.RoleAdmin {
			assert.True(t, caps.PayCommission, "admin debe poder marcar comisiones pagadas")
		} else {
			assert.False(t, caps.PayCommission, "el rol %q no debe marcar comisiones pagadas", role)
		}
	}
}

func proyectos(ids ...string) []*entity.Project {
	out := make([]*entity.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Project{ID: id})
	}
	return out
}

func TestScopeProjects_ComercialSoloVeAsignados(t *testing.T) {
	all := proyectos("p1", "p2", "p3")
	visible, err := authz.ScopeProjects(entity.RoleComercial, []string{"p2", "p9"}, all)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "p2", visible[0].ID)
}

func TestScopeProjects_GerenteVeTodos(t *testing.T) {
	all := proyectos("p1", "p2")
	visible, err := authz.ScopeProjects(entity.RoleGerente, nil, all)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestScopeProjects_ClienteNoVeNinguno(t *testing.T) {
	all := proyectos("p1", "p2")
	visible, err := authz.ScopeProjects(entity.RoleCliente, []string{"p1"}, all)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

// Aislamiento de datos de cliente: ningún registro ajeno puede aparecer en el
// resultado, sin importar cuántos registros de otros clientes existan.
func TestFilterPaymentsForClient_NuncaDevuelveRegistrosAjenos(t *testing.T) {
	payments := []*entity.Payment{
		{ID: "a", ClientID: "c1"},
		{ID: "b", ClientID: "c2"},
		{ID: "c", ClientID: "c1"},
		{ID: "d", ClientID: "c3"},
	}
	got := authz.FilterPaymentsForClient("c1", payments)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "c1", p.ClientID)
	}
}

func TestFilterLotsForClient_NuncaDevuelveRegistrosAjenos(t *testing.T) {
	lots := []*entity.Lot{
		{ID: "l1", ClientID: "c1"},
		{ID: "l2", ClientID: "c2"},
		{ID: "l3", ClientID: ""},
	}
	got := authz.FilterLotsForClient("c1", lots)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
}

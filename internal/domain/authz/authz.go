// Package authz resuelve las capacidades de cada rol y el alcance de datos
// que le corresponde. Es una tabla fija: los cuatro roles del sistema tienen
// una fila definida para cada capacidad, sin rama implícita que pueda
// conceder o negar acceso por omisión.
package authz

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// CapabilitySet capacidades booleanas de un rol. Cada flag corresponde a una
// acción o vista concreta de la aplicación.
type CapabilitySet struct {
	CreateProject     bool
	EditProject       bool
	DeleteProject     bool
	AssignLot         bool
	RegisterPayment   bool
	ViewOwnStatement  bool
	DownloadPDF       bool
	ManageUsers       bool
	ViewReports       bool
	ViewAllClients    bool
	ViewAllProjects   bool
	ApproveCommission bool
	PayCommission     bool // solo el rol de mayor privilegio
}

// capabilityTable fila por rol. Mantener en sincronía con entity.AllRoles:
// un rol sin fila hace fallar Capabilities, nunca devuelve un set vacío en silencio.
var capabilityTable = map[string]CapabilitySet{
	entity.RoleAdmin: {
		CreateProject:     true,
		EditProject:       true,
		DeleteProject:     true,
		AssignLot:         true,
		RegisterPayment:   true,
		ViewOwnStatement:  false,
		DownloadPDF:       true,
		ManageUsers:       true,
		ViewReports:       true,
		ViewAllClients:    true,
		ViewAllProjects:   true,
		ApproveCommission: true,
		PayCommission:     true,
	},
	entity.RoleGerente: {
		CreateProject:     true,
		EditProject:       true,
		DeleteProject:     false,
		AssignLot:         true,
		RegisterPayment:   true,
		ViewOwnStatement:  false,
		DownloadPDF:       true,
		ManageUsers:       false,
		ViewReports:       true,
		ViewAllClients:    true,
		ViewAllProjects:   true,
		ApproveCommission: true,
		PayCommission:     false,
	},
	entity.RoleComercial: {
		CreateProject:     false,
		EditProject:       false,
		DeleteProject:     false,
		AssignLot:         true,
		RegisterPayment:   true,
		ViewOwnStatement:  false,
		DownloadPDF:       true,
		ManageUsers:       false,
		ViewReports:       false,
		ViewAllClients:    false,
		ViewAllProjects:   false, // solo proyectos asignados
		ApproveCommission: false,
		PayCommission:     false,
	},
	entity.RoleCliente: {
		CreateProject:     false,
		EditProject:       false,
		DeleteProject:     false,
		AssignLot:         false,
		RegisterPayment:   false,
		ViewOwnStatement:  true,
		DownloadPDF:       true,
		ManageUsers:       false,
		ViewReports:       false,
		ViewAllClients:    false,
		ViewAllProjects:   false,
		ApproveCommission: false,
		PayCommission:     false,
	},
}

// Capabilities devuelve el set de capacidades del rol.
// Un rol fuera del conjunto cerrado es un error de programación, no una
// condición recuperable: se retorna ErrUnknownRole en vez de un set vacío.
func Capabilities(role string) (CapabilitySet, error) {
	caps, ok := capabilityTable[role]
	if !ok {
		return CapabilitySet{}, domain.ErrUnknownRole
	}
	return caps, nil
}

// Principal identidad autenticada mínima que necesitan los casos de uso para
// aplicar alcance de datos.
type Principal struct {
	UserID             string
	Role               string
	AssignedProjectIDs []string
}

// IsCliente indica si el principal tiene rol cliente (alcance por ClientID).
func (p Principal) IsCliente() bool { return p.Role == entity.RoleCliente }

// ScopeProjects devuelve el subconjunto de proyectos visible para el rol:
// comercial ve la intersección con sus proyectos asignados, los roles con
// ViewAllProjects ven todo, y cualquier otro rol no ve ninguno.
func ScopeProjects(role string, assignedIDs []string, projects []*entity.Project) ([]*entity.Project, error) {
	caps, err := Capabilities(role)
	if err != nil {
		return nil, err
	}
	if caps.ViewAllProjects {
		return projects, nil
	}
	if role != entity.RoleComercial {
		return []*entity.Project{}, nil
	}
	assigned := make(map[string]struct{}, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = struct{}{}
	}
	visible := make([]*entity.Project, 0, len(assignedIDs))
	for _, p := range projects {
		if _, ok := assigned[p.ID]; ok {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// FilterLotsForClient contrato de aislamiento de datos: ningún registro de
// otro cliente debe llegar a una superficie visible por un rol cliente.
func FilterLotsForClient(clientID string, lots []*entity.Lot) []*entity.Lot {
	out := make([]*entity.Lot, 0, len(lots))
	for _, l := range lots {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out
}

// FilterPaymentsForClient ver FilterLotsForClient.
func FilterPaymentsForClient(clientID string, payments []*entity.Payment) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(payments))
	for _, p := range payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

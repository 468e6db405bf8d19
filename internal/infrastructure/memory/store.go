// Package memory implementa los puertos de persistencia sobre un único store
// en memoria. Todo el estado de la sesión vive aquí, sembrado desde datos
// demo; no hay base de datos ni persistencia entre arranques.
//
// Toda mutación pasa por las operaciones nombradas de los repositorios; el
// store nunca expone sus mapas. Los repositorios entregan y reciben copias,
// así el "estado actual" es siempre un snapshot bien definido y ningún caller
// puede mutar registros por asignación directa.
package memory

import (
	"sort"
	"sync"

	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// Store contenedor único de todas las colecciones de entidades.
// El RWMutex existe porque el servidor HTTP atiende requests concurrentes,
// aunque cada despliegue sea de un solo tenant.
type Store struct {
	mu          sync.RWMutex
	users       map[string]entity.User
	projects    map[string]entity.Project
	lots        map[string]entity.Lot
	payments    map[string]entity.Payment
	commissions map[string]entity.Commission
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:       map[string]entity.User{},
		projects:    map[string]entity.Project{},
		lots:        map[string]entity.Lot{},
		payments:    map[string]entity.Payment{},
		commissions: map[string]entity.Commission{},
	}
}

// cloneUser copia profunda (el slice de proyectos asignados no debe compartirse).
func cloneUser(u entity.User) entity.User {
	if u.AssignedProjectIDs != nil {
		ids := make([]string, len(u.AssignedProjectIDs))
		copy(ids, u.AssignedProjectIDs)
		u.AssignedProjectIDs = ids
	}
	return u
}

// cloneLot copia profunda (Financing y timestamps opcionales son punteros).
func cloneLot(l entity.Lot) entity.Lot {
	if l.Financing != nil {
		f := *l.Financing
		l.Financing = &f
	}
	if l.ReservedAt != nil {
		t := *l.ReservedAt
		l.ReservedAt = &t
	}
	if l.SoldAt != nil {
		t := *l.SoldAt
		l.SoldAt = &t
	}
	return l
}

// cloneCommission copia profunda (timestamps de aprobación/pago son punteros).
func cloneCommission(c entity.Commission) entity.Commission {
	if c.ApprovedAt != nil {
		t := *c.ApprovedAt
		c.ApprovedAt = &t
	}
	if c.PaidAt != nil {
		t := *c.PaidAt
		c.PaidAt = &t
	}
	return c
}

// sortByCreatedAt ordena por fecha de creación ascendente; el orden de
// creación importa solo para presentación, nunca para cálculos.
func sortByCreatedAt[T any](items []*T, createdAt func(*T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) < createdAt(items[j])
	})
}

package memory

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// LotRepository implementa repository.LotRepository sobre el Store.
type LotRepository struct {
	store *Store
}

// NewLotRepository construye el repositorio.
func NewLotRepository(store *Store) *LotRepository {
	return &LotRepository{store: store}
}

// Create inserta un lote. Retorna ErrDuplicate si el ID ya existe.
func (r *LotRepository) Create(lot *entity.Lot) error {
	if lot == nil || lot.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.lots[lot.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.lots[lot.ID] = cloneLot(*lot)
	return nil
}

// GetByID retorna el lote o ErrNotFound.
func (r *LotRepository) GetByID(id string) (*entity.Lot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	l, ok := r.store.lots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneLot(l)
	return &out, nil
}

// List retorna todos los lotes ordenados por fecha de creación.
func (r *LotRepository) List() ([]*entity.Lot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Lot, 0, len(r.store.lots))
	for _, l := range r.store.lots {
		c := cloneLot(l)
		out = append(out, &c)
	}
	sortByCreatedAt(out, func(l *entity.Lot) int64 { return l.CreatedAt.UnixNano() })
	return out, nil
}

// ListByProject retorna los lotes del proyecto.
func (r *LotRepository) ListByProject(projectID string) ([]*entity.Lot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Lot, 0)
	for _, l := range r.store.lots {
		if l.ProjectID == projectID {
			c := cloneLot(l)
			out = append(out, &c)
		}
	}
	sortByCreatedAt(out, func(l *entity.Lot) int64 { return l.CreatedAt.UnixNano() })
	return out, nil
}

// ListByClient retorna los lotes asignados al cliente.
func (r *LotRepository) ListByClient(clientID string) ([]*entity.Lot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Lot, 0)
	for _, l := range r.store.lots {
		if l.ClientID == clientID {
			c := cloneLot(l)
			out = append(out, &c)
		}
	}
	sortByCreatedAt(out, func(l *entity.Lot) int64 { return l.CreatedAt.UnixNano() })
	return out, nil
}

// Update reemplaza el registro completo. Retorna ErrNotFound si no existe.
func (r *LotRepository) Update(lot *entity.Lot) error {
	if lot == nil || lot.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.lots[lot.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.lots[lot.ID] = cloneLot(*lot)
	return nil
}

// Delete elimina el lote. Los pagos que lo referencien se toleran en lectura.
func (r *LotRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.lots[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.lots, id)
	return nil
}

package memory

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// CommissionRepository implementa repository.CommissionRepository sobre el Store.
type CommissionRepository struct {
	store *Store
}

// NewCommissionRepository construye el repositorio.
func NewCommissionRepository(store *Store) *CommissionRepository {
	return &CommissionRepository{store: store}
}

// Create inserta una comisión. Retorna ErrDuplicate si el ID ya existe.
func (r *CommissionRepository) Create(commission *entity.Commission) error {
	if commission == nil || commission.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.commissions[commission.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.commissions[commission.ID] = cloneCommission(*commission)
	return nil
}

// GetByID retorna la comisión o ErrNotFound.
func (r *CommissionRepository) GetByID(id string) (*entity.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.commissions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneCommission(c)
	return &out, nil
}

// List retorna todas las comisiones ordenadas por fecha de creación.
func (r *CommissionRepository) List() ([]*entity.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Commission, 0, len(r.store.commissions))
	for _, c := range r.store.commissions {
		cc := cloneCommission(c)
		out = append(out, &cc)
	}
	sortByCreatedAt(out, func(c *entity.Commission) int64 { return c.CreatedAt.UnixNano() })
	return out, nil
}

// ListBySeller retorna las comisiones del comercial.
func (r *CommissionRepository) ListBySeller(sellerID string) ([]*entity.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Commission, 0)
	for _, c := range r.store.commissions {
		if c.SellerID == sellerID {
			cc := cloneCommission(c)
			out = append(out, &cc)
		}
	}
	sortByCreatedAt(out, func(c *entity.Commission) int64 { return c.CreatedAt.UnixNano() })
	return out, nil
}

// ListByStatus retorna las comisiones en el estado dado.
func (r *CommissionRepository) ListByStatus(status string) ([]*entity.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Commission, 0)
	for _, c := range r.store.commissions {
		if c.Status == status {
			cc := cloneCommission(c)
			out = append(out, &cc)
		}
	}
	sortByCreatedAt(out, func(c *entity.Commission) int64 { return c.CreatedAt.UnixNano() })
	return out, nil
}

// Update reemplaza el registro completo. Retorna ErrNotFound si no existe.
func (r *CommissionRepository) Update(commission *entity.Commission) error {
	if commission == nil || commission.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.commissions[commission.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.commissions[commission.ID] = cloneCommission(*commission)
	return nil
}

package memory

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// PaymentRepository implementa repository.PaymentRepository sobre el Store.
// Append-only: no expone Update ni Delete.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// Create inserta un pago. Retorna ErrDuplicate si el ID ya existe.
func (r *PaymentRepository) Create(payment *entity.Payment) error {
	if payment == nil || payment.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.payments[payment.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.payments[payment.ID] = *payment
	return nil
}

// GetByID retorna el pago o ErrNotFound.
func (r *PaymentRepository) GetByID(id string) (*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := p
	return &out, nil
}

// GetByReceiptNumber retorna el pago con ese número de recibo o ErrNotFound.
// Lo usa la generación de recibos para re-tirar el sufijo ante una colisión.
func (r *PaymentRepository) GetByReceiptNumber(receipt string) (*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.payments {
		if p.ReceiptNumber == receipt {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List retorna todos los pagos ordenados por fecha de creación.
func (r *PaymentRepository) List() ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Payment, 0, len(r.store.payments))
	for _, p := range r.store.payments {
		c := p
		out = append(out, &c)
	}
	sortByCreatedAt(out, func(p *entity.Payment) int64 { return p.CreatedAt.UnixNano() })
	return out, nil
}

// ListByLot retorna los pagos del lote.
func (r *PaymentRepository) ListByLot(lotID string) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Payment, 0)
	for _, p := range r.store.payments {
		if p.LotID == lotID {
			c := p
			out = append(out, &c)
		}
	}
	sortByCreatedAt(out, func(p *entity.Payment) int64 { return p.CreatedAt.UnixNano() })
	return out, nil
}

// ListByClient retorna los pagos del cliente.
func (r *PaymentRepository) ListByClient(clientID string) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Payment, 0)
	for _, p := range r.store.payments {
		if p.ClientID == clientID {
			c := p
			out = append(out, &c)
		}
	}
	sortByCreatedAt(out, func(p *entity.Payment) int64 { return p.CreatedAt.UnixNano() })
	return out, nil
}

package repository

import "github.com/jcastellanos/terralote-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son append-only: no hay Update ni Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetByReceiptNumber(receipt string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByLot(lotID string) ([]*entity.Payment, error)
	ListByClient(clientID string) ([]*entity.Payment, error)
}

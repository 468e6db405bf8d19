package repository

import "github.com/jcastellanos/terralote-api/internal/domain/entity"

// CommissionRepository define el puerto de persistencia para Commission.
type CommissionRepository interface {
	Create(commission *entity.Commission) error
	GetByID(id string) (*entity.Commission, error)
	List() ([]*entity.Commission, error)
	ListBySeller(sellerID string) ([]*entity.Commission, error)
	ListByStatus(status string) ([]*entity.Commission, error)
	Update(commission *entity.Commission) error
}

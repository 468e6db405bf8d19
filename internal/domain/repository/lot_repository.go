package repository

import "github.com/jcastellanos/terralote-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para Lot.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	List() ([]*entity.Lot, error)
	ListByProject(projectID string) ([]*entity.Lot, error)
	ListByClient(clientID string) ([]*entity.Lot, error)
	Update(lot *entity.Lot) error
	Delete(id string) error
}

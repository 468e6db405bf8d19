package repository

import "github.com/jcastellanos/terralote-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List() ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}

package memory

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// ProjectRepository implementa repository.ProjectRepository sobre el Store.
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository construye el repositorio.
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Create inserta un proyecto. Retorna ErrDuplicate si el ID ya existe.
func (r *ProjectRepository) Create(project *entity.Project) error {
	if project == nil || project.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[project.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.projects[project.ID] = *project
	return nil
}

// GetByID retorna el proyecto o ErrNotFound.
func (r *ProjectRepository) GetByID(id string) (*entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := p
	return &out, nil
}

// List retorna todos los proyectos ordenados por fecha de creación.
func (r *ProjectRepository) List() ([]*entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		c := p
		out = append(out, &c)
	}
	sortByCreatedAt(out, func(p *entity.Project) int64 { return p.CreatedAt.UnixNano() })
	return out, nil
}

// Update reemplaza el registro completo. Retorna ErrNotFound si no existe.
func (r *ProjectRepository) Update(project *entity.Project) error {
	if project == nil || project.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[project.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.projects[project.ID] = *project
	return nil
}

// Delete elimina el proyecto. Los lotes huérfanos se toleran en lectura
// (el render muestra "-"), nunca se borran en cascada.
func (r *ProjectRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.projects, id)
	return nil
}

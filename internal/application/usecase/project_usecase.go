package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

// ProjectUseCase CRUD de proyectos con alcance por rol en los listados.
type ProjectUseCase struct {
	repo    repository.ProjectRepository
	lotRepo repository.LotRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, lotRepo repository.LotRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, lotRepo: lotRepo}
}

func validProjectStatus(s string) bool {
	return s == entity.ProjectStatusPlanning || s == entity.ProjectStatusSelling || s == entity.ProjectStatusCompleted
}

// Create valida y crea un proyecto. El precio por m² debe ser positivo.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PricePerSquareMeter.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !validProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		Location:            in.Location,
		Description:         in.Description,
		PricePerSquareMeter: in.PricePerSquareMeter,
		Status:              status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return uc.toResponse(project), nil
}

// GetByID obtiene un proyecto con su rollup de lotes.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(project), nil
}

// Update edición parcial de proyecto.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.PricePerSquareMeter != nil {
		if in.PricePerSquareMeter.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		project.PricePerSquareMeter = *in.PricePerSquareMeter
	}
	if in.Status != nil {
		if !validProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return uc.toResponse(project), nil
}

// List lista los proyectos visibles para el principal: comercial ve solo sus
// asignados, los roles con ViewAllProjects ven todos, el resto nada.
func (uc *ProjectUseCase) List(principal authz.Principal) (*dto.ProjectListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	visible, err := authz.ScopeProjects(principal.Role, principal.AssignedProjectIDs, all)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(visible))
	for _, p := range visible {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProjectListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un proyecto. Sus lotes quedan huérfanos y el render los
// tolera; no hay borrado en cascada.
func (uc *ProjectUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProjectUseCase) toResponse(p *entity.Project) *dto.ProjectResponse {
	var available, reserved, sold int
	lots, err := uc.lotRepo.ListByProject(p.ID)
	if err == nil {
		for _, l := range lots {
			switch l.Status {
			case entity.LotStatusAvailable:
				available++
			case entity.LotStatusReserved:
				reserved++
			case entity.LotStatusSold:
				sold++
			}
		}
	}
	return &dto.ProjectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Location:            p.Location,
		Description:         p.Description,
		PricePerSquareMeter: p.PricePerSquareMeter,
		Status:              p.Status,
		AvailableLots:       available,
		ReservedLots:        reserved,
		SoldLots:            sold,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

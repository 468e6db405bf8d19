package usecase

import (
	"time"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

// CommissionUseCase consulta y ciclo de vida de comisiones. La verificación
// de capacidades ocurre aquí además del middleware: las transiciones también
// validan el estado de origen en la entidad, nunca confían en el caller.
type CommissionUseCase struct {
	repo     repository.CommissionRepository
	userRepo repository.UserRepository
}

// NewCommissionUseCase construye el caso de uso.
func NewCommissionUseCase(repo repository.CommissionRepository, userRepo repository.UserRepository) *CommissionUseCase {
	return &CommissionUseCase{repo: repo, userRepo: userRepo}
}

// List lista comisiones con alcance por rol: comercial ve solo las suyas,
// cliente ninguna, el resto todas. Filtro opcional por estado.
func (uc *CommissionUseCase) List(principal authz.Principal, status string) (*dto.CommissionListResponse, error) {
	if principal.IsCliente() {
		return nil, domain.ErrForbidden
	}
	var (
		commissions []*entity.Commission
		err         error
	)
	switch {
	case principal.Role == entity.RoleComercial:
		commissions, err = uc.repo.ListBySeller(principal.UserID)
	case status != "":
		commissions, err = uc.repo.ListByStatus(status)
	default:
		commissions, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	if principal.Role == entity.RoleComercial && status != "" {
		filtered := commissions[:0]
		for _, c := range commissions {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		commissions = filtered
	}
	items := make([]dto.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		items = append(items, *uc.toResponse(c))
	}
	return &dto.CommissionListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una comisión. Comercial solo accede a las suyas.
func (uc *CommissionUseCase) GetByID(principal authz.Principal, id string) (*dto.CommissionResponse, error) {
	if principal.IsCliente() {
		return nil, domain.ErrForbidden
	}
	commission, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if principal.Role == entity.RoleComercial && commission.SellerID != principal.UserID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(commission), nil
}

// Approve transita pending → approved. Requiere la capacidad ApproveCommission.
func (uc *CommissionUseCase) Approve(principal authz.Principal, id string) (*dto.CommissionResponse, error) {
	caps, err := authz.Capabilities(principal.Role)
	if err != nil {
		return nil, err
	}
	if !caps.ApproveCommission {
		return nil, domain.ErrForbidden
	}
	return uc.transition(id, func(c *entity.Commission) error {
		return c.Approve(principal.UserID, time.Now())
	})
}

// MarkPaid transita approved → paid. Solo el rol con PayCommission (admin).
func (uc *CommissionUseCase) MarkPaid(principal authz.Principal, id string) (*dto.CommissionResponse, error) {
	caps, err := authz.Capabilities(principal.Role)
	if err != nil {
		return nil, err
	}
	if !caps.PayCommission {
		return nil, domain.ErrForbidden
	}
	return uc.transition(id, func(c *entity.Commission) error {
		return c.MarkPaid(principal.UserID, time.Now())
	})
}

// Cancel transita pending|approved → cancelled. Usa la misma capacidad de
// aprobación: quien puede aprobar puede cancelar.
func (uc *CommissionUseCase) Cancel(principal authz.Principal, id string) (*dto.CommissionResponse, error) {
	caps, err := authz.Capabilities(principal.Role)
	if err != nil {
		return nil, err
	}
	if !caps.ApproveCommission {
		return nil, domain.ErrForbidden
	}
	return uc.transition(id, func(c *entity.Commission) error {
		return c.Cancel()
	})
}

func (uc *CommissionUseCase) transition(id string, fn func(*entity.Commission) error) (*dto.CommissionResponse, error) {
	commission, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := fn(commission); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(commission); err != nil {
		return nil, err
	}
	return uc.toResponse(commission), nil
}

func (uc *CommissionUseCase) toResponse(c *entity.Commission) *dto.CommissionResponse {
	sellerName := dto.Placeholder
	if seller, err := uc.userRepo.GetByID(c.SellerID); err == nil {
		sellerName = seller.Name
	}
	return &dto.CommissionResponse{
		ID:               c.ID,
		LotID:            c.LotID,
		SellerID:         c.SellerID,
		SellerName:       sellerName,
		ClientName:       c.ClientName,
		LotLabel:         c.LotLabel,
		ProjectName:      c.ProjectName,
		SaleAmount:       c.SaleAmount,
		CommissionRate:   c.CommissionRate,
		CommissionAmount: c.CommissionAmount,
		Status:           c.Status,
		TriggerType:      c.TriggerType,
		ApprovedBy:       c.ApprovedBy,
		ApprovedAt:       c.ApprovedAt,
		PaidBy:           c.PaidBy,
		PaidAt:           c.PaidAt,
		CreatedAt:        c.CreatedAt,
	}
}

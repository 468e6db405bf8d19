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

// LotUseCase CRUD de lotes y transiciones de estado guardadas
// (available → reserved → sold). Al reservar o vender con tasa de comisión
// se crea automáticamente la comisión en estado pending.
type LotUseCase struct {
	repo           repository.LotRepository
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
	commissionRepo repository.CommissionRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(
	repo repository.LotRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	commissionRepo repository.CommissionRepository,
) *LotUseCase {
	return &LotUseCase{
		repo:           repo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
	}
}

// Create valida y crea un lote disponible. Precio y área deben ser positivos
// (el precio positivo es el invariante del que depende el estado de cuenta).
func (uc *LotUseCase) Create(in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.ProjectID == "" || in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThanOrEqual(decimal.Zero) || in.Area.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.projectRepo.GetByID(in.ProjectID); err != nil {
		return nil, err
	}
	now := time.Now()
	lot := &entity.Lot{
		ID:        uuid.New().String(),
		ProjectID: in.ProjectID,
		Number:    in.Number,
		Block:     in.Block,
		Area:      in.Area,
		Price:     in.Price,
		Status:    entity.LotStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	return uc.toResponse(lot), nil
}

// GetByID obtiene un lote. Un cliente solo puede ver el suyo.
func (uc *LotUseCase) GetByID(principal authz.Principal, id string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if principal.IsCliente() && lot.ClientID != principal.UserID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(lot), nil
}

// List lista lotes con alcance por rol: cliente ve solo los suyos, comercial
// los de sus proyectos asignados, el resto todos. Filtro opcional por proyecto.
func (uc *LotUseCase) List(principal authz.Principal, projectID string) (*dto.LotListResponse, error) {
	var (
		lots []*entity.Lot
		err  error
	)
	switch {
	case principal.IsCliente():
		lots, err = uc.repo.ListByClient(principal.UserID)
	case projectID != "":
		lots, err = uc.repo.ListByProject(projectID)
	default:
		lots, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	if principal.Role == entity.RoleComercial {
		assigned := make(map[string]struct{}, len(principal.AssignedProjectIDs))
		for _, id := range principal.AssignedProjectIDs {
			assigned[id] = struct{}{}
		}
		scoped := lots[:0]
		for _, l := range lots {
			if _, ok := assigned[l.ProjectID]; ok {
				scoped = append(scoped, l)
			}
		}
		lots = scoped
	}
	if principal.IsCliente() && projectID != "" {
		filtered := lots[:0]
		for _, l := range lots {
			if l.ProjectID == projectID {
				filtered = append(filtered, l)
			}
		}
		lots = filtered
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *uc.toResponse(l))
	}
	return &dto.LotListResponse{Items: items, Total: len(items)}, nil
}

// Reserve pasa el lote a reserved asignando cliente, vendedor y
// financiamiento. Si viene tasa de comisión positiva se crea la comisión
// pending con disparador reservation.
func (uc *LotUseCase) Reserve(principal authz.Principal, lotID string, in dto.ReserveLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	client, err := uc.userRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Role != entity.RoleCliente {
		return nil, domain.ErrInvalidInput
	}
	sellerID := in.SellerID
	if sellerID == "" && principal.Role == entity.RoleComercial {
		sellerID = principal.UserID
	}

	var financing *entity.Financing
	if in.Financing != nil {
		if in.Financing.DownPayment.LessThan(decimal.Zero) || in.Financing.TotalMonths < 0 {
			return nil, domain.ErrInvalidInput
		}
		financing = &entity.Financing{
			DownPayment:    in.Financing.DownPayment,
			MonthlyPayment: in.Financing.MonthlyPayment,
			TotalMonths:    in.Financing.TotalMonths,
			StartDate:      in.Financing.StartDate,
		}
	}

	now := time.Now()
	if err := lot.Reserve(in.ClientID, sellerID, financing, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	if err := uc.createCommission(lot, in.CommissionRate, entity.CommissionTriggerReservation, now); err != nil {
		return nil, err
	}
	return uc.toResponse(lot), nil
}

// Sell pasa un lote reservado a sold (contrato firmado). Si viene tasa de
// comisión positiva se crea la comisión pending con disparador sale.
func (uc *LotUseCase) Sell(lotID string, in dto.SellLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := lot.Sell(now); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	if err := uc.createCommission(lot, in.CommissionRate, entity.CommissionTriggerSale, now); err != nil {
		return nil, err
	}
	return uc.toResponse(lot), nil
}

// Release libera una reserva vigente.
func (uc *LotUseCase) Release(lotID string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if err := lot.Release(time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return uc.toResponse(lot), nil
}

// Delete elimina un lote. Sus pagos quedan huérfanos y el render los tolera.
func (uc *LotUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// createCommission crea la comisión pending del cierre si hay vendedor y tasa
// positiva. Los nombres se desnormalizan en este momento.
func (uc *LotUseCase) createCommission(lot *entity.Lot, rate decimal.Decimal, trigger string, now time.Time) error {
	if lot.SellerID == "" || rate.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	clientName := dto.Placeholder
	if client, err := uc.userRepo.GetByID(lot.ClientID); err == nil {
		clientName = client.Name
	}
	projectName := dto.Placeholder
	if project, err := uc.projectRepo.GetByID(lot.ProjectID); err == nil {
		projectName = project.Name
	}
	commission := &entity.Commission{
		ID:               uuid.New().String(),
		LotID:            lot.ID,
		SellerID:         lot.SellerID,
		ClientName:       clientName,
		LotLabel:         lot.Label(),
		ProjectName:      projectName,
		SaleAmount:       lot.Price,
		CommissionRate:   rate,
		CommissionAmount: entity.CommissionAmountFor(lot.Price, rate),
		Status:           entity.CommissionStatusPending,
		TriggerType:      trigger,
		CreatedAt:        now,
	}
	return uc.commissionRepo.Create(commission)
}

// toResponse proyecta el lote resolviendo nombres de forma tolerante: un
// proyecto o cliente borrado se muestra como "-", nunca rompe la lectura.
func (uc *LotUseCase) toResponse(l *entity.Lot) *dto.LotResponse {
	projectName := dto.Placeholder
	if project, err := uc.projectRepo.GetByID(l.ProjectID); err == nil {
		projectName = project.Name
	}
	clientName := ""
	if l.ClientID != "" {
		clientName = dto.Placeholder
		if client, err := uc.userRepo.GetByID(l.ClientID); err == nil {
			clientName = client.Name
		}
	}
	var financing *dto.FinancingResponse
	if l.Financing != nil {
		financing = &dto.FinancingResponse{
			DownPayment:    l.Financing.DownPayment,
			MonthlyPayment: l.Financing.MonthlyPayment,
			TotalMonths:    l.Financing.TotalMonths,
			StartDate:      l.Financing.StartDate,
		}
	}
	return &dto.LotResponse{
		ID:          l.ID,
		ProjectID:   l.ProjectID,
		ProjectName: projectName,
		Number:      l.Number,
		Block:       l.Block,
		Label:       l.Label(),
		Area:        l.Area,
		Price:       l.Price,
		Status:      l.Status,
		ClientID:    l.ClientID,
		ClientName:  clientName,
		SellerID:    l.SellerID,
		Financing:   financing,
		ReservedAt:  l.ReservedAt,
		SoldAt:      l.SoldAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

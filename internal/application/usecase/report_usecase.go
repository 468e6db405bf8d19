package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

// ReportUseCase agrega los números del reporte ejecutivo (capacidad
// ViewReports). Todo se deriva de las colecciones crudas en cada lectura.
type ReportUseCase struct {
	projectRepo    repository.ProjectRepository
	lotRepo        repository.LotRepository
	paymentRepo    repository.PaymentRepository
	commissionRepo repository.CommissionRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	projectRepo repository.ProjectRepository,
	lotRepo repository.LotRepository,
	paymentRepo repository.PaymentRepository,
	commissionRepo repository.CommissionRepository,
) *ReportUseCase {
	return &ReportUseCase{
		projectRepo:    projectRepo,
		lotRepo:        lotRepo,
		paymentRepo:    paymentRepo,
		commissionRepo: commissionRepo,
	}
}

// ExecutiveReport deriva los agregados globales y por proyecto.
func (uc *ReportUseCase) ExecutiveReport() (*dto.ExecutiveReportResponse, error) {
	projects, err := uc.projectRepo.List()
	if err != nil {
		return nil, err
	}
	lots, err := uc.lotRepo.List()
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	commissions, err := uc.commissionRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.ExecutiveReportResponse{
		GeneratedAt:    time.Now(),
		TotalCollected: decimal.Zero,
		TotalSold:      decimal.Zero,
		TotalReserved:  decimal.Zero,
	}
	for _, p := range payments {
		out.TotalCollected = out.TotalCollected.Add(p.Amount)
	}

	rows := make(map[string]*dto.ProjectReportRow, len(projects))
	for _, p := range projects {
		rows[p.ID] = &dto.ProjectReportRow{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			TotalSold:     decimal.Zero,
			TotalReserved: decimal.Zero,
		}
	}
	for _, l := range lots {
		row := rows[l.ProjectID] // nil para lotes huérfanos: cuentan solo en globales
		switch l.Status {
		case entity.LotStatusAvailable:
			out.LotsAvailable++
			if row != nil {
				row.AvailableLots++
			}
		case entity.LotStatusReserved:
			out.LotsReserved++
			out.TotalReserved = out.TotalReserved.Add(l.Price)
			if row != nil {
				row.ReservedLots++
				row.TotalReserved = row.TotalReserved.Add(l.Price)
			}
		case entity.LotStatusSold:
			out.LotsSold++
			out.TotalSold = out.TotalSold.Add(l.Price)
			if row != nil {
				row.SoldLots++
				row.TotalSold = row.TotalSold.Add(l.Price)
			}
		}
	}

	out.Commissions = dto.CommissionSummary{
		Pending:   decimal.Zero,
		Approved:  decimal.Zero,
		Paid:      decimal.Zero,
		Cancelled: decimal.Zero,
	}
	for _, c := range commissions {
		switch c.Status {
		case entity.CommissionStatusPending:
			out.Commissions.Pending = out.Commissions.Pending.Add(c.CommissionAmount)
		case entity.CommissionStatusApproved:
			out.Commissions.Approved = out.Commissions.Approved.Add(c.CommissionAmount)
		case entity.CommissionStatusPaid:
			out.Commissions.Paid = out.Commissions.Paid.Add(c.CommissionAmount)
		case entity.CommissionStatusCancelled:
			out.Commissions.Cancelled = out.Commissions.Cancelled.Add(c.CommissionAmount)
		}
	}

	out.Projects = make([]dto.ProjectReportRow, 0, len(projects))
	for _, p := range projects {
		out.Projects = append(out.Projects, *rows[p.ID])
	}
	return out, nil
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectReportRow rollup de un proyecto en el reporte ejecutivo.
type ProjectReportRow struct {
	ProjectID     string          `json:"project_id"`
	ProjectName   string          `json:"project_name"`
	AvailableLots int             `json:"available_lots"`
	ReservedLots  int             `json:"reserved_lots"`
	SoldLots      int             `json:"sold_lots"`
	TotalSold     decimal.Decimal `json:"total_sold"`
	TotalReserved decimal.Decimal `json:"total_reserved"`
}

// CommissionSummary totales de comisiones por estado.
type CommissionSummary struct {
	Pending   decimal.Decimal `json:"pending"`
	Approved  decimal.Decimal `json:"approved"`
	Paid      decimal.Decimal `json:"paid"`
	Cancelled decimal.Decimal `json:"cancelled"`
}

// ExecutiveReportResponse agregados para la vista de reportes (ViewReports).
type ExecutiveReportResponse struct {
	GeneratedAt    time.Time          `json:"generated_at"`
	TotalCollected decimal.Decimal    `json:"total_collected"`
	TotalSold      decimal.Decimal    `json:"total_sold"`
	TotalReserved  decimal.Decimal    `json:"total_reserved"`
	LotsAvailable  int                `json:"lots_available"`
	LotsReserved   int                `json:"lots_reserved"`
	LotsSold       int                `json:"lots_sold"`
	Commissions    CommissionSummary  `json:"commissions"`
	Projects       []ProjectReportRow `json:"projects"`
}

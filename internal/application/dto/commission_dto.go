package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionResponse comisión con nombres desnormalizados al crearla.
type CommissionResponse struct {
	ID               string          `json:"id"`
	LotID            string          `json:"lot_id"`
	SellerID         string          `json:"seller_id"`
	SellerName       string          `json:"seller_name"`
	ClientName       string          `json:"client_name"`
	LotLabel         string          `json:"lot_label"`
	ProjectName      string          `json:"project_name"`
	SaleAmount       decimal.Decimal `json:"sale_amount"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Status           string          `json:"status"`
	TriggerType      string          `json:"trigger_type"`
	ApprovedBy       string          `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	PaidBy           string          `json:"paid_by,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CommissionListResponse listado de comisiones.
type CommissionListResponse struct {
	Items []CommissionResponse `json:"items"`
	Total int                  `json:"total"`
}

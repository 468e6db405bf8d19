package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest alta de lote dentro de un proyecto.
type CreateLotRequest struct {
	ProjectID string          `json:"project_id"`
	Number    string          `json:"number"`
	Block     string          `json:"block"`
	Area      decimal.Decimal `json:"area"`
	Price     decimal.Decimal `json:"price"`
}

// FinancingRequest condiciones de financiamiento al reservar.
type FinancingRequest struct {
	DownPayment    decimal.Decimal `json:"down_payment"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalMonths    int             `json:"total_months"`
	StartDate      time.Time       `json:"start_date"`
}

// ReserveLotRequest reserva: cliente + financiamiento + tasa de comisión
// opcional del comercial que cierra (0 = sin comisión).
type ReserveLotRequest struct {
	ClientID       string            `json:"client_id"`
	SellerID       string            `json:"seller_id"`
	Financing      *FinancingRequest `json:"financing"`
	CommissionRate decimal.Decimal   `json:"commission_rate"`
}

// SellLotRequest firma de contrato sobre un lote reservado.
type SellLotRequest struct {
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// FinancingResponse condiciones pactadas.
type FinancingResponse struct {
	DownPayment    decimal.Decimal `json:"down_payment"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalMonths    int             `json:"total_months"`
	StartDate      time.Time       `json:"start_date"`
}

// LotResponse lote con nombres resueltos de forma tolerante: si el proyecto
// o el cliente ya no existen se muestra "-" en lugar de fallar.
type LotResponse struct {
	ID          string             `json:"id"`
	ProjectID   string             `json:"project_id"`
	ProjectName string             `json:"project_name"`
	Number      string             `json:"number"`
	Block       string             `json:"block,omitempty"`
	Label       string             `json:"label"`
	Area        decimal.Decimal    `json:"area"`
	Price       decimal.Decimal    `json:"price"`
	Status      string             `json:"status"`
	ClientID    string             `json:"client_id,omitempty"`
	ClientName  string             `json:"client_name,omitempty"`
	SellerID    string             `json:"seller_id,omitempty"`
	Financing   *FinancingResponse `json:"financing,omitempty"`
	ReservedAt  *time.Time         `json:"reserved_at,omitempty"`
	SoldAt      *time.Time         `json:"sold_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// LotListResponse listado de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Total int           `json:"total"`
}

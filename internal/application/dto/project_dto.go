package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	Name                string          `json:"name"`
	Location            string          `json:"location"`
	Description         string          `json:"description"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter"`
	Status              string          `json:"status"`
}

// UpdateProjectRequest edición parcial de proyecto.
type UpdateProjectRequest struct {
	Name                *string          `json:"name"`
	Location            *string          `json:"location"`
	Description         *string          `json:"description"`
	PricePerSquareMeter *decimal.Decimal `json:"price_per_square_meter"`
	Status              *string          `json:"status"`
}

// ProjectResponse proyecto con el rollup de lotes por estado.
type ProjectResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Location            string          `json:"location"`
	Description         string          `json:"description"`
	PricePerSquareMeter decimal.Decimal `json:"price_per_square_meter"`
	Status              string          `json:"status"`
	AvailableLots       int             `json:"available_lots"`
	ReservedLots        int             `json:"reserved_lots"`
	SoldLots            int             `json:"sold_lots"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ProjectListResponse listado de proyectos visibles para el rol.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Total int               `json:"total"`
}

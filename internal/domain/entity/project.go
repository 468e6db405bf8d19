package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Project.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusSelling   = "selling"
	ProjectStatusCompleted = "completed"
)

// Project representa un desarrollo inmobiliario que agrupa lotes.
type Project struct {
	ID                  string
	Name                string
	Location            string
	Description         string
	PricePerSquareMeter decimal.Decimal
	Status              string // planning, selling, completed
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

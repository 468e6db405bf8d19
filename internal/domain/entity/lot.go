package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellanos/terralote-api/internal/domain"
)

// Estados válidos para Lot.
const (
	LotStatusAvailable = "available"
	LotStatusReserved  = "reserved"
	LotStatusSold      = "sold"
)

// Financing condiciones de financiamiento pactadas al reservar un lote.
type Financing struct {
	DownPayment    decimal.Decimal
	MonthlyPayment decimal.Decimal
	TotalMonths    int
	StartDate      time.Time
}

// Lot representa un lote individual vendible dentro de un proyecto.
// El estado solo cambia por Reserve/Sell/Release; nunca por asignación directa.
type Lot struct {
	ID         string
	ProjectID  string
	Number     string // número legible, ej. "12"
	Block      string // manzana, opcional
	Area       decimal.Decimal
	Price      decimal.Decimal
	Status     string // available, reserved, sold
	ClientID   string
	SellerID   string
	Financing  *Financing
	ReservedAt *time.Time
	SoldAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Label devuelve la etiqueta legible del lote (manzana + número).
func (l *Lot) Label() string {
	if l.Block != "" {
		return "Mz " + l.Block + " - Lote " + l.Number
	}
	return "Lote " + l.Number
}

// Reserve pasa el lote de available a reserved asignando cliente, vendedor y
// condiciones de financiamiento. Rechaza cualquier otro estado de origen.
func (l *Lot) Reserve(clientID, sellerID string, financing *Financing, now time.Time) error {
	if l.Status != LotStatusAvailable {
		return domain.ErrLotNotAvailable
	}
	if clientID == "" {
		return domain.ErrInvalidInput
	}
	l.Status = LotStatusReserved
	l.ClientID = clientID
	l.SellerID = sellerID
	l.Financing = financing
	l.ReservedAt = &now
	l.UpdatedAt = now
	return nil
}

// Sell pasa el lote de reserved a sold (contrato firmado, plan de cuotas activo).
// Rechaza la venta de lotes disponibles o ya vendidos.
func (l *Lot) Sell(now time.Time) error {
	if l.Status != LotStatusReserved {
		return domain.ErrLotNotReserved
	}
	l.Status = LotStatusSold
	l.SoldAt = &now
	l.UpdatedAt = now
	return nil
}

// Release libera una reserva: vuelve a available y limpia cliente y financiamiento.
// Un lote vendido no se libera.
func (l *Lot) Release(now time.Time) error {
	if l.Status != LotStatusReserved {
		return domain.ErrLotNotReserved
	}
	l.Status = LotStatusAvailable
	l.ClientID = ""
	l.SellerID = ""
	l.Financing = nil
	l.ReservedAt = nil
	l.UpdatedAt = now
	return nil
}

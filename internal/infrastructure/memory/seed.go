package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// SeedDemoData siembra el store con los datos mock de demostración: un
// usuario por rol, dos proyectos con lotes y un lote vendido con historial
// de pagos y comisión pendiente. IDs fijos para que la demo sea reproducible.
//
// La contraseña de cada usuario sigue el esquema demo: parte local del email
// + passwordSuffix (ej. admin@terralote.com → "admin" + sufijo).
func SeedDemoData(store *Store, passwordSuffix string) error {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	users := []*entity.User{
		{ID: "u-admin", Email: "admin@terralote.com", Name: "Laura Fernández", Role: entity.RoleAdmin, Phone: "3001112233"},
		{ID: "u-gerente", Email: "gerente@terralote.com", Name: "Carlos Pineda", Role: entity.RoleGerente, Phone: "3004445566"},
		{ID: "u-comercial", Email: "comercial@terralote.com", Name: "Andrea Ruiz", Role: entity.RoleComercial, Phone: "3007778899", AssignedProjectIDs: []string{"p-altos"}},
		{ID: "u-cliente", Email: "cliente@terralote.com", Name: "Jorge Medina", Role: entity.RoleCliente, Phone: "3010001122"},
	}
	userRepo := NewUserRepository(store)
	for i, u := range users {
		local := strings.SplitN(u.Email, "@", 2)[0]
		hash, err := bcrypt.GenerateFromPassword([]byte(local+passwordSuffix), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash de contraseña: %w", err)
		}
		u.PasswordHash = string(hash)
		u.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		u.UpdatedAt = u.CreatedAt
		if err := userRepo.Create(u); err != nil {
			return fmt.Errorf("seed: usuario %s: %w", u.Email, err)
		}
	}

	projectRepo := NewProjectRepository(store)
	projects := []*entity.Project{
		{
			ID: "p-altos", Name: "Altos del Roble", Location: "Km 4 vía La Mesa",
			Description: "Parcelación campestre de 48 lotes con vías internas y acueducto.",
			PricePerSquareMeter: decimal.NewFromInt(1400), Status: entity.ProjectStatusSelling,
		},
		{
			ID: "p-mirador", Name: "Mirador de San Juan", Location: "Vereda San Juan",
			Description: "Segunda etapa en planeación, lotes desde 250 m².",
			PricePerSquareMeter: decimal.NewFromInt(1100), Status: entity.ProjectStatusPlanning,
		},
	}
	for i, p := range projects {
		p.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		p.UpdatedAt = p.CreatedAt
		if err := projectRepo.Create(p); err != nil {
			return fmt.Errorf("seed: proyecto %s: %w", p.Name, err)
		}
	}

	soldAt := now.AddDate(0, 1, 0)
	lotRepo := NewLotRepository(store)
	lots := []*entity.Lot{
		{
			ID: "l-a01", ProjectID: "p-altos", Number: "1", Block: "A",
			Area: decimal.NewFromInt(500), Price: decimal.NewFromInt(700000),
			Status: entity.LotStatusSold, ClientID: "u-cliente", SellerID: "u-comercial",
			Financing: &entity.Financing{
				DownPayment:    decimal.NewFromInt(140000),
				MonthlyPayment: decimal.NewFromInt(9333),
				TotalMonths:    60,
				StartDate:      soldAt,
			},
			ReservedAt: &now, SoldAt: &soldAt,
		},
		{
			ID: "l-a02", ProjectID: "p-altos", Number: "2", Block: "A",
			Area: decimal.NewFromInt(350), Price: decimal.NewFromInt(490000),
			Status: entity.LotStatusAvailable,
		},
		{
			ID: "l-m01", ProjectID: "p-mirador", Number: "1", Block: "",
			Area: decimal.NewFromInt(250), Price: decimal.NewFromInt(275000),
			Status: entity.LotStatusAvailable,
		},
	}
	for i, l := range lots {
		l.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		l.UpdatedAt = l.CreatedAt
		if err := lotRepo.Create(l); err != nil {
			return fmt.Errorf("seed: lote %s: %w", l.Label(), err)
		}
	}

	paymentRepo := NewPaymentRepository(store)
	payments := []*entity.Payment{
		{
			ID: "pay-001", LotID: "l-a01", ClientID: "u-cliente",
			Amount: decimal.NewFromInt(140000), Type: entity.PaymentTypeDownPayment,
			Date: now, ReceiptNumber: "REC-SEED0001-0001", Method: entity.PaymentMethodTransfer,
			CreatedBy: "u-comercial",
		},
		{
			ID: "pay-002", LotID: "l-a01", ClientID: "u-cliente",
			Amount: decimal.NewFromInt(9333), Type: entity.PaymentTypeMonthly, PaymentNumber: 1,
			Date: soldAt.AddDate(0, 1, 0), ReceiptNumber: "REC-SEED0002-0001", Method: entity.PaymentMethodCash,
			CreatedBy: "u-gerente",
		},
		{
			ID: "pay-003", LotID: "l-a01", ClientID: "u-cliente",
			Amount: decimal.NewFromInt(9333), Type: entity.PaymentTypeMonthly, PaymentNumber: 2,
			Date: soldAt.AddDate(0, 2, 0), ReceiptNumber: "REC-SEED0003-0001", Method: entity.PaymentMethodCash,
			CreatedBy: "u-gerente",
		},
	}
	for i, pay := range payments {
		pay.CreatedAt = pay.Date.Add(time.Duration(i) * time.Minute)
		if err := paymentRepo.Create(pay); err != nil {
			return fmt.Errorf("seed: pago %s: %w", pay.ID, err)
		}
	}

	commissionRepo := NewCommissionRepository(store)
	commission := &entity.Commission{
		ID: "com-001", LotID: "l-a01", SellerID: "u-comercial",
		ClientName: "Jorge Medina", LotLabel: "Mz A - Lote 1", ProjectName: "Altos del Roble",
		SaleAmount:       decimal.NewFromInt(700000),
		CommissionRate:   decimal.NewFromInt(3),
		CommissionAmount: entity.CommissionAmountFor(decimal.NewFromInt(700000), decimal.NewFromInt(3)),
		Status:           entity.CommissionStatusPending,
		TriggerType:      entity.CommissionTriggerSale,
		CreatedAt:        soldAt,
	}
	if err := commissionRepo.Create(commission); err != nil {
		return fmt.Errorf("seed: comisión %s: %w", commission.ID, err)
	}

	return nil
}

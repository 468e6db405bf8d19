package usecase

import (
	"time"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
	"github.com/jcastellanos/terralote-api/internal/domain/statement"
)

// StatementUseCase arma el estado de cuenta de un lote: junta lote, proyecto,
// cliente y pagos, y deriva los totales con el calculador puro. Nada se
// persiste; cada lectura recalcula.
type StatementUseCase struct {
	lotRepo     repository.LotRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	lotRepo repository.LotRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
) *StatementUseCase {
	return &StatementUseCase{
		lotRepo:     lotRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

// GetForLot deriva el estado de cuenta del lote. Un cliente solo puede pedir
// el de su propio lote (capacidad ViewOwnStatement + alcance por ClientID).
func (uc *StatementUseCase) GetForLot(principal authz.Principal, lotID string) (*dto.StatementResponse, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if principal.IsCliente() && lot.ClientID != principal.UserID {
		return nil, domain.ErrForbidden
	}
	payments, err := uc.paymentRepo.ListByLot(lotID)
	if err != nil {
		return nil, err
	}
	st, err := statement.Compute(lot, payments)
	if err != nil {
		return nil, err
	}

	// Resolución tolerante de nombres; el cálculo ya está hecho.
	projectName := dto.Placeholder
	if project, err := uc.projectRepo.GetByID(lot.ProjectID); err == nil {
		projectName = project.Name
	}
	clientName := dto.Placeholder
	if client, err := uc.userRepo.GetByID(lot.ClientID); err == nil {
		clientName = client.Name
	}

	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, dto.PaymentResponse{
			ID:            p.ID,
			LotID:         p.LotID,
			LotLabel:      lot.Label(),
			ClientID:      p.ClientID,
			ClientName:    clientName,
			Amount:        p.Amount,
			Type:          p.Type,
			PaymentNumber: p.PaymentNumber,
			Date:          p.Date,
			ReceiptNumber: p.ReceiptNumber,
			Method:        p.Method,
			CreatedBy:     p.CreatedBy,
			CreatedAt:     p.CreatedAt,
		})
	}

	return &dto.StatementResponse{
		LotID:           lot.ID,
		LotLabel:        lot.Label(),
		ProjectName:     projectName,
		ClientName:      clientName,
		TotalPrice:      st.TotalPrice,
		TotalPaid:       st.TotalPaid,
		Remaining:       st.Remaining,
		PaidPercentage:  st.PaidPercentage,
		MonthsPaid:      st.MonthsPaid,
		MonthsRemaining: st.MonthsRemaining,
		GeneratedAt:     time.Now(),
		Payments:        items,
	}, nil
}

// Package payment registra abonos contra lotes. Validación estricta en la
// mutación (monto positivo, lote existente, tipo y método válidos); lectura
// tolerante (referencias rotas se muestran como "-").
package payment

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// receiptAttempts reintentos ante colisión de número de recibo.
const receiptAttempts = 5

// UseCase registro y consulta de pagos.
type UseCase struct {
	repo     repository.PaymentRepository
	lotRepo  repository.LotRepository
	userRepo repository.UserRepository
	gateway  Gateway
}

// NewUseCase construye el caso de uso. gateway puede ser nil si no se cobran
// pagos con tarjeta.
func NewUseCase(
	repo repository.PaymentRepository,
	lotRepo repository.LotRepository,
	userRepo repository.UserRepository,
	gateway Gateway,
) *UseCase {
	return &UseCase{repo: repo, lotRepo: lotRepo, userRepo: userRepo, gateway: gateway}
}

// Register valida y registra un abono. Los pagos son append-only: una vez
// aceptados no hay edición ni borrado. Con método card el cargo pasa por la
// pasarela simulada antes de persistir.
func (uc *UseCase) Register(ctx context.Context, principal authz.Principal, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if !entity.PositiveAmount(in.Amount) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentType(in.Type) || !entity.ValidPaymentMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.PaymentTypeMonthly && in.PaymentNumber < 1 {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return nil, err
	}
	if lot.ClientID == "" {
		// Sin cliente asignado no hay a quién acreditar el abono.
		return nil, domain.ErrConflict
	}
	if in.Type == entity.PaymentTypeDownPayment && lot.Status == entity.LotStatusAvailable {
		return nil, domain.ErrConflict
	}

	var authCode string
	if in.Method == entity.PaymentMethodCard {
		if uc.gateway == nil {
			return nil, domain.ErrInvalidInput
		}
		result, err := uc.gateway.Charge(ctx, in.Amount, in.Method)
		if err != nil {
			return nil, fmt.Errorf("cargo en pasarela: %w", err)
		}
		authCode = result.AuthorizationCode
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	receipt, err := uc.newReceiptNumber(now)
	if err != nil {
		return nil, err
	}
	pay := &entity.Payment{
		ID:            uuid.New().String(),
		LotID:         lot.ID,
		ClientID:      lot.ClientID,
		Amount:        in.Amount,
		Type:          in.Type,
		PaymentNumber: in.PaymentNumber,
		Date:          date,
		ReceiptNumber: receipt,
		Method:        in.Method,
		CreatedBy:     principal.UserID,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(pay); err != nil {
		return nil, err
	}
	resp := uc.toResponse(pay)
	resp.AuthorizationCode = authCode
	return resp, nil
}

// GetByID obtiene un pago. Un cliente solo puede ver los suyos.
func (uc *UseCase) GetByID(principal authz.Principal, id string) (*dto.PaymentResponse, error) {
	pay, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if principal.IsCliente() && pay.ClientID != principal.UserID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(pay), nil
}

// ListByLot lista los pagos de un lote. Un cliente solo accede a su lote.
func (uc *UseCase) ListByLot(principal authz.Principal, lotID string) (*dto.PaymentListResponse, error) {
	if principal.IsCliente() {
		lot, err := uc.lotRepo.GetByID(lotID)
		if err != nil {
			return nil, err
		}
		if lot.ClientID != principal.UserID {
			return nil, domain.ErrForbidden
		}
	}
	payments, err := uc.repo.ListByLot(lotID)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(principal, payments)
}

// List lista pagos con alcance central: un cliente nunca recibe registros
// ajenos, sin importar el call site.
func (uc *UseCase) List(principal authz.Principal) (*dto.PaymentListResponse, error) {
	var (
		payments []*entity.Payment
		err      error
	)
	if principal.IsCliente() {
		payments, err = uc.repo.ListByClient(principal.UserID)
	} else {
		payments, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(principal, payments)
}

// ListByClient lista los pagos de un cliente. Un principal cliente solo puede
// pedir los propios.
func (uc *UseCase) ListByClient(principal authz.Principal, clientID string) (*dto.PaymentListResponse, error) {
	if principal.IsCliente() && clientID != principal.UserID {
		return nil, domain.ErrForbidden
	}
	payments, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(principal, payments)
}

func (uc *UseCase) toListResponse(principal authz.Principal, payments []*entity.Payment) (*dto.PaymentListResponse, error) {
	// Red de seguridad del contrato de aislamiento: aunque la consulta ya
	// vino acotada, un cliente jamás recibe un registro ajeno.
	if principal.IsCliente() {
		payments = authz.FilterPaymentsForClient(principal.UserID, payments)
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.PaymentListResponse{Items: items, Total: len(items)}, nil
}

// newReceiptNumber genera REC-<timestamp base36>-<4 chars base36 aleatorios>.
// El formato original no garantiza unicidad; aquí se endurece re-tirando el
// sufijo si el recibo ya existe en el store.
func (uc *UseCase) newReceiptNumber(now time.Time) (string, error) {
	for i := 0; i < receiptAttempts; i++ {
		suffix, err := randBase36(4)
		if err != nil {
			return "", err
		}
		receipt := "REC-" + strconv.FormatInt(now.UnixMilli(), 36) + "-" + suffix
		if _, err := uc.repo.GetByReceiptNumber(receipt); errors.Is(err, domain.ErrNotFound) {
			return receipt, nil
		}
	}
	return "", fmt.Errorf("recibo: %w", domain.ErrDuplicate)
}

func randBase36(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("recibo: sufijo aleatorio: %w", err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(out), nil
}

// toResponse proyección tolerante: lote o cliente borrados se muestran como "-".
func (uc *UseCase) toResponse(p *entity.Payment) *dto.PaymentResponse {
	lotLabel := dto.Placeholder
	if lot, err := uc.lotRepo.GetByID(p.LotID); err == nil {
		lotLabel = lot.Label()
	}
	clientName := dto.Placeholder
	if client, err := uc.userRepo.GetByID(p.ClientID); err == nil {
		clientName = client.Name
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		LotID:         p.LotID,
		LotLabel:      lotLabel,
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
	}
}

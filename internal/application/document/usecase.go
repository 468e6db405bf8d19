// Package document orquesta la exportación de PDFs bajo demanda: estado de
// cuenta, recibo de pago y reporte ejecutivo. Los datos llegan ya computados
// por los casos de uso correspondientes; aquí solo se arma y delega el render.
package document

import (
	"context"

	"github.com/jcastellanos/terralote-api/internal/application/payment"
	"github.com/jcastellanos/terralote-api/internal/application/usecase"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
)

// UseCase exportación de documentos.
type UseCase struct {
	statementUC *usecase.StatementUseCase
	paymentUC   *payment.UseCase
	reportUC    *usecase.ReportUseCase
	generator   Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	statementUC *usecase.StatementUseCase,
	paymentUC *payment.UseCase,
	reportUC *usecase.ReportUseCase,
	generator Generator,
) *UseCase {
	return &UseCase{
		statementUC: statementUC,
		paymentUC:   paymentUC,
		reportUC:    reportUC,
		generator:   generator,
	}
}

// StatementPDF genera el estado de cuenta de un lote. El alcance por cliente
// lo aplica el caso de uso de estados de cuenta.
func (uc *UseCase) StatementPDF(ctx context.Context, principal authz.Principal, lotID string) ([]byte, error) {
	st, err := uc.statementUC.GetForLot(principal, lotID)
	if err != nil {
		return nil, err
	}
	return uc.generator.StatementPDF(ctx, st)
}

// ReceiptPDF genera el recibo de un pago.
func (uc *UseCase) ReceiptPDF(ctx context.Context, principal authz.Principal, paymentID string) ([]byte, error) {
	pay, err := uc.paymentUC.GetByID(principal, paymentID)
	if err != nil {
		return nil, err
	}
	return uc.generator.ReceiptPDF(ctx, pay)
}

// ExecutiveReportPDF genera el reporte ejecutivo. Requiere ViewReports además
// de DownloadPDF.
func (uc *UseCase) ExecutiveReportPDF(ctx context.Context, principal authz.Principal) ([]byte, error) {
	caps, err := authz.Capabilities(principal.Role)
	if err != nil {
		return nil, err
	}
	if !caps.ViewReports {
		return nil, domain.ErrForbidden
	}
	report, err := uc.reportUC.ExecutiveReport()
	if err != nil {
		return nil, err
	}
	return uc.generator.ExecutiveReportPDF(ctx, report)
}

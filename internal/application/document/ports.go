package document

import (
	"context"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
)

// Generator puerto de render de documentos. El núcleo solo entrega datos ya
// calculados; el layout es asunto del generador.
type Generator interface {
	StatementPDF(ctx context.Context, st *dto.StatementResponse) ([]byte, error)
	ReceiptPDF(ctx context.Context, p *dto.PaymentResponse) ([]byte, error)
	ExecutiveReportPDF(ctx context.Context, r *dto.ExecutiveReportResponse) ([]byte, error)
}

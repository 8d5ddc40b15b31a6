package billing

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

// PDFUseCase genera el recibo PDF de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	log          *logger.Logger
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	log *logger.Logger,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, generator: generator, log: log}
}

// GetReceipt devuelve los bytes del PDF de la factura id.
func (uc *PDFUseCase) GetReceipt(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("lectura de factura para PDF falló")
		return nil, domain.ErrDatabase
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", inv.CustomerID).Msg("lectura de cliente para PDF falló")
		return nil, domain.ErrDatabase
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceipt(ctx, inv, customer)
}

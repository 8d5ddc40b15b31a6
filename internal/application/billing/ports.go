package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// ListingPath es la vista cacheada que toda mutación debe invalidar.
const ListingPath = "/dashboard/invoices"

// ListingCache puerto del cache de vistas de listado. Las fallas del cache
// nunca deben tumbar una petición: el caller las degrada a warning.
type ListingCache interface {
	// Get devuelve el payload cacheado o (nil, nil) en miss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set guarda el payload bajo key con vigencia ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// InvalidatePrefix marca como obsoleta toda clave bajo el prefijo
	// (la página y cualquier subpágina del listado).
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// InvoicePDFGenerator puerto para la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateReceipt(ctx context.Context, inv *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada operación es una única sentencia SQL parametrizada; no hay
// transacciones multi-sentencia en este dominio.
type InvoiceRepository interface {
	// Create inserta (customer_id, amount, status, date) y deja en inv.ID
	// el identificador generado por el store.
	Create(ctx context.Context, inv *entity.Invoice) error
	// Update cambia customer_id, amount y status de la fila con inv.ID.
	// Nunca toca id ni date. Cero filas afectadas no es error.
	Update(ctx context.Context, inv *entity.Invoice) error
	// Delete elimina la fila con ese id. Borrar un id inexistente no es error.
	Delete(ctx context.Context, id string) error
	// GetByID devuelve la factura o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListFiltered devuelve la página de facturas con datos del cliente,
	// filtrada por texto libre y ordenada por fecha descendente.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error)
	// CountFiltered cuenta las facturas que matchean el mismo filtro.
	CountFiltered(ctx context.Context, query string) (int, error)
}

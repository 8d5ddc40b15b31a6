package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación pgx de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta la factura. El id lo genera el store (uuid default) y se
// deja en inv.ID.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inv.CustomerID, inv.Amount, inv.Status, inv.Date.Format("2006-01-02"),
	).Scan(&inv.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert invoice: cliente inexistente: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update cambia customer_id, amount y status de la fila con inv.ID.
// Cero filas afectadas (id inexistente) se trata como éxito.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`
	_, err := r.q.Exec(ctx, query, inv.CustomerID, inv.Amount, inv.Status, inv.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update invoice: cliente inexistente: %w", err)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina la fila con ese id. Cero filas afectadas también es éxito.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por id, o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListFiltered devuelve una página del listado con datos del cliente.
// El filtro de texto libre busca en nombre y email del cliente y en
// monto, fecha y estado de la factura, como la vista del dashboard.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date,
		       c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1
		   OR c.email ILIKE $1
		   OR i.amount::text ILIKE $1
		   OR i.date::text ILIKE $1
		   OR i.status ILIKE $1
		ORDER BY i.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, "%"+query+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// CountFiltered cuenta las facturas que matchean el mismo filtro del listado.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1
		   OR c.email ILIKE $1
		   OR i.amount::text ILIKE $1
		   OR i.date::text ILIKE $1
		   OR i.status ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, sql, "%"+query+"%").Scan(&total); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}

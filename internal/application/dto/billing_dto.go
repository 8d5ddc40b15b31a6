package dto

// InvoiceFormRequest envío del formulario de factura (crear y editar
// comparten forma). Los tres campos llegan como strings del form; la
// coerción y las reglas viven en internal/domain/invoice. Ni id ni date
// se aceptan del cliente.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// Raw devuelve el envío como mapa campo -> valor, la entrada del validador.
func (r InvoiceFormRequest) Raw() map[string]string {
	return map[string]string{
		"customerId": r.CustomerID,
		"amount":     r.Amount,
		"status":     r.Status,
	}
}

// MutationResponse resultado de una mutación exitosa. RedirectTo indica al
// cliente a qué vista navegar (vacío en delete: se queda en el listado).
type MutationResponse struct {
	InvoiceID  string `json:"invoice_id,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// InvoiceResponse factura individual para el formulario de edición.
// Amount va en unidades de moneda (centavos/100), como lo espera el form.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"` // decimal en moneda, ej. "12.34"
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// InvoiceListItem fila del listado /dashboard/invoices.
type InvoiceListItem struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ImageURL      string `json:"image_url,omitempty"`
	AmountCents   int64  `json:"amount_cents"`
	Status        string `json:"status"`
	Date          string `json:"date"` // YYYY-MM-DD
}

// InvoiceListResponse página del listado con el total de páginas para la
// paginación del dashboard.
type InvoiceListResponse struct {
	Invoices   []InvoiceListItem `json:"invoices"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// CustomerResponse cliente para el select del formulario.
type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

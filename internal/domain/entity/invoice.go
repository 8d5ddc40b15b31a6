package entity

import "time"

// Estados válidos de una factura.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// Invoice representa una factura del dashboard.
// Amount se guarda en centavos (entero): el valor del formulario multiplicado
// por 100. Date se fija una sola vez al crear y nunca se actualiza.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     string
	Date       time.Time
}

// InvoiceWithCustomer fila del listado: factura + datos del cliente (JOIN).
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// Package invoice contiene la validación pura del formulario de facturas:
// coerción string->número y reglas de rango/enum, sin I/O y sin pánico.
// Crear y editar comparten el mismo esquema; ni id ni date se aceptan del
// cliente (id viaja por la ruta y date se fija en el servidor al crear).
package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// Nombres de campo tal como llegan del formulario.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Form valores del formulario ya coercionados y validados, listos para persistir.
type Form struct {
	CustomerID string
	Amount     decimal.Decimal // valor en moneda, ej. 12.34
	Status     string
}

// AmountInCents devuelve el monto en centavos: Amount*100, exacto.
// La validación garantiza que el desplazamiento no deja fracción.
func (f *Form) AmountInCents() int64 {
	return f.Amount.Shift(2).IntPart()
}

// FieldErrors mensajes de validación por campo.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ValidationError reporte estructurado de validación: errores por campo más
// un mensaje general. Implementa error para el caso de uso; nunca muta nada.
type ValidationError struct {
	Fields  FieldErrors
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseForm valida un envío crudo (campo -> valor string) contra el esquema
// de factura. Devuelve el formulario coercionado o los errores por campo;
// jamás ambos.
func ParseForm(raw map[string]string) (*Form, FieldErrors) {
	fe := FieldErrors{}

	customerID := strings.TrimSpace(raw[FieldCustomerID])
	if customerID == "" {
		fe.add(FieldCustomerID, "seleccione un cliente")
	}

	var amount decimal.Decimal
	rawAmount := strings.TrimSpace(raw[FieldAmount])
	switch {
	case rawAmount == "":
		fe.add(FieldAmount, "ingrese un monto")
	default:
		d, err := decimal.NewFromString(rawAmount)
		switch {
		case err != nil:
			fe.add(FieldAmount, "el monto debe ser un número válido")
		case d.IsNegative():
			fe.add(FieldAmount, "el monto debe ser mayor o igual a 0")
		case !d.Shift(2).IsInteger():
			// Con más de dos decimales el paso a centavos dejaría fracción.
			fe.add(FieldAmount, "use máximo dos decimales")
		default:
			amount = d
		}
	}

	status := strings.TrimSpace(raw[FieldStatus])
	if status != entity.StatusPaid && status != entity.StatusPending {
		fe.add(FieldStatus, "estado inválido: use 'paid' o 'pending'")
	}

	if len(fe) > 0 {
		return nil, fe
	}
	return &Form{CustomerID: customerID, Amount: amount, Status: status}, nil
}

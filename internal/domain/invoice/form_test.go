package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/domain/invoice"
)

func validRaw() map[string]string {
	return map[string]string{
		"customerId": "c1",
		"amount":     "12.34",
		"status":     "pending",
	}
}

// Envío válido: coerción a decimal y paso exacto a centavos (12.34 -> 1234).
func TestParseForm_EnvioValido(t *testing.T) {
	form, fe := invoice.ParseForm(validRaw())
	require.Nil(t, fe)
	require.NotNil(t, form)

	assert.Equal(t, "c1", form.CustomerID)
	assert.Equal(t, "pending", form.Status)
	assert.Equal(t, int64(1234), form.AmountInCents(),
		"12.34 debe convertirse a 1234 centavos sin redondeo")
}

// Montos enteros y con un decimal también convierten exacto.
func TestParseForm_CentavosExactos(t *testing.T) {
	cases := []struct {
		amount string
		cents  int64
	}{
		{"50", 5000},
		{"0", 0},
		{"0.5", 50},
		{"999999.99", 99999999},
	}
	for _, tc := range cases {
		raw := validRaw()
		raw["amount"] = tc.amount
		form, fe := invoice.ParseForm(raw)
		require.Nil(t, fe, "amount=%s debe ser válido", tc.amount)
		assert.Equal(t, tc.cents, form.AmountInCents(), "amount=%s", tc.amount)
	}
}

// customerId vacío o solo espacios: error en ese campo.
func TestParseForm_ClienteRequerido(t *testing.T) {
	for _, v := range []string{"", "   "} {
		raw := validRaw()
		raw["customerId"] = v
		form, fe := invoice.ParseForm(raw)
		assert.Nil(t, form)
		require.NotNil(t, fe)
		assert.NotEmpty(t, fe["customerId"])
	}
}

// amount no numérico, negativo o con más de dos decimales: rechazado.
func TestParseForm_MontoInvalido(t *testing.T) {
	for _, v := range []string{"", "abc", "12,34", "-1", "-0.01", "1.999"} {
		raw := validRaw()
		raw["amount"] = v
		form, fe := invoice.ParseForm(raw)
		assert.Nil(t, form, "amount=%q debe rechazarse", v)
		require.NotNil(t, fe)
		assert.NotEmpty(t, fe["amount"], "amount=%q debe reportar error de campo", v)
	}
}

// status fuera del enum {paid, pending}: rechazado antes de cualquier otra cosa.
func TestParseForm_EstadoFueraDelEnum(t *testing.T) {
	for _, v := range []string{"", "PAID", "Pending", "cancelled", "draft"} {
		raw := validRaw()
		raw["status"] = v
		form, fe := invoice.ParseForm(raw)
		assert.Nil(t, form, "status=%q debe rechazarse", v)
		require.NotNil(t, fe)
		assert.NotEmpty(t, fe["status"])
	}
}

// Varios campos malos a la vez: el reporte acumula todos.
func TestParseForm_AcumulaErrores(t *testing.T) {
	form, fe := invoice.ParseForm(map[string]string{
		"customerId": "",
		"amount":     "no-es-numero",
		"status":     "otro",
	})
	assert.Nil(t, form)
	require.NotNil(t, fe)
	assert.Len(t, fe, 3)
}

// Campos ausentes del mapa se tratan igual que vacíos.
func TestParseForm_MapaVacio(t *testing.T) {
	form, fe := invoice.ParseForm(map[string]string{})
	assert.Nil(t, form)
	require.NotNil(t, fe)
	assert.NotEmpty(t, fe["customerId"])
	assert.NotEmpty(t, fe["amount"])
	assert.NotEmpty(t, fe["status"])
}

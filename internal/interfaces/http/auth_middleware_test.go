package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Facturas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Facturas-api/pkg/jwt"
)

// buildProtectedApp app mínima con una ruta detrás del AuthMiddleware que
// devuelve el user_id cargado en locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func requestWithAuth(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Token válido: pasa y los locals quedan cargados.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildProtectedApp()
	tok, err := pkgjwt.Generate(testJWTSecret, "u-42", "ana@example.com", "facturas-test", 60)
	require.NoError(t, err)

	resp := requestWithAuth(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "u-42")
}

// Sin header: 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := requestWithAuth(t, buildProtectedApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Formato distinto de "Bearer <token>": 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp := requestWithAuth(t, buildProtectedApp(), "Basic abc123")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret: 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", "u-1", "a@example.com", "facturas-test", 60)
	require.NoError(t, err)

	resp := requestWithAuth(t, buildProtectedApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token expirado: 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u-1", "a@example.com", "facturas-test", -5)
	require.NoError(t, err)

	resp := requestWithAuth(t, buildProtectedApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

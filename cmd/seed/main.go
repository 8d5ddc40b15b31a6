// seed puebla la base con datos de ejemplo para el dashboard: un usuario
// demo, clientes y facturas. Idempotente: usa ON CONFLICT DO NOTHING, se
// puede correr las veces que haga falta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturas-api/pkg/config"
)

type seedCustomer struct {
	id    string
	name  string
	email string
}

var customers = []seedCustomer{
	{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "Evil Rabbit", "evil@rabbit.com"},
	{"3958dc9e-712f-4377-85e9-fec4b6a6442a", "Delba de Oliveira", "delba@oliveira.com"},
	{"3958dc9e-742f-4377-85e9-fec4b6a6442a", "Lee Robinson", "lee@robinson.com"},
	{"76d65c26-f784-44a2-ac19-586678f7c2f2", "Michael Novotny", "michael@novotny.com"},
	{"cc27c14a-0acf-4f4a-a6c9-d45682c144b9", "Amy Burns", "amy@burns.com"},
	{"13d07535-c59e-4157-a011-f8d2ef4e0cbb", "Balazs Orban", "balazs@orban.com"},
}

// facturas de ejemplo: cliente, centavos, estado, fecha
var invoices = []struct {
	customer string
	cents    int64
	status   string
	date     string
}{
	{customers[0].id, 15795, "pending", "2025-12-06"},
	{customers[1].id, 20348, "pending", "2025-11-14"},
	{customers[4].id, 3040, "paid", "2025-10-29"},
	{customers[3].id, 44800, "paid", "2025-09-10"},
	{customers[5].id, 34577, "pending", "2025-08-05"},
	{customers[2].id, 54246, "pending", "2025-07-16"},
	{customers[0].id, 666, "pending", "2025-06-27"},
	{customers[3].id, 32545, "paid", "2025-06-09"},
	{customers[4].id, 1250, "paid", "2025-06-17"},
	{customers[5].id, 8546, "paid", "2025-06-07"},
	{customers[1].id, 500, "paid", "2025-08-19"},
	{customers[5].id, 8945, "paid", "2025-06-03"},
	{customers[2].id, 1000, "paid", "2025-06-05"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	// Usuario demo
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "Usuario Demo", "user@nextmail.com", string(hash),
	)
	if err != nil {
		fail("seed users", err)
	}

	for _, c := range customers {
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, '')
			ON CONFLICT (id) DO NOTHING`,
			c.id, c.name, c.email,
		)
		if err != nil {
			fail("seed customers", err)
		}
	}

	for _, inv := range invoices {
		_, err := pool.Exec(ctx, `
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)`,
			inv.customer, inv.cents, inv.status, inv.date,
		)
		if err != nil {
			fail("seed invoices", err)
		}
	}

	fmt.Printf("seed listo: %d clientes, %d facturas, 1 usuario\n", len(customers), len(invoices))
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}

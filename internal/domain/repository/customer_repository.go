package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// CustomerRepository puerto de solo lectura para Customer.
// La integridad referencial de customer_id la hace cumplir el store (FK);
// este servicio no valida existencia de clientes.
type CustomerRepository interface {
	// List devuelve todos los clientes ordenados por nombre (para el select
	// del formulario de facturas).
	List(ctx context.Context) ([]*entity.Customer, error)
	// GetByID devuelve el cliente o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (auth).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve el usuario o (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
)

var _ billing.ListingCache = (*Noop)(nil)

// Noop cache nulo para cuando Redis no está configurado: todo es miss y la
// invalidación no hace nada. El listado siempre consulta el store.
type Noop struct{}

// NewNoop construye el cache nulo.
func NewNoop() *Noop { return &Noop{} }

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) InvalidatePrefix(context.Context, string) error { return nil }

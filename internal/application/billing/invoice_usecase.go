package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/invoice"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

// itemsPerPage tamaño de página del listado del dashboard.
const itemsPerPage = 6

// MutationResult resultado explícito de una mutación exitosa. RedirectTo
// señala al caller la transición de vista; no es un error ni un salto no
// local. Delete no navega y por eso no devuelve este resultado.
type MutationResult struct {
	InvoiceID  string
	RedirectTo string
}

// InvoiceUseCase casos de uso de facturas: crear, editar, eliminar y leer.
// Cada operación es un request handler sin estado: valida, ejecuta una única
// sentencia contra el store inyectado e invalida el cache del listado.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	cache ListingCache
	ttl   time.Duration
	log   *logger.Logger
	now   func() time.Time // inyectable en tests para fijar la fecha de emisión
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, cache ListingCache, ttl time.Duration, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, cache: cache, ttl: ttl, log: log, now: time.Now}
}

// Create valida el envío y persiste una factura nueva.
//
// Con errores de validación devuelve *invoice.ValidationError sin tocar el
// store. Con éxito: amount pasa a centavos (x100), date se fija a la fecha
// actual YYYY-MM-DD, se ejecuta un único INSERT, se invalida el listado
// cacheado y el resultado manda navegar a /dashboard/invoices.
func (uc *InvoiceUseCase) Create(ctx context.Context, raw map[string]string) (*MutationResult, error) {
	form, fe := invoice.ParseForm(raw)
	if fe != nil {
		return nil, &invoice.ValidationError{Fields: fe, Message: "campos inválidos: no se creó la factura"}
	}

	inv := &entity.Invoice{
		CustomerID: form.CustomerID,
		Amount:     form.AmountInCents(),
		Status:     form.Status,
		Date:       uc.now(),
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		uc.log.Error().Err(err).
			Str("customer_id", form.CustomerID).
			Msg("insert de factura falló")
		return nil, domain.ErrDatabase
	}

	uc.invalidateListing(ctx)
	return &MutationResult{InvoiceID: inv.ID, RedirectTo: ListingPath}, nil
}

// Update valida el envío y actualiza customer_id, amount y status de la
// factura id. No re-verifica existencia: actualizar un id ausente afecta
// cero filas y cuenta como éxito. id y date nunca cambian.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, raw map[string]string) (*MutationResult, error) {
	form, fe := invoice.ParseForm(raw)
	if fe != nil {
		return nil, &invoice.ValidationError{Fields: fe, Message: "campos inválidos: no se actualizó la factura"}
	}

	inv := &entity.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     form.AmountInCents(),
		Status:     form.Status,
	}
	if err := uc.repo.Update(ctx, inv); err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", id).
			Msg("update de factura falló")
		return nil, domain.ErrDatabase
	}

	uc.invalidateListing(ctx)
	return &MutationResult{InvoiceID: id, RedirectTo: ListingPath}, nil
}

// Delete elimina la factura id e invalida el listado. Borrar un id
// inexistente es un no-op exitoso. No navega: se invoca desde el propio
// listado.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", id).
			Msg("delete de factura falló")
		return domain.ErrDatabase
	}
	uc.invalidateListing(ctx)
	return nil
}

// GetByID devuelve la factura para el formulario de edición, con el monto
// de vuelta en unidades de moneda (centavos/100).
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("lectura de factura falló")
		return nil, domain.ErrDatabase
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     decimal.NewFromInt(inv.Amount).Shift(-2).String(),
		Status:     inv.Status,
		Date:       inv.Date.Format("2006-01-02"),
	}, nil
}

// List devuelve una página del listado filtrado, servida desde el cache si
// hay una copia vigente. En miss consulta el store y cachea el resultado;
// toda mutación invalida estas claves, así que la siguiente lectura refleja
// el cambio.
func (uc *InvoiceUseCase) List(ctx context.Context, query string, page int) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	key := listingKey(query, page)

	if payload, err := uc.cache.Get(ctx, key); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("lectura de cache falló; se consulta el store")
	} else if payload != nil {
		var cached dto.InvoiceListResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		// payload corrupto: se ignora y se recalcula
	}

	offset := (page - 1) * itemsPerPage
	rows, err := uc.repo.ListFiltered(ctx, query, itemsPerPage, offset)
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Msg("listado de facturas falló")
		return nil, domain.ErrDatabase
	}
	total, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).Str("query", query).Msg("conteo de facturas falló")
		return nil, domain.ErrDatabase
	}

	resp := &dto.InvoiceListResponse{
		Invoices:   make([]dto.InvoiceListItem, 0, len(rows)),
		Page:       page,
		TotalPages: (total + itemsPerPage - 1) / itemsPerPage,
	}
	for _, r := range rows {
		resp.Invoices = append(resp.Invoices, dto.InvoiceListItem{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
			AmountCents:   r.Amount,
			Status:        r.Status,
			Date:          r.Date.Format("2006-01-02"),
		})
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("escritura de cache falló")
		}
	}
	return resp, nil
}

// invalidateListing marca como obsoleto todo el listado cacheado. Es un
// efecto post-commit independiente de la navegación: si falla se degrada a
// warning y la petición sigue siendo exitosa.
func (uc *InvoiceUseCase) invalidateListing(ctx context.Context) {
	if err := uc.cache.InvalidatePrefix(ctx, listingPrefix()); err != nil {
		uc.log.Warn().Err(err).Msg("invalidación del listado falló")
	}
}

// listingPrefix prefijo de todas las claves del listado cacheado.
func listingPrefix() string {
	return "page:" + ListingPath
}

// listingKey clave de una página concreta del listado.
func listingKey(query string, page int) string {
	return fmt.Sprintf("%s?query=%s&page=%d", listingPrefix(), query, page)
}

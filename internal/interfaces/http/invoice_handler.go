package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/invoice"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
// Los dos niveles de error del dominio se mapean así: errores de validación
// vuelven al cliente como 400 con mensajes por campo para re-renderizar el
// formulario; fallos de persistencia como 500 con el código opaco
// DATABASE_ERROR, sin detalle.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create crea una factura desde el envío del formulario.
// POST /api/invoices
// Éxito: 303 con Location al listado (el form debe navegar allá).
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Create(c.Context(), in.Raw())
	if err != nil {
		return mutationError(c, err)
	}
	c.Set(fiber.HeaderLocation, res.RedirectTo)
	return c.Status(fiber.StatusSeeOther).JSON(dto.MutationResponse{
		InvoiceID:  res.InvoiceID,
		RedirectTo: res.RedirectTo,
	})
}

// Update edita una factura existente. El id viaja solo por la ruta.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Update(c.Context(), id, in.Raw())
	if err != nil {
		return mutationError(c, err)
	}
	c.Set(fiber.HeaderLocation, res.RedirectTo)
	return c.Status(fiber.StatusSeeOther).JSON(dto.MutationResponse{
		InvoiceID:  res.InvoiceID,
		RedirectTo: res.RedirectTo,
	})
}

// Delete elimina una factura. No navega: se invoca desde el propio listado.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve una página del listado filtrado.
// GET /api/invoices?query=acme&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	resp, err := h.uc.List(c.Context(), query, page)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(resp)
}

// GetByID devuelve una factura para el formulario de edición.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	resp, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return mutationError(c, err)
	}
	return c.JSON(resp)
}

// GetPDF devuelve el recibo PDF de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.pdfUC.GetReceipt(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return mutationError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+id+`.pdf"`)
	return c.Send(data)
}

// mutationError mapea los dos niveles de error a HTTP.
func mutationError(c *fiber.Ctx, err error) error {
	var verr *invoice.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Message,
			Errors:  verr.Fields,
		})
	}
	if errors.Is(err, domain.ErrDatabase) {
		// Opaco: el detalle ya quedó en el log del servidor.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE_ERROR", Message: "error de base de datos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

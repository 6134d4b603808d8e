package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sav_interventions/internal/adapter/http/dto/request"
	response "sav_interventions/internal/adapter/http/dto/response"
	"sav_interventions/internal/usecase"
	"sav_interventions/internal/usecase/interfaces"
	"sav_interventions/pkg"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for invoice computation, generation
// and payment.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// CalculateInvoice is a dry run: it returns the computed amounts without
// mutating the intervention. Under-warranty interventions get a zero-amount
// result, not an error.
func (h *BillingHandler) CalculateInvoice(c *gin.Context) {
	id := c.Param("id")
	payload, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	inv, err := h.usecase.CalculateInvoice(c.Request.Context(), id, payload.HoursWorked, payload.ToParts())
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GenerateInvoice recomputes and persists the invoice onto the intervention.
// Calling it twice overwrites, never accumulates.
func (h *BillingHandler) GenerateInvoice(c *gin.Context) {
	id := c.Param("id")
	payload, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	inv, err := h.usecase.GenerateInvoice(c.Request.Context(), id, payload.HoursWorked, payload.ToParts())
	if err != nil {
		log.Printf("[billing][handler] generate failed intervention_id=%s err=%v", id, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[billing][handler] generate success intervention_id=%s total_ttc=%.2f", id, inv.TotalTTC)
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// PayInvoice marks a generated invoice as paid, optionally capturing the
// amount through the configured payment provider first.
func (h *BillingHandler) PayInvoice(c *gin.Context) {
	id := c.Param("id")

	var payload request.PayInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	i, err := h.usecase.MarkPaid(c.Request.Context(), id, payload.PaymentPayload)
	if err != nil {
		log.Printf("[billing][handler] pay failed intervention_id=%s err=%v", id, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[billing][handler] pay success numero=%s", i.Numero)
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

// CheckBilling reports whether the intervention still needs an invoice,
// without computing or persisting one.
func (h *BillingHandler) CheckBilling(c *gin.Context) {
	check, err := h.usecase.BillingCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingCheck(check))
}

func (h *BillingHandler) bindInvoiceRequest(c *gin.Context) (request.InvoiceRequest, bool) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return request.InvoiceRequest{}, false
	}
	return payload, true
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntervention),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrInvalidPart):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnderWarranty):
		return pkg.NewDomainErrorSimple("UNDER_WARRANTY", "No invoice for under-warranty interventions", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoInvoice):
		return pkg.NewDomainErrorSimple("NO_INVOICE", "No invoice exists for this intervention", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotCompleted):
		return pkg.NewDomainErrorSimple("NOT_COMPLETED", "Intervention must be completed before billing", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Intervention was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrInterventionNotFound):
		return pkg.NewDomainErrorSimple("INTERVENTION_NOT_FOUND", "Intervention not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

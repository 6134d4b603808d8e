package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase/interfaces"
)

var (
	ErrNotCompleted  = errors.New("intervention must be completed before billing")
	ErrUnderWarranty = errors.New("no invoice for under-warranty interventions")
	ErrNoInvoice     = errors.New("no invoice exists for this intervention")
	ErrInvalidHours  = errors.New("hours worked must be positive")
	ErrInvalidPart   = errors.New("part quantity and unit price must be non-negative")
)

// VATRate is the fixed VAT applied on the pre-tax subtotal.
const VATRate = 0.20

// IBillingUseCase encapsulates invoice computation, persistence and payment.
//
// CalculateInvoice is a dry run: it never mutates the intervention.
// GenerateInvoice recomputes and overwrites the persisted billing fields, so
// calling it twice with different inputs fully replaces the first result.

type IBillingUseCase interface {
	CalculateInvoice(ctx context.Context, interventionID string, hoursWorked float64, parts []entities.PartLine) (entities.Invoice, error)
	GenerateInvoice(ctx context.Context, interventionID string, hoursWorked float64, parts []entities.PartLine) (entities.Invoice, error)
	MarkPaid(ctx context.Context, interventionID string, paymentPayload json.RawMessage) (entities.Intervention, error)
	BillingCheck(ctx context.Context, interventionID string) (entities.BillingCheck, error)
}

type BillingUseCase struct {
	repo    interfaces.IInterventionRepository
	roster  interfaces.ITechnicianRoster
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(repo interfaces.IInterventionRepository, roster interfaces.ITechnicianRoster, gateway interfaces.IPaymentGateway) *BillingUseCase {
	return &BillingUseCase{repo: repo, roster: roster, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *BillingUseCase) CalculateInvoice(ctx context.Context, interventionID string, hoursWorked float64, parts []entities.PartLine) (entities.Invoice, error) {
	i, err := u.loadCompleted(ctx, interventionID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.compute(i, hoursWorked, parts)
}

func (u *BillingUseCase) GenerateInvoice(ctx context.Context, interventionID string, hoursWorked float64, parts []entities.PartLine) (entities.Invoice, error) {
	i, err := u.loadCompleted(ctx, interventionID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if i.UnderWarranty {
		return entities.Invoice{}, ErrUnderWarranty
	}

	inv, err := u.compute(i, hoursWorked, parts)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := u.now()
	observedUpdatedAt := i.UpdatedAt
	i.LaborCost = &inv.LaborCost
	i.PartsCost = &inv.PartsCost
	i.InvoiceAmount = &inv.TotalTTC
	i.InvoicedAt = &now
	i.InvoicePaid = false
	i.UpdatedAt = now

	updated, err := u.repo.Update(ctx, i, observedUpdatedAt)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInterventionNotFound
	}
	log.Printf("[billing][usecase] invoice generated numero=%s total_ttc=%.2f", updated.Numero, inv.TotalTTC)

	inv.InvoicedAt = updated.InvoicedAt
	inv.Paid = false
	return inv, nil
}

func (u *BillingUseCase) MarkPaid(ctx context.Context, interventionID string, paymentPayload json.RawMessage) (entities.Intervention, error) {
	i, err := u.load(ctx, interventionID)
	if err != nil {
		return entities.Intervention{}, err
	}
	if i.InvoiceAmount == nil {
		return entities.Intervention{}, ErrNoInvoice
	}
	if i.InvoicePaid {
		// Idempotent: marking an already-paid invoice paid again is a no-op success.
		log.Printf("[billing][usecase] mark-paid no-op numero=%s (already paid)", i.Numero)
		return i, nil
	}

	if u.gateway != nil {
		if len(paymentPayload) > 0 && !json.Valid(paymentPayload) {
			return entities.Intervention{}, errors.New("payment payload is not valid json")
		}
		capture := interfaces.InvoiceCapture{
			InterventionID: i.ID,
			Numero:         i.Numero,
			Amount:         *i.InvoiceAmount,
			ProviderFields: paymentPayload,
		}
		result, err := u.gateway.CaptureInvoicePayment(ctx, capture)
		if err != nil {
			log.Printf("[billing][usecase] payment gateway failed numero=%s err=%v", i.Numero, err)
			return entities.Intervention{}, err
		}
		log.Printf("[billing][usecase] payment captured numero=%s provider_payment_id=%s provider_status=%s",
			i.Numero, result.ProviderPaymentID, result.ProviderStatus)
	}

	observedUpdatedAt := i.UpdatedAt
	i.InvoicePaid = true
	i.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, i, observedUpdatedAt)
	if err != nil {
		return entities.Intervention{}, err
	}
	if updated.ID == "" {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	log.Printf("[billing][usecase] invoice marked paid numero=%s amount=%.2f", updated.Numero, *updated.InvoiceAmount)
	return updated, nil
}

// BillingCheck reports whether an intervention still needs an invoice. A
// read-only convenience for callers deciding whether to bill: an invoice is
// needed once the intervention is completed, out of warranty and not yet
// invoiced.
func (u *BillingUseCase) BillingCheck(ctx context.Context, interventionID string) (entities.BillingCheck, error) {
	i, err := u.load(ctx, interventionID)
	if err != nil {
		return entities.BillingCheck{}, err
	}
	return entities.BillingCheck{
		InterventionID: i.ID,
		Numero:         i.Numero,
		Status:         i.Status,
		UnderWarranty:  i.UnderWarranty,
		NeedsInvoice:   i.Status == entities.InterventionStatusCompleted && !i.UnderWarranty && i.InvoiceAmount == nil,
		InvoiceAmount:  i.InvoiceAmount,
		InvoicedAt:     i.InvoicedAt,
		InvoicePaid:    i.InvoicePaid,
	}, nil
}

// compute builds the invoice without touching storage.
func (u *BillingUseCase) compute(i entities.Intervention, hoursWorked float64, parts []entities.PartLine) (entities.Invoice, error) {
	if i.UnderWarranty {
		return entities.Invoice{
			InterventionID: i.ID,
			Numero:         i.Numero,
			UnderWarranty:  true,
			Message:        "intervention is under warranty, no billing required",
		}, nil
	}

	if hoursWorked <= 0 {
		return entities.Invoice{}, ErrInvalidHours
	}
	for _, p := range parts {
		if p.Quantity < 0 || p.UnitPrice < 0 {
			return entities.Invoice{}, ErrInvalidPart
		}
	}

	// Default rate covers technicians removed from the roster after the
	// intervention was scheduled; the intervention itself stays billable.
	rate, found := u.roster.LookupRate(i.TechnicianName)
	if !found {
		rate = u.roster.DefaultRate()
	}

	laborCost := rate * hoursWorked
	partsCost := 0.0
	for _, p := range parts {
		partsCost += float64(p.Quantity) * p.UnitPrice
	}

	// Per-line values are summed unrounded; only aggregates carry the
	// 2-decimal rounding.
	laborCost = round2(laborCost)
	partsCost = round2(partsCost)
	subtotal := round2(laborCost + partsCost)
	vat := round2(subtotal * VATRate)
	total := round2(subtotal + vat)

	return entities.Invoice{
		InterventionID: i.ID,
		Numero:         i.Numero,
		TechnicianName: i.TechnicianName,
		UnderWarranty:  false,
		HoursWorked:    hoursWorked,
		HourlyRate:     rate,
		LaborCost:      laborCost,
		PartsCost:      partsCost,
		SubtotalHT:     subtotal,
		VAT:            vat,
		TotalTTC:       total,
		Message:        "invoice computed",
	}, nil
}

func (u *BillingUseCase) loadCompleted(ctx context.Context, interventionID string) (entities.Intervention, error) {
	i, err := u.load(ctx, interventionID)
	if err != nil {
		return entities.Intervention{}, err
	}
	if i.Status != entities.InterventionStatusCompleted {
		return entities.Intervention{}, ErrNotCompleted
	}
	return i, nil
}

func (u *BillingUseCase) load(ctx context.Context, interventionID string) (entities.Intervention, error) {
	interventionID = strings.TrimSpace(interventionID)
	if interventionID == "" {
		return entities.Intervention{}, ErrInvalidIntervention
	}
	i, err := u.repo.GetByID(ctx, interventionID)
	if err != nil {
		return entities.Intervention{}, err
	}
	if i.ID == "" {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	return i, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

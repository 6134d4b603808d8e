package response

import (
	"time"

	"sav_interventions/internal/domain/entities"
)

type InvoiceResponse struct {
	InterventionID string     `json:"intervention_id"`
	Numero         string     `json:"numero"`
	TechnicianName string     `json:"technician_name,omitempty"`
	UnderWarranty  bool       `json:"under_warranty"`
	HoursWorked    float64    `json:"hours_worked"`
	HourlyRate     float64    `json:"hourly_rate"`
	LaborCost      float64    `json:"labor_cost"`
	PartsCost      float64    `json:"parts_cost"`
	SubtotalHT     float64    `json:"subtotal_ht"`
	VAT            float64    `json:"vat"`
	TotalTTC       float64    `json:"total_ttc"`
	InvoicedAt     *time.Time `json:"invoiced_at,omitempty"`
	Paid           bool       `json:"paid"`
	Message        string     `json:"message,omitempty"`
}

type BillingCheckResponse struct {
	InterventionID string     `json:"intervention_id"`
	Numero         string     `json:"numero"`
	Status         string     `json:"status"`
	UnderWarranty  bool       `json:"under_warranty"`
	NeedsInvoice   bool       `json:"needs_invoice"`
	InvoiceAmount  *float64   `json:"invoice_amount,omitempty"`
	InvoicedAt     *time.Time `json:"invoiced_at,omitempty"`
	InvoicePaid    bool       `json:"invoice_paid"`
}

func FromBillingCheck(b entities.BillingCheck) BillingCheckResponse {
	return BillingCheckResponse{
		InterventionID: b.InterventionID,
		Numero:         b.Numero,
		Status:         string(b.Status),
		UnderWarranty:  b.UnderWarranty,
		NeedsInvoice:   b.NeedsInvoice,
		InvoiceAmount:  b.InvoiceAmount,
		InvoicedAt:     b.InvoicedAt,
		InvoicePaid:    b.InvoicePaid,
	}
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InterventionID: inv.InterventionID,
		Numero:         inv.Numero,
		TechnicianName: inv.TechnicianName,
		UnderWarranty:  inv.UnderWarranty,
		HoursWorked:    inv.HoursWorked,
		HourlyRate:     inv.HourlyRate,
		LaborCost:      inv.LaborCost,
		PartsCost:      inv.PartsCost,
		SubtotalHT:     inv.SubtotalHT,
		VAT:            inv.VAT,
		TotalTTC:       inv.TotalTTC,
		InvoicedAt:     inv.InvoicedAt,
		Paid:           inv.Paid,
		Message:        inv.Message,
	}
}

package entities

import "time"

// PartLine is one spare part charged on an invoice.
type PartLine struct {
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Invoice is the computed billing result for a completed intervention.
//
// Monetary representation:
//   - Amounts are VAT-exclusive (HT) except TotalTTC.
//   - Per-line values are summed unrounded; only the aggregates carry the
//     2-decimal rounding.
//
// An under-warranty intervention yields a zero-amount invoice with
// UnderWarranty=true: a valid outcome, not an error.

// BillingCheck answers "does this intervention still need an invoice?"
// without computing one. Derived from stored state only.
type BillingCheck struct {
	InterventionID string             `json:"intervention_id"`
	Numero         string             `json:"numero"`
	Status         InterventionStatus `json:"status"`
	UnderWarranty  bool               `json:"under_warranty"`
	NeedsInvoice   bool               `json:"needs_invoice"`
	InvoiceAmount  *float64           `json:"invoice_amount,omitempty"`
	InvoicedAt     *time.Time         `json:"invoiced_at,omitempty"`
	InvoicePaid    bool               `json:"invoice_paid"`
}

type Invoice struct {
	InterventionID string     `json:"intervention_id"`
	Numero         string     `json:"numero"`
	TechnicianName string     `json:"technician_name,omitempty"`
	UnderWarranty  bool       `json:"under_warranty"`
	HoursWorked    float64    `json:"hours_worked,omitempty"`
	HourlyRate     float64    `json:"hourly_rate,omitempty"`
	LaborCost      float64    `json:"labor_cost"`
	PartsCost      float64    `json:"parts_cost"`
	SubtotalHT     float64    `json:"subtotal_ht"`
	VAT            float64    `json:"vat"`
	TotalTTC       float64    `json:"total_ttc"`
	InvoicedAt     *time.Time `json:"invoiced_at,omitempty"`
	Paid           bool       `json:"paid"`
	Message        string     `json:"message,omitempty"`
}

package request

import (
	"encoding/json"

	"sav_interventions/internal/domain/entities"
)

type PartLineRequest struct {
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

// InvoiceRequest is the billing payload shared by the calculate and generate
// endpoints: hours worked plus the spare parts charged.
type InvoiceRequest struct {
	HoursWorked float64           `json:"hours_worked"`
	Parts       []PartLineRequest `json:"parts"`
}

func (r InvoiceRequest) ToParts() []entities.PartLine {
	parts := make([]entities.PartLine, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.PartLine{
			Reference:   p.Reference,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
		})
	}
	return parts
}

// PayInvoiceRequest optionally wraps a provider payload (e.g. Mercado Pago
// payment_method_id / payer) forwarded to the gateway on capture.
type PayInvoiceRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload,omitempty"`
}

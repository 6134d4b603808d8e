package interfaces

import (
	"context"
	"encoding/json"
)

// InvoiceCapture is the provider-agnostic capture order for one invoice. The
// stored invoice amount is the source of truth; ProviderFields carries
// optional provider-specific extras from the caller (payment method, payer).
type InvoiceCapture struct {
	InterventionID string
	Numero         string
	Amount         float64
	ProviderFields json.RawMessage
}

// CaptureResult identifies the provider-side payment and keeps the raw
// provider response for traceability.
type CaptureResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CaptureInvoicePayment(ctx context.Context, capture InvoiceCapture) (CaptureResult, error)
}

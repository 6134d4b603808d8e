package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"sav_interventions/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderFields = errors.New("provider fields are not valid json")

// MercadoPagoGateway captures invoice payments through Mercado Pago. With
// PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK) enabled it approves captures
// locally without calling the provider.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CaptureInvoicePayment charges one invoice. The payment request is assembled
// here from the capture order: the stored amount and the intervention linkage
// always win over anything in ProviderFields.
func (g *MercadoPagoGateway) CaptureInvoicePayment(ctx context.Context, capture interfaces.InvoiceCapture) (interfaces.CaptureResult, error) {
	if g != nil && g.mockMode {
		return g.mockCapture(capture)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CaptureResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] capture start numero=%s amount=%.2f", capture.Numero, capture.Amount)

	req, err := buildPaymentRequest(capture)
	if err != nil {
		log.Printf("[payment][gateway] capture request build failed numero=%s err=%v", capture.Numero, err)
		return interfaces.CaptureResult{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed numero=%s err=%v", capture.Numero, err)
		return interfaces.CaptureResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.CaptureResult{}, err
	}
	log.Printf("[payment][gateway] capture success numero=%s provider_payment_id=%d provider_status=%s",
		capture.Numero, resp.ID, resp.Status)

	return interfaces.CaptureResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		ProviderResponse:  b,
	}, nil
}

// buildPaymentRequest maps a capture order onto the provider request.
// ProviderFields seeds the request (payment method, payer, token), then the
// invoice identity fields are overwritten from the capture.
func buildPaymentRequest(capture interfaces.InvoiceCapture) (payment.Request, error) {
	var req payment.Request
	if len(capture.ProviderFields) > 0 {
		if !json.Valid(capture.ProviderFields) {
			return payment.Request{}, ErrInvalidProviderFields
		}
		if err := json.Unmarshal(capture.ProviderFields, &req); err != nil {
			return payment.Request{}, err
		}
	}
	req.TransactionAmount = capture.Amount
	req.ExternalReference = capture.InterventionID
	req.Description = invoiceDescription(capture.Numero)
	return req, nil
}

func (g *MercadoPagoGateway) mockCapture(capture interfaces.InvoiceCapture) (interfaces.CaptureResult, error) {
	log.Printf("[payment][gateway] mock capture start numero=%s amount=%.2f", capture.Numero, capture.Amount)

	resp := map[string]any{}
	if len(capture.ProviderFields) > 0 && json.Valid(capture.ProviderFields) {
		if err := json.Unmarshal(capture.ProviderFields, &resp); err != nil {
			resp = map[string]any{"provider_fields_raw": string(capture.ProviderFields)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["transaction_amount"] = capture.Amount
	resp["external_reference"] = capture.InterventionID
	resp["description"] = invoiceDescription(capture.Numero)
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.CaptureResult{}, err
	}

	log.Printf("[payment][gateway] mock capture success numero=%s provider_payment_id=%s provider_status=approved", capture.Numero, id)
	return interfaces.CaptureResult{ProviderPaymentID: id, ProviderStatus: "approved", ProviderResponse: b}, nil
}

func invoiceDescription(numero string) string {
	return fmt.Sprintf("Intervention %s", numero)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

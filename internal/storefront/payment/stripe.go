package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

var _ Gateway = (*StripeGateway)(nil)

const stripeBaseURL = "https://api.stripe.com"

// StripeGateway talks to the Stripe REST API directly. Payment intents are
// a single form-encoded POST, so a dedicated SDK is not worth the weight.
type StripeGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewStripeGateway builds a gateway authenticated with the given secret
// key. Outgoing requests are traced via the otelhttp transport.
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		secretKey: secretKey,
		baseURL:   stripeBaseURL,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

// NewStripeGatewayForTest points the client at a test server instead of
// the real API.
func NewStripeGatewayForTest(secretKey, baseURL string) *StripeGateway {
	g := NewStripeGateway(secretKey)
	g.baseURL = baseURL
	return g
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Intent{}, &domain.GatewayError{Reason: "build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return Intent{}, &domain.GatewayError{Reason: "create payment intent", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Intent{}, &domain.GatewayError{Reason: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Intent{}, &domain.GatewayError{Reason: stripeErrorMessage(body, resp.StatusCode)}
	}

	var out struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return Intent{}, &domain.GatewayError{Reason: "decode response", Err: err}
	}
	if out.ClientSecret == "" {
		return Intent{}, &domain.GatewayError{Reason: "response missing client_secret"}
	}

	return Intent{ID: out.ID, ClientSecret: out.ClientSecret}, nil
}

// stripeErrorMessage pulls the human-readable message out of a Stripe error
// body, falling back to the HTTP status.
func stripeErrorMessage(body []byte, status int) string {
	var out struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err == nil && out.Error.Message != "" {
		return out.Error.Message
	}
	return fmt.Sprintf("request rejected with status %d", status)
}

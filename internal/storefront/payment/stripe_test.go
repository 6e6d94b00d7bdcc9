package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

func TestStripeCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "28500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "ord-1", r.PostForm.Get("metadata[orderId]"))

		fmt.Fprint(w, `{"id":"pi_123","client_secret":"pi_123_secret_xyz"}`)
	}))
	defer srv.Close()

	g := NewStripeGatewayForTest("sk_test_abc", srv.URL)
	intent, err := g.CreateIntent(context.Background(), 28500, map[string]string{"orderId": "ord-1"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_xyz", intent.ClientSecret)
}

func TestStripeCreateIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"message":"Your card was declined."}}`)
	}))
	defer srv.Close()

	g := NewStripeGatewayForTest("sk_test_abc", srv.URL)
	_, err := g.CreateIntent(context.Background(), 100, nil)

	var gw *domain.GatewayError
	require.True(t, errors.As(err, &gw))
	assert.Contains(t, gw.Reason, "Your card was declined.")
}

func TestStripeCreateIntentMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id":"pi_123"}`)
	}))
	defer srv.Close()

	g := NewStripeGatewayForTest("sk_test_abc", srv.URL)
	_, err := g.CreateIntent(context.Background(), 100, nil)

	var gw *domain.GatewayError
	require.True(t, errors.As(err, &gw))
	assert.Contains(t, gw.Reason, "client_secret")
}

func TestStripeCreateIntentConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	g := NewStripeGatewayForTest("sk_test_abc", srv.URL)
	_, err := g.CreateIntent(context.Background(), 100, nil)

	var gw *domain.GatewayError
	require.True(t, errors.As(err, &gw))
}

package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type fakeGateway struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price   float64
		want    int64
		wantErr bool
	}{
		{price: 45, want: 4500},
		{price: 19.99, want: 1999},
		{price: 0.29, want: 29},
		{price: 0},
		{price: -5, wantErr: true},
		{price: 0.001, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ToMinorUnits(tt.price)
		if tt.wantErr || tt.want == 0 {
			assert.ErrorIs(t, err, ErrInvalidAmount, "price %v", tt.price)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "price %v", tt.price)
	}
}

func TestCreateIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, zap.NewNop())

	secret, err := svc.CreateIntent(context.Background(), 45)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", secret)
	assert.Equal(t, int64(4500), gw.amount)
	assert.Equal(t, "usd", gw.currency)
}

func TestCreateIntent_GatewayError(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{err: errors.New("card network down")}, zap.NewNop())

	_, err := svc.CreateIntent(context.Background(), 45)
	assert.Error(t, err)
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":4500,"currency":"usd","client_secret":"pi_1_secret_abc"}`))
	}))
	defer srv.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	gw := NewStripeGateway("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	secret, err := gw.CreatePaymentIntent(context.Background(), 4500, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", secret)
	assert.Equal(t, "4500", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
}

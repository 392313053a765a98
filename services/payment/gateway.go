package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway creates payment intents with an external payment provider.
type Gateway interface {
	// CreatePaymentIntent returns the client secret of a new intent for amount
	// minor currency units.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeGateway implements Gateway with the Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe-backed gateway. A nil backends value
// uses Stripe's default endpoints.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// Package paysvc implements core.PaymentGateway against the Stripe API.
package paysvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/pichalabs/picha/core"
)

type stripeGateway struct {
	api *client.API
}

var _ core.PaymentGateway = (*stripeGateway)(nil)

func NewStripeGateway(conf *core.Config) core.PaymentGateway {
	api := new(client.API)
	api.Init(conf.StripeSecretKey, nil)
	return &stripeGateway{api: api}
}

func (gw *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.New().String())

	intent, err := gw.api.PaymentIntents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "stripe.PaymentIntents.New")
	}
	return intent.ClientSecret, nil
}

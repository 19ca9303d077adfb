package core

import "context"

// PaymentGateway is any remote payment processor that can authorize a charge.
type PaymentGateway interface {
	// CreateIntent requests a payment authorization for `amount` expressed in
	// the minor unit of `currency` (e.g. cents) and returns the client secret
	// needed to complete the charge client-side.
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

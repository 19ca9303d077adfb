package paysvc

import (
	"context"
	"fmt"

	"github.com/pichalabs/picha/core"
)

// DummyGateway fakes the payment processor for tests and local development.
type DummyGateway struct {
	Err   error // returned by CreateIntent when set
	Calls []int64
}

var _ core.PaymentGateway = (*DummyGateway)(nil)

func NewDummyGateway() *DummyGateway {
	return &DummyGateway{}
}

func (gw *DummyGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	if gw.Err != nil {
		return "", gw.Err
	}
	gw.Calls = append(gw.Calls, amount)
	return fmt.Sprintf("pi_dummy_%s_%d_secret", currency, amount), nil
}

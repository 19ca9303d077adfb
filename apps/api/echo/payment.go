package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core/payment"
)

type paymentApi struct {
	svc      *payment.Service
	validate *validator.Validate
}

func registerPaymentAPI(e *echo.Echo, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := paymentApi{
		svc:      deps.PaymentSvc,
		validate: deps.Validate,
	}

	e.POST("/create-payment-intent", api.createIntent, jwt)
	e.POST("/payments", api.record, jwt)

	// un-authed; history is not scoped to the caller
	// TODO: scope to the token's email once the frontend sends it
	e.GET("/payment-history", api.history)
}

// Handlers

func (api *paymentApi) createIntent(ctx echo.Context) error {
	var data payment.IntentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to IntentRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	secret, err := api.svc.CreateIntent(ctx.Request().Context(), data.Price)
	if err != nil {
		return errors.Wrap(err, "creating payment intent")
	}
	return ctx.JSON(http.StatusOK, payment.IntentResponse{ClientSecret: secret})
}

func (api *paymentApi) record(ctx echo.Context) error {
	var data payment.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Record(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *paymentApi) history(ctx echo.Context) error {
	recs, err := api.svc.History(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying payment history")
	}
	return ctx.JSON(http.StatusOK, recs)
}

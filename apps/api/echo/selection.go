package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/selection"
)

type selectionApi struct {
	svc      *selection.Service
	validate *validator.Validate
}

func registerSelectionAPI(e *echo.Echo, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := selectionApi{
		svc:      deps.SelectionSvc,
		validate: deps.Validate,
	}

	e.GET("/select", api.query, jwt)

	// un-authed endpoints; add/remove carry no identity check
	// TODO: gate on the owner's identity once the frontend sends the token
	e.PATCH("/select", api.add)
	e.DELETE("/select/:id", api.destroy)
}

// Handlers

func (api *selectionApi) query(ctx echo.Context) error {
	email := core.CleanString(ctx.QueryParam("email"), true /* lower */)
	if email == "" {
		return ctx.JSON(http.StatusOK, []selection.Entry{})
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if claims.Email != email {
		return errHttpForbidden
	}

	entries, err := api.svc.QueryByOwner(ctx.Request().Context(), email)
	if err != nil {
		return errors.Wrap(err, "querying selection entries")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *selectionApi) add(ctx echo.Context) error {
	var data selection.Entry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Entry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	entry, alreadyExists, err := api.svc.Add(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding selection entry")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"alreadyExists": alreadyExists,
		"result":        entry,
	})
}

func (api *selectionApi) destroy(ctx echo.Context) error {
	res, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "deleting selection entry")
	}
	return ctx.JSON(http.StatusOK, res)
}

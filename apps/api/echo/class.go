package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core/class"
)

type classApi struct {
	svc      *class.Service
	validate *validator.Validate
}

func registerClassAPI(e *echo.Echo, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := classApi{
		svc:      deps.ClassSvc,
		validate: deps.Validate,
	}

	// un-authed endpoints; creation and moderation carry no identity check,
	// moderation is effectively trusted to the frontend
	e.GET("/class", api.query)
	e.POST("/class", api.create)
	e.PATCH("/class/:id", api.updateStatus)
	e.POST("/class/:id", api.updateFeedback)

	// admin endpoints
	e.DELETE("/class/:id", api.destroy, jwt, adminMiddleware(deps.UserSvc))
}

// Handlers

func (api *classApi) query(ctx echo.Context) error {
	items, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *classApi) updateStatus(ctx echo.Context) error {
	var data class.UpdateStatus
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStatus")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.SetStatus(ctx.Request().Context(), ctx.Param("id"), data.Status)
	if err != nil {
		return errors.Wrap(err, "updating class status")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *classApi) updateFeedback(ctx echo.Context) error {
	var data class.UpdateFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFeedback")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.SetFeedback(ctx.Request().Context(), ctx.Param("id"), data.Feedback)
	if err != nil {
		return errors.Wrap(err, "updating class feedback")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *classApi) destroy(ctx echo.Context) error {
	res, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.JSON(http.StatusOK, res)
}

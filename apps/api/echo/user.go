package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/user"
)

type userApi struct {
	conf       *core.Config
	svc        *user.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerUserAPI(e *echo.Echo, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := userApi{
		conf:       deps.Conf,
		svc:        deps.UserSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	// un-authed endpoints
	e.POST("/jwt", api.issueToken)
	e.POST("/users", api.register)
	e.GET("/instructors", api.queryInstructors)
	// TODO: gate role updates behind admin once the frontend sends the token
	e.PATCH("/users/role/:id", api.updateRole)

	// authed endpoints
	e.GET("/users", api.query, jwt)
	e.GET("/users/admin/:email", api.isAdmin, jwt)
	e.GET("/users/instructor/:email", api.isInstructor, jwt)
	e.GET("/users/student/:email", api.isStudent, jwt)
}

// Handlers

func (api *userApi) issueToken(ctx echo.Context) error {
	var data TokenRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TokenRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	token, err := GenerateToken(api.conf, GetClaims(api.conf, data.Email, data.Name))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *userApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, created, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}
	if !created {
		return ctx.JSON(http.StatusOK, echo.Map{"message": "user already exists"})
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) isAdmin(ctx echo.Context) error {
	return api.roleCheck(ctx, user.RoleAdmin, "admin")
}

func (api *userApi) isInstructor(ctx echo.Context) error {
	return api.roleCheck(ctx, user.RoleInstructor, "instructor")
}

func (api *userApi) isStudent(ctx echo.Context) error {
	return api.roleCheck(ctx, user.RoleStudent, "student")
}

// roleCheck implements the self-lookup policy: the path email must match the
// token's email; on mismatch the response reports false without revealing
// whether the email exists at all.
func (api *userApi) roleCheck(ctx echo.Context, role, key string) error {
	email := core.CleanString(ctx.Param("email"), true /* lower */)

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if claims.Email != email {
		return ctx.JSON(http.StatusOK, echo.Map{key: false})
	}

	has, err := api.svc.HasRole(ctx.Request().Context(), email, role)
	if err != nil {
		return errors.Wrap(err, "checking stored role")
	}
	return ctx.JSON(http.StatusOK, echo.Map{key: has})
}

func (api *userApi) updateRole(ctx echo.Context) error {
	var data user.UpdateRole
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRole")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.SetRole(ctx.Request().Context(), ctx.Param("id"), data.Role)
	if err != nil {
		return errors.Wrap(err, "updating user role")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *userApi) queryInstructors(ctx echo.Context) error {
	instructors, err := api.svc.FilterByRole(ctx.Request().Context(), user.RoleInstructor)
	if err != nil {
		return errors.Wrap(err, "querying instructors")
	}
	return ctx.JSON(http.StatusOK, instructors)
}

type (
	TokenRequest struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}
)

func (tr *TokenRequest) Validate(validate *validator.Validate) error {
	tr.Email = core.CleanString(tr.Email, true /* lower */)
	tr.Name = core.CleanString(tr.Name)
	return validate.Struct(tr)
}

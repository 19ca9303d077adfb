package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pichalabs/picha/core/user"
)

// adminMiddleware gates a route on the STORED role of the authenticated
// identity, not on anything carried in the token itself. It must run after
// the JWT middleware.
func adminMiddleware(svc *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			isAdmin, err := svc.HasRole(ctx.Request().Context(), claims.Email, user.RoleAdmin)
			if err != nil {
				return errors.Wrap(err, "checking stored role")
			}
			if !isAdmin {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

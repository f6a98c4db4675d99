package middlewares

import (
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the calling user from the X-User-ID header the
// authenticating reverse proxy sets. Requests without an identity never reach
// a handler - every document access has to be attributable to a user.
func SessionMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			userID := ctx.Request().Header.Get("X-User-ID")
			if userID == "" {
				return echo.NewHTTPError(401, "no user identity provided")
			}

			shared.SetSession(ctx, shared.NewUserSession(userID))
			return next(ctx)
		}
	}
}

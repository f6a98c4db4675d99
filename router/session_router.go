package router

import (
	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID(),
	})
}

func NewSessionRouter(apiV1Router APIV1Router) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware())

	sessionRouter.GET("/whoami/", whoami)

	return SessionRouter{
		Group: sessionRouter,
	}
}

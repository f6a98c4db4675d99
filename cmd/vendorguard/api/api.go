package api

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartedAt is used for uptime reporting on the info endpoint.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance and ties its lifetime to the fx app.
// Routers register their routes on Echo before OnStart fires.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/caas-platform/vendorguard/cmd/vendorguard/api"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, db shared.DB) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		host, _ := os.Hostname()

		return ctx.JSON(200, map[string]any{
			"goVersion":     runtime.Version(),
			"numGoroutines": runtime.NumGoroutine(),
			"heapAlloc":     mem.HeapAlloc,
			"pid":           os.Getpid(),
			"hostname":      host,
			"uptimeSeconds": int(time.Since(api.StartedAt).Seconds()),
		})
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}

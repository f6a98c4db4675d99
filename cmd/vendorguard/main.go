package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/caas-platform/vendorguard/cmd/vendorguard/api"
	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/database/repositories"
	"github.com/caas-platform/vendorguard/router"
	"github.com/caas-platform/vendorguard/services"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db,
			&models.Org{},
			&models.Vendor{},
			&models.AssessmentTemplate{},
			&models.Question{},
			&models.Assessment{},
			&models.AssessmentResponse{},
			&models.DocumentCategory{},
			&models.DocumentTag{},
			&models.Document{},
			&models.DocumentAccessLog{},
		); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(orgRouter router.OrgRouter) {}),
		fx.Invoke(func(vendorRouter router.VendorRouter) {}),
		fx.Invoke(func(assessmentRouter router.AssessmentRouter) {}),
		fx.Invoke(func(documentRouter router.DocumentRouter) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		// no personally identifiable information leaves the service
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}

package services

import (
	"github.com/caas-platform/vendorguard/shared"
	"go.uber.org/fx"
)

// Module provides all service constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAccessLogService, fx.As(new(shared.AccessLogService)))),
	fx.Provide(fx.Annotate(NewDocumentService, fx.As(new(shared.DocumentService)))),
	fx.Provide(fx.Annotate(NewAssessmentService, fx.As(new(shared.AssessmentService)))),
)

package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	// Tenancy
	fx.Provide(NewOrgController),
	fx.Provide(NewVendorController),

	// Assessments
	fx.Provide(NewAssessmentTemplateController),
	fx.Provide(NewAssessmentController),

	// Documents & Audit
	fx.Provide(NewDocumentController),
	fx.Provide(NewDocumentCategoryController),
	fx.Provide(NewDocumentTagController),
	fx.Provide(NewAccessLogController),
)

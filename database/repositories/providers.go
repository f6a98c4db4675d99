package repositories

import (
	"github.com/caas-platform/vendorguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrgRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewVendorRepository, fx.As(new(shared.VendorRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentTemplateRepository, fx.As(new(shared.AssessmentTemplateRepository)))),
	fx.Provide(fx.Annotate(NewQuestionRepository, fx.As(new(shared.QuestionRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentRepository, fx.As(new(shared.AssessmentRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentResponseRepository, fx.As(new(shared.AssessmentResponseRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
	fx.Provide(fx.Annotate(NewDocumentCategoryRepository, fx.As(new(shared.DocumentCategoryRepository)))),
	fx.Provide(fx.Annotate(NewDocumentTagRepository, fx.As(new(shared.DocumentTagRepository)))),
	fx.Provide(fx.Annotate(NewDocumentAccessLogRepository, fx.As(new(shared.DocumentAccessLogRepository)))),
)

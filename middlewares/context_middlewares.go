package middlewares

import (
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context and fetch some data from the database

func OrgMiddleware(repository shared.OrganizationRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			orgSlug, err := shared.GetOrgSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid organization slug")
			}

			organization, err := repository.ReadBySlug(orgSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find organization").WithInternal(err)
			}

			shared.SetOrg(ctx, organization)
			return next(ctx)
		}
	}
}

func VendorMiddleware(repository shared.VendorRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			organization := shared.GetOrg(ctx)

			vendorSlug, err := shared.GetVendorSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid vendor slug")
			}

			vendor, err := repository.ReadBySlug(organization.ID, vendorSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find vendor").WithInternal(err)
			}

			shared.SetVendor(ctx, vendor)
			return next(ctx)
		}
	}
}

func TemplateMiddleware(repository shared.AssessmentTemplateRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			organization := shared.GetOrg(ctx)

			templateID, err := shared.GetTemplateID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid template id")
			}

			template, err := repository.ReadWithQuestions(templateID)
			if err != nil || template.OrganizationID != organization.ID {
				return echo.NewHTTPError(404, "could not find assessment template")
			}

			shared.SetTemplate(ctx, template)
			return next(ctx)
		}
	}
}

func AssessmentMiddleware(repository shared.AssessmentRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			vendor := shared.GetVendor(ctx)

			assessmentID, err := shared.GetAssessmentID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid assessment id")
			}

			assessment, err := repository.Read(assessmentID)
			if err != nil || assessment.VendorID != vendor.ID {
				return echo.NewHTTPError(404, "could not find assessment")
			}

			shared.SetAssessment(ctx, assessment)
			return next(ctx)
		}
	}
}

func DocumentMiddleware(repository shared.DocumentRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			vendor := shared.GetVendor(ctx)

			documentID, err := shared.GetDocumentID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid document id")
			}

			document, err := repository.Read(documentID)
			if err != nil || document.VendorID != vendor.ID {
				return echo.NewHTTPError(404, "could not find document")
			}

			shared.SetDocument(ctx, document)
			return next(ctx)
		}
	}
}

package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database/repositories"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/labstack/echo/v4"
)

type AssessmentTemplateController struct {
	templateRepository shared.AssessmentTemplateRepository
}

func NewAssessmentTemplateController(templateRepository shared.AssessmentTemplateRepository) *AssessmentTemplateController {
	return &AssessmentTemplateController{
		templateRepository: templateRepository,
	}
}

func (controller *AssessmentTemplateController) Create(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)
	session := shared.GetSession(ctx)

	var req dtos.TemplateCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	template := transformer.TemplateCreateRequestToModel(req, organization, session.GetUserID())
	for _, question := range template.Questions {
		if err := question.Validate(); err != nil {
			return echo.NewHTTPError(400, err.Error())
		}
	}

	if err := controller.templateRepository.Create(nil, &template); err != nil {
		if repositories.IsUniqueViolation(err) {
			return echo.NewHTTPError(409, fmt.Sprintf("a template named %q already exists in this organization", template.Name)).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create assessment template").WithInternal(err)
	}

	return ctx.JSON(200, template)
}

func (controller *AssessmentTemplateController) List(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	templates, err := controller.templateRepository.GetByOrgID(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assessment templates").WithInternal(err)
	}

	return ctx.JSON(200, templates)
}

func (controller *AssessmentTemplateController) Read(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetTemplate(ctx))
}

func (controller *AssessmentTemplateController) Delete(ctx shared.Context) error {
	template := shared.GetTemplate(ctx)

	if err := controller.templateRepository.Delete(nil, template.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete assessment template").WithInternal(err)
	}

	return ctx.NoContent(200)
}

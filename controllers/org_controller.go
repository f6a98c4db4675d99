package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/labstack/echo/v4"
)

type OrgController struct {
	organizationRepository shared.OrganizationRepository
}

func NewOrgController(organizationRepository shared.OrganizationRepository) *OrgController {
	return &OrgController{
		organizationRepository: organizationRepository,
	}
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	organization := transformer.OrgCreateRequestToModel(req)
	if err := controller.organizationRepository.Create(nil, &organization); err != nil {
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}

	return ctx.JSON(200, organization)
}

func (controller *OrgController) List(ctx shared.Context) error {
	organizations, err := controller.organizationRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	return ctx.JSON(200, organizations)
}

func (controller *OrgController) Read(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetOrg(ctx))
}

func (controller *OrgController) Delete(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	if err := controller.organizationRepository.Delete(nil, organization.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}

	return ctx.NoContent(200)
}

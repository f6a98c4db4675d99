package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/caas-platform/vendorguard/utils"
	"github.com/labstack/echo/v4"
)

type VendorController struct {
	vendorRepository shared.VendorRepository
}

func NewVendorController(vendorRepository shared.VendorRepository) *VendorController {
	return &VendorController{
		vendorRepository: vendorRepository,
	}
}

func (controller *VendorController) Create(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	var req dtos.VendorCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	vendor := transformer.VendorCreateRequestToModel(req, organization)
	if err := controller.vendorRepository.Create(nil, &vendor); err != nil {
		return echo.NewHTTPError(500, "could not create vendor").WithInternal(err)
	}

	return ctx.JSON(200, transformer.VendorDTOFromModel(vendor))
}

func (controller *VendorController) List(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	vendors, err := controller.vendorRepository.GetByOrgID(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list vendors").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(vendors, transformer.VendorDTOFromModel))
}

func (controller *VendorController) Read(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetVendor(ctx))
}

func (controller *VendorController) Update(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	var req dtos.VendorCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.VendorCreateRequestToModel(req, models.Org{ID: vendor.OrganizationID})
	updated.ID = vendor.ID
	updated.Slug = vendor.Slug

	if err := controller.vendorRepository.Save(nil, &updated); err != nil {
		return echo.NewHTTPError(500, "could not update vendor").WithInternal(err)
	}

	return ctx.JSON(200, transformer.VendorDTOFromModel(updated))
}

func (controller *VendorController) Delete(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	if err := controller.vendorRepository.Delete(nil, vendor.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete vendor").WithInternal(err)
	}

	return ctx.NoContent(200)
}

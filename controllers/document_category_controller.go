package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database/repositories"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/labstack/echo/v4"
)

type DocumentCategoryController struct {
	categoryRepository shared.DocumentCategoryRepository
}

func NewDocumentCategoryController(categoryRepository shared.DocumentCategoryRepository) *DocumentCategoryController {
	return &DocumentCategoryController{
		categoryRepository: categoryRepository,
	}
}

func (controller *DocumentCategoryController) Create(ctx shared.Context) error {
	var req dtos.DocumentCategoryCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	category := transformer.CategoryCreateRequestToModel(req)
	if err := controller.categoryRepository.Create(nil, &category); err != nil {
		if repositories.IsUniqueViolation(err) {
			return echo.NewHTTPError(409, fmt.Sprintf("a category named %q already exists", category.Name)).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create document category").WithInternal(err)
	}

	return ctx.JSON(200, category)
}

func (controller *DocumentCategoryController) List(ctx shared.Context) error {
	categories, err := controller.categoryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list document categories").WithInternal(err)
	}

	return ctx.JSON(200, categories)
}

func (controller *DocumentCategoryController) Delete(ctx shared.Context) error {
	categoryID, err := shared.GetCategoryID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "could not parse category id").WithInternal(err)
	}

	if err := controller.categoryRepository.Delete(nil, categoryID); err != nil {
		return echo.NewHTTPError(500, "could not delete document category").WithInternal(err)
	}

	return ctx.NoContent(200)
}

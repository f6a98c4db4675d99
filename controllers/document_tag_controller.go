package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database/repositories"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/labstack/echo/v4"
)

type DocumentTagController struct {
	tagRepository shared.DocumentTagRepository
}

func NewDocumentTagController(tagRepository shared.DocumentTagRepository) *DocumentTagController {
	return &DocumentTagController{
		tagRepository: tagRepository,
	}
}

func (controller *DocumentTagController) Create(ctx shared.Context) error {
	var req dtos.DocumentTagCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	tag := transformer.TagCreateRequestToModel(req)
	if err := controller.tagRepository.Create(nil, &tag); err != nil {
		if repositories.IsUniqueViolation(err) {
			return echo.NewHTTPError(409, fmt.Sprintf("a tag named %q already exists", tag.Name)).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create document tag").WithInternal(err)
	}

	return ctx.JSON(200, tag)
}

func (controller *DocumentTagController) List(ctx shared.Context) error {
	tags, err := controller.tagRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list document tags").WithInternal(err)
	}

	return ctx.JSON(200, tags)
}

func (controller *DocumentTagController) Delete(ctx shared.Context) error {
	tagID, err := shared.GetTagID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "could not parse tag id").WithInternal(err)
	}

	if err := controller.tagRepository.Delete(nil, tagID); err != nil {
		return echo.NewHTTPError(500, "could not delete document tag").WithInternal(err)
	}

	return ctx.NoContent(200)
}

package controllers

import (
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AccessLogController struct {
	accessLogService shared.AccessLogService
}

func NewAccessLogController(accessLogService shared.AccessLogService) *AccessLogController {
	return &AccessLogController{
		accessLogService: accessLogService,
	}
}

// List returns ledger entries for the organization, newest first. The ledger
// is scoped to the organization from the path - the query parameters only
// narrow it further.
func (controller *AccessLogController) List(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	filter := dtos.AccessLogFilter{
		OrganizationID: &organization.ID,
	}

	if documentParam := ctx.QueryParam("documentId"); documentParam != "" {
		documentID, err := uuid.Parse(documentParam)
		if err != nil {
			return echo.NewHTTPError(400, "invalid document id").WithInternal(err)
		}
		filter.DocumentID = &documentID
	}

	if userParam := ctx.QueryParam("userId"); userParam != "" {
		filter.UserID = &userParam
	}

	if typeParam := ctx.QueryParam("accessType"); typeParam != "" {
		accessType := models.AccessType(typeParam)
		filter.AccessType = &accessType
	}

	if fromParam := ctx.QueryParam("from"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return echo.NewHTTPError(400, "from must be an RFC3339 timestamp").WithInternal(err)
		}
		filter.From = &from
	}

	if toParam := ctx.QueryParam("to"); toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return echo.NewHTTPError(400, "to must be an RFC3339 timestamp").WithInternal(err)
		}
		filter.To = &to
	}

	entries, err := controller.accessLogService.FindAll(filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list access logs").WithInternal(err)
	}

	return ctx.JSON(200, entries)
}

// ListForDocument returns the full ledger of a single document, including
// entries that predate the current version.
func (controller *AccessLogController) ListForDocument(ctx shared.Context) error {
	document := shared.GetDocument(ctx)

	entries, err := controller.accessLogService.FindAll(dtos.AccessLogFilter{
		DocumentID: &document.ID,
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not list access logs").WithInternal(err)
	}

	return ctx.JSON(200, entries)
}

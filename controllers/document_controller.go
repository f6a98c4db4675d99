package controllers

import (
	"fmt"
	"strconv"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/caas-platform/vendorguard/utils"
	"github.com/labstack/echo/v4"
)

type DocumentController struct {
	documentService    shared.DocumentService
	documentRepository shared.DocumentRepository
	tagRepository      shared.DocumentTagRepository
	accessLogService   shared.AccessLogService
}

func NewDocumentController(documentService shared.DocumentService, documentRepository shared.DocumentRepository, tagRepository shared.DocumentTagRepository, accessLogService shared.AccessLogService) *DocumentController {
	return &DocumentController{
		documentService:    documentService,
		documentRepository: documentRepository,
		tagRepository:      tagRepository,
		accessLogService:   accessLogService,
	}
}

func (controller *DocumentController) Create(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)
	session := shared.GetSession(ctx)

	var req dtos.DocumentUploadRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	var tags []models.DocumentTag
	if len(req.TagIDs) > 0 {
		var err error
		tags, err = controller.tagRepository.List(req.TagIDs)
		if err != nil {
			return echo.NewHTTPError(500, "could not resolve tags").WithInternal(err)
		}
		if len(tags) != len(req.TagIDs) {
			return echo.NewHTTPError(400, "one or more tags do not exist")
		}
	}

	document := transformer.DocumentUploadRequestToModel(req, vendor, tags)
	if err := controller.documentService.CreateDocument(&document, session.GetUserID(), shared.GetClientMetadata(ctx)); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(document))
}

func (controller *DocumentController) List(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	documents, err := controller.documentRepository.GetByVendorID(vendor.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list documents").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(documents, transformer.DocumentDTOFromModel))
}

// Read returns the document and writes a view entry to the access ledger.
func (controller *DocumentController) Read(ctx shared.Context) error {
	document := shared.GetDocument(ctx)
	session := shared.GetSession(ctx)

	controller.logAccess(ctx, document, session.GetUserID(), models.AccessTypeView)

	return ctx.JSON(200, document)
}

// Download hands out the file reference for the storage layer and records the
// download in the ledger.
func (controller *DocumentController) Download(ctx shared.Context) error {
	document := shared.GetDocument(ctx)
	session := shared.GetSession(ctx)

	controller.logAccess(ctx, document, session.GetUserID(), models.AccessTypeDownload)

	return ctx.JSON(200, map[string]any{
		"fileRef":  document.FileRef,
		"fileSize": document.FileSize,
		"name":     document.Name,
	})
}

func (controller *DocumentController) CreateVersion(ctx shared.Context) error {
	document := shared.GetDocument(ctx)
	session := shared.GetSession(ctx)

	var upload dtos.DocumentVersionUpload
	if err := ctx.Bind(&upload); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(upload); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	version, err := controller.documentService.CreateNewVersion(document, upload, session.GetUserID(), shared.GetClientMetadata(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(version))
}

func (controller *DocumentController) Versions(ctx shared.Context) error {
	document := shared.GetDocument(ctx)

	versions, err := controller.documentService.ListVersions(document)
	if err != nil {
		return echo.NewHTTPError(500, "could not list document versions").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(versions, transformer.DocumentDTOFromModel))
}

func (controller *DocumentController) Verify(ctx shared.Context) error {
	document := shared.GetDocument(ctx)
	session := shared.GetSession(ctx)

	verified, err := controller.documentService.VerifyDocument(document, session.GetUserID(), shared.GetClientMetadata(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.DocumentDTOFromModel(verified))
}

func (controller *DocumentController) Delete(ctx shared.Context) error {
	document := shared.GetDocument(ctx)
	session := shared.GetSession(ctx)

	if err := controller.documentService.DeleteDocument(document, session.GetUserID(), shared.GetClientMetadata(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(200)
}

// ExpiringSoon lists active documents of the organization that expire within
// the requested window. Defaults to 30 days.
func (controller *DocumentController) ExpiringSoon(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	withinDays := 30
	if daysParam := ctx.QueryParam("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days < 1 {
			return echo.NewHTTPError(400, "days must be a positive integer")
		}
		withinDays = days
	}

	documents, err := controller.documentService.ExpiringSoon(organization.ID, withinDays)
	if err != nil {
		return echo.NewHTTPError(500, "could not list expiring documents").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(documents, transformer.DocumentDTOFromModel))
}

func (controller *DocumentController) Stats(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	counts, err := controller.documentRepository.CountByType(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not count documents").WithInternal(err)
	}

	return ctx.JSON(200, counts)
}

func (controller *DocumentController) logAccess(ctx shared.Context, document models.Document, userID string, accessType models.AccessType) {
	meta := shared.GetClientMetadata(ctx)
	controller.accessLogService.LogAccessBestEffort(models.DocumentAccessLog{
		DocumentID:     document.ID,
		UserID:         userID,
		OrganizationID: document.OrganizationID,
		AccessType:     accessType,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		SessionID:      meta.SessionID,
		AccessReason:   ctx.Request().Header.Get("X-Access-Reason"),
	})
}

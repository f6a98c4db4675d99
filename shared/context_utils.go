package shared

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		v, _ = ctx.Get(param).(string)
	}
	return SanitizeParam(v)
}

func GetOrgSlug(ctx Context) (string, error) {
	orgSlug := GetParam(ctx, "orgSlug")
	if orgSlug == "" {
		return "", fmt.Errorf("could not get org slug")
	}
	return orgSlug, nil
}

func GetVendorSlug(ctx Context) (string, error) {
	vendorSlug := GetParam(ctx, "vendorSlug")
	if vendorSlug == "" {
		return "", fmt.Errorf("could not get vendor slug")
	}
	return vendorSlug, nil
}

func GetDocumentID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(GetParam(ctx, "documentID"))
}

func GetAssessmentID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(GetParam(ctx, "assessmentID"))
}

func GetTemplateID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(GetParam(ctx, "templateID"))
}

func GetCategoryID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(GetParam(ctx, "categoryID"))
}

func GetTagID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(GetParam(ctx, "tagID"))
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

func GetOrg(ctx Context) models.Org {
	org, ok := ctx.Get("organization").(models.Org)
	if !ok {
		panic("organization not found in context")
	}
	return org
}

func SetVendor(ctx Context, vendor models.Vendor) {
	ctx.Set("vendor", vendor)
}

func GetVendor(ctx Context) models.Vendor {
	vendor, ok := ctx.Get("vendor").(models.Vendor)
	if !ok {
		panic("vendor not found in context")
	}
	return vendor
}

func SetDocument(ctx Context, document models.Document) {
	ctx.Set("document", document)
}

func GetDocument(ctx Context) models.Document {
	document, ok := ctx.Get("document").(models.Document)
	if !ok {
		panic("document not found in context")
	}
	return document
}

func SetAssessment(ctx Context, assessment models.Assessment) {
	ctx.Set("assessment", assessment)
}

func GetAssessment(ctx Context) models.Assessment {
	assessment, ok := ctx.Get("assessment").(models.Assessment)
	if !ok {
		panic("assessment not found in context")
	}
	return assessment
}

func SetTemplate(ctx Context, template models.AssessmentTemplate) {
	ctx.Set("template", template)
}

func GetTemplate(ctx Context) models.AssessmentTemplate {
	template, ok := ctx.Get("template").(models.AssessmentTemplate)
	if !ok {
		panic("template not found in context")
	}
	return template
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		panic("session not found in context")
	}
	return session
}

// ClientMetadata carries the request metadata the access ledger records.
type ClientMetadata struct {
	IPAddress string
	UserAgent string
	SessionID string
}

func GetClientMetadata(ctx Context) ClientMetadata {
	return ClientMetadata{
		IPAddress: ctx.RealIP(),
		UserAgent: ctx.Request().UserAgent(),
		SessionID: ctx.Request().Header.Get("X-Session-ID"),
	}
}

package services

import (
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DocumentService struct {
	documentRepository shared.DocumentRepository
	accessLogService   shared.AccessLogService
}

func NewDocumentService(documentRepository shared.DocumentRepository, accessLogService shared.AccessLogService) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		accessLogService:   accessLogService,
	}
}

// CreateDocument stores a fresh document as the root of a new version chain
// and writes the upload ledger entry.
func (s *DocumentService) CreateDocument(document *models.Document, actor string, meta shared.ClientMetadata) error {
	document.Version = 1
	document.IsLatest = true
	document.ParentDocumentID = nil
	document.UploadedByID = actor

	if err := s.documentRepository.Create(nil, document); err != nil {
		return echo.NewHTTPError(500, "could not create document").WithInternal(err)
	}

	s.accessLogService.LogAccessBestEffort(ledgerEntry(*document, actor, models.AccessTypeUpload, meta))
	return nil
}

// CreateNewVersion appends an upload to parent's version chain. Everything
// except the file reference and version notes carries over from the latest
// member, so a new version never silently changes classification or expiry.
func (s *DocumentService) CreateNewVersion(parent models.Document, upload dtos.DocumentVersionUpload, actor string, meta shared.ClientMetadata) (models.Document, error) {
	doc := models.Document{
		VendorID:       parent.VendorID,
		OrganizationID: parent.OrganizationID,
		Name:           parent.Name,
		DocumentType:   parent.DocumentType,
		CategoryID:     parent.CategoryID,
		FileRef:        upload.FileRef,
		FileSize:       upload.FileSize,
		VersionNotes:   upload.VersionNotes,
		Status:         models.DocumentStatusPendingReview,
		DocumentDate:   parent.DocumentDate,
		ExpiresAt:      parent.ExpiresAt,
		UploadedByID:   actor,
		Notes:          parent.Notes,
	}

	if err := s.documentRepository.CreateVersion(parent, &doc); err != nil {
		return models.Document{}, echo.NewHTTPError(500, "could not create document version").WithInternal(err)
	}

	entry := ledgerEntry(doc, actor, models.AccessTypeUpload, meta)
	entry.ChangesMade = map[string]any{
		"newVersion":       doc.Version,
		"previousDocument": parent.ID.String(),
	}
	s.accessLogService.LogAccessBestEffort(entry)

	return doc, nil
}

func (s *DocumentService) ListVersions(document models.Document) ([]models.Document, error) {
	return s.documentRepository.GetVersions(document.ID)
}

// VerifyDocument marks the document reviewed and activates it.
func (s *DocumentService) VerifyDocument(document models.Document, verifier string, meta shared.ClientMetadata) (models.Document, error) {
	if document.IsVerified {
		return models.Document{}, echo.NewHTTPError(400, "document has already been verified")
	}

	document.IsVerified = true
	document.VerifiedByID = &verifier
	document.VerifiedAt = shared.Ptr(time.Now())
	if document.Status == models.DocumentStatusPendingReview {
		document.Status = models.DocumentStatusActive
	}

	if err := s.documentRepository.Save(nil, &document); err != nil {
		return models.Document{}, echo.NewHTTPError(500, "could not verify document").WithInternal(err)
	}

	s.accessLogService.LogAccessBestEffort(ledgerEntry(document, verifier, models.AccessTypeVerify, meta))
	return document, nil
}

// DeleteDocument removes the document row. The delete ledger entry is written
// first: the ledger has no foreign key on documents, so it survives the
// deletion, and a failed delete leaves at worst a spurious audit line rather
// than an unaudited removal.
func (s *DocumentService) DeleteDocument(document models.Document, actor string, meta shared.ClientMetadata) error {
	entry := ledgerEntry(document, actor, models.AccessTypeDelete, meta)
	entry.ChangesMade = map[string]any{
		"name":    document.Name,
		"version": document.Version,
		"fileRef": document.FileRef,
	}
	if err := s.accessLogService.LogAccess(entry); err != nil {
		return echo.NewHTTPError(500, "could not record document deletion").WithInternal(err)
	}

	if err := s.documentRepository.Delete(nil, document.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete document").WithInternal(err)
	}

	return nil
}

func (s *DocumentService) ExpiringSoon(organizationID uuid.UUID, withinDays int) ([]models.Document, error) {
	deadline := time.Now().AddDate(0, 0, withinDays)
	return s.documentRepository.GetExpiringBefore(organizationID, deadline)
}

func ledgerEntry(document models.Document, actor string, accessType models.AccessType, meta shared.ClientMetadata) models.DocumentAccessLog {
	return models.DocumentAccessLog{
		DocumentID:     document.ID,
		UserID:         actor,
		OrganizationID: document.OrganizationID,
		AccessType:     accessType,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
		SessionID:      meta.SessionID,
	}
}

package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/mocks"
	"github.com/caas-platform/vendorguard/services"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testMeta = shared.ClientMetadata{
	IPAddress: "10.0.0.1",
	UserAgent: "integration-test",
	SessionID: "session-1",
}

func TestCreateDocument(t *testing.T) {
	t.Run("should store the document as a chain root and write an upload ledger entry", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		accessLogService := mocks.NewAccessLogService(t)

		documentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		var entry models.DocumentAccessLog
		accessLogService.On("LogAccessBestEffort", mock.Anything).Run(func(args mock.Arguments) {
			entry = args.Get(0).(models.DocumentAccessLog)
		})

		service := services.NewDocumentService(documentRepository, accessLogService)

		document := models.Document{
			VendorID:       uuid.New(),
			OrganizationID: uuid.New(),
			Name:           "Business Associate Agreement",
			DocumentType:   models.DocumentTypeBAA,
			FileRef:        "s3://bucket/baa.pdf",
			// a stale parent reference must not survive creation
			ParentDocumentID: shared.Ptr(uuid.New()),
		}

		err := service.CreateDocument(&document, "user-123", testMeta)

		assert.NoError(t, err)
		assert.Equal(t, 1, document.Version)
		assert.True(t, document.IsLatest)
		assert.Nil(t, document.ParentDocumentID)
		assert.Equal(t, "user-123", document.UploadedByID)

		assert.Equal(t, models.AccessTypeUpload, entry.AccessType)
		assert.Equal(t, "user-123", entry.UserID)
		assert.Equal(t, document.OrganizationID, entry.OrganizationID)
		assert.Equal(t, "10.0.0.1", entry.IPAddress)
	})
}

func TestCreateNewVersion(t *testing.T) {
	parent := models.Document{
		ID:             uuid.New(),
		VendorID:       uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Certificate of Insurance",
		DocumentType:   models.DocumentTypeInsuranceCOI,
		FileRef:        "s3://bucket/coi-v1.pdf",
		Version:        1,
		IsLatest:       true,
		ExpiresAt:      shared.Ptr(time.Now().AddDate(1, 0, 0)),
		Notes:          "renewed annually",
	}

	t.Run("should carry over classification and expiry from the parent", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		accessLogService := mocks.NewAccessLogService(t)

		documentRepository.On("CreateVersion", parent, mock.Anything).Return(func(parent models.Document, doc *models.Document) error {
			doc.ParentDocumentID = &parent.ID
			doc.Version = 2
			doc.IsLatest = true
			return nil
		})
		accessLogService.On("LogAccessBestEffort", mock.Anything)

		service := services.NewDocumentService(documentRepository, accessLogService)

		doc, err := service.CreateNewVersion(parent, dtos.DocumentVersionUpload{
			FileRef:      "s3://bucket/coi-v2.pdf",
			VersionNotes: "2026 renewal",
		}, "user-123", testMeta)

		assert.NoError(t, err)
		assert.Equal(t, 2, doc.Version)
		assert.Equal(t, parent.ID, *doc.ParentDocumentID)
		assert.Equal(t, parent.Name, doc.Name)
		assert.Equal(t, parent.DocumentType, doc.DocumentType)
		assert.Equal(t, parent.ExpiresAt, doc.ExpiresAt)
		assert.Equal(t, "s3://bucket/coi-v2.pdf", doc.FileRef)
		assert.Equal(t, models.DocumentStatusPendingReview, doc.Status)
	})
}

func TestVerifyDocument(t *testing.T) {
	t.Run("should activate a pending document and write a verify ledger entry", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		accessLogService := mocks.NewAccessLogService(t)

		documentRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		accessLogService.On("LogAccessBestEffort", mock.MatchedBy(func(entry models.DocumentAccessLog) bool {
			return entry.AccessType == models.AccessTypeVerify
		}))

		service := services.NewDocumentService(documentRepository, accessLogService)

		document, err := service.VerifyDocument(models.Document{
			ID:     uuid.New(),
			Status: models.DocumentStatusPendingReview,
		}, "reviewer-1", testMeta)

		assert.NoError(t, err)
		assert.True(t, document.IsVerified)
		assert.Equal(t, "reviewer-1", *document.VerifiedByID)
		assert.NotNil(t, document.VerifiedAt)
		assert.Equal(t, models.DocumentStatusActive, document.Status)
	})

	t.Run("should refuse double verification", func(t *testing.T) {
		service := services.NewDocumentService(mocks.NewDocumentRepository(t), mocks.NewAccessLogService(t))

		_, err := service.VerifyDocument(models.Document{IsVerified: true}, "reviewer-1", testMeta)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestDeleteDocument(t *testing.T) {
	document := models.Document{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "old contract",
		Version:        3,
		FileRef:        "s3://bucket/contract-v3.pdf",
	}

	t.Run("should write the ledger entry before deleting", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		accessLogService := mocks.NewAccessLogService(t)

		accessLogService.On("LogAccess", mock.MatchedBy(func(entry models.DocumentAccessLog) bool {
			return entry.AccessType == models.AccessTypeDelete && entry.DocumentID == document.ID
		})).Return(nil)
		documentRepository.On("Delete", mock.Anything, document.ID).Return(nil)

		service := services.NewDocumentService(documentRepository, accessLogService)

		assert.NoError(t, service.DeleteDocument(document, "user-123", testMeta))
	})

	t.Run("should abort the deletion when the ledger write fails", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		accessLogService := mocks.NewAccessLogService(t)

		accessLogService.On("LogAccess", mock.Anything).Return(errors.New("ledger unavailable"))

		service := services.NewDocumentService(documentRepository, accessLogService)

		err := service.DeleteDocument(document, "user-123", testMeta)

		assert.Error(t, err)
		documentRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestExpiringSoon(t *testing.T) {
	organizationID := uuid.New()

	documentRepository := mocks.NewDocumentRepository(t)
	documentRepository.On("GetExpiringBefore", organizationID, mock.MatchedBy(func(deadline time.Time) bool {
		// 30 day window measured from now
		return deadline.After(time.Now().AddDate(0, 0, 29)) && deadline.Before(time.Now().AddDate(0, 0, 31))
	})).Return([]models.Document{}, nil)

	service := services.NewDocumentService(documentRepository, mocks.NewAccessLogService(t))

	_, err := service.ExpiringSoon(organizationID, 30)
	assert.NoError(t, err)
}

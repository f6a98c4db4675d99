package transformer_test

import (
	"testing"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTemplateCreateRequestToModel(t *testing.T) {
	org := models.Org{ID: uuid.New()}

	t.Run("should apply defaults and number questions in order", func(t *testing.T) {
		template := transformer.TemplateCreateRequestToModel(dtos.TemplateCreateRequest{
			Name: "HIPAA Security Baseline",
			Questions: []dtos.QuestionCreateRequest{
				{QuestionText: "Do you encrypt data at rest?"},
				{QuestionText: "How often do you run access reviews?", QuestionType: models.QuestionTypeMultipleChoice, Choices: []string{"monthly", "quarterly", "annually"}},
			},
		}, org, "user-123")

		assert.Equal(t, org.ID, template.OrganizationID)
		assert.Equal(t, models.AssessmentTypeVendorRisk, template.AssessmentType)
		assert.Equal(t, 70, template.PassingScore)
		assert.Equal(t, "user-123", *template.CreatedByID)

		assert.Len(t, template.Questions, 2)
		assert.Equal(t, models.QuestionTypeYesNo, template.Questions[0].QuestionType)
		assert.Equal(t, 1, template.Questions[0].Order)
		assert.Equal(t, 2, template.Questions[1].Order)
		assert.Equal(t, []string{"monthly", "quarterly", "annually"}, template.Questions[1].ChoiceList())
		assert.True(t, template.Questions[0].IsRequired)
	})

	t.Run("should honor explicit passing score and optional questions", func(t *testing.T) {
		optional := false
		template := transformer.TemplateCreateRequestToModel(dtos.TemplateCreateRequest{
			Name:         "SOC2 readiness",
			PassingScore: 85,
			Questions: []dtos.QuestionCreateRequest{
				{QuestionText: "Attach your latest report", QuestionType: models.QuestionTypeFile, IsRequired: &optional},
			},
		}, org, "user-123")

		assert.Equal(t, 85, template.PassingScore)
		assert.False(t, template.Questions[0].IsRequired)
	})
}

func TestDocumentUploadRequestToModel(t *testing.T) {
	vendor := models.Vendor{ID: uuid.New(), OrganizationID: uuid.New()}

	t.Run("should attach the resolved tags", func(t *testing.T) {
		tags := []models.DocumentTag{
			{ID: uuid.New(), Name: "urgent"},
			{ID: uuid.New(), Name: "expires-soon"},
		}

		document := transformer.DocumentUploadRequestToModel(dtos.DocumentUploadRequest{
			Name:         "BAA",
			DocumentType: models.DocumentTypeBAA,
			FileRef:      "vendors/acme/baa.pdf",
			DocumentDate: time.Now(),
			TagIDs:       []uuid.UUID{tags[0].ID, tags[1].ID},
		}, vendor, tags)

		assert.Len(t, document.Tags, 2)
		assert.Equal(t, "urgent", document.Tags[0].Name)
		assert.Equal(t, vendor.ID, document.VendorID)
		assert.Equal(t, vendor.OrganizationID, document.OrganizationID)
		assert.Equal(t, models.DocumentStatusPendingReview, document.Status)
	})

	t.Run("should leave untagged uploads without tags", func(t *testing.T) {
		document := transformer.DocumentUploadRequestToModel(dtos.DocumentUploadRequest{
			Name:         "COI",
			DocumentType: models.DocumentTypeInsuranceCOI,
			FileRef:      "vendors/acme/coi.pdf",
			DocumentDate: time.Now(),
		}, vendor, nil)

		assert.Empty(t, document.Tags)
	})
}

func TestDocumentDTOFromModel(t *testing.T) {
	expiresAt := time.Now().AddDate(0, 0, 10)
	document := models.Document{
		ID:        uuid.New(),
		Name:      "BAA",
		Version:   2,
		IsLatest:  true,
		ExpiresAt: &expiresAt,
	}

	dto := transformer.DocumentDTOFromModel(document)

	assert.Equal(t, document.ID, dto.ID)
	assert.Equal(t, 2, dto.Version)
	assert.NotNil(t, dto.DaysUntilExpiration)
	assert.Equal(t, 10, *dto.DaysUntilExpiration)
}

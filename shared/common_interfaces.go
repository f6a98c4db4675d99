package shared

import (
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/google/uuid"
)

type OrganizationRepository interface {
	database.Repository[uuid.UUID, models.Org, DB]
	ReadBySlug(slug string) (models.Org, error)
}

type VendorRepository interface {
	database.Repository[uuid.UUID, models.Vendor, DB]
	ReadBySlug(organizationID uuid.UUID, slug string) (models.Vendor, error)
	GetByOrgID(organizationID uuid.UUID) ([]models.Vendor, error)
}

type AssessmentTemplateRepository interface {
	database.Repository[uuid.UUID, models.AssessmentTemplate, DB]
	ReadWithQuestions(id uuid.UUID) (models.AssessmentTemplate, error)
	GetByOrgID(organizationID uuid.UUID) ([]models.AssessmentTemplate, error)
}

type QuestionRepository interface {
	database.Repository[uuid.UUID, models.Question, DB]
	GetByTemplateID(templateID uuid.UUID) ([]models.Question, error)
}

type AssessmentRepository interface {
	database.Repository[uuid.UUID, models.Assessment, DB]
	ReadWithResponses(id uuid.UUID) (models.Assessment, error)
	GetByVendorID(vendorID uuid.UUID) ([]models.Assessment, error)
}

type AssessmentResponseRepository interface {
	database.Repository[uuid.UUID, models.AssessmentResponse, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.AssessmentResponse, error)
	ReadByAssessmentAndQuestion(assessmentID uuid.UUID, questionID uuid.UUID) (models.AssessmentResponse, error)
}

type DocumentRepository interface {
	database.Repository[uuid.UUID, models.Document, DB]
	GetByVendorID(vendorID uuid.UUID) ([]models.Document, error)
	GetByOrgID(organizationID uuid.UUID) ([]models.Document, error)
	// CreateVersion inserts doc as the next member of parent's version
	// chain. Implementations must serialize concurrent calls against the
	// same chain and flip is_latest atomically.
	CreateVersion(parent models.Document, doc *models.Document) error
	GetVersions(id uuid.UUID) ([]models.Document, error)
	GetExpiringBefore(organizationID uuid.UUID, deadline time.Time) ([]models.Document, error)
	CountByType(organizationID uuid.UUID) (map[models.DocumentType]int64, error)
}

type DocumentCategoryRepository interface {
	database.Repository[uuid.UUID, models.DocumentCategory, DB]
}

type DocumentTagRepository interface {
	database.Repository[uuid.UUID, models.DocumentTag, DB]
}

// DocumentAccessLogRepository is append-only: Update and Delete must fail
// and leave the row untouched.
type DocumentAccessLogRepository interface {
	Create(tx DB, entry *models.DocumentAccessLog) error
	Read(id uuid.UUID) (models.DocumentAccessLog, error)
	FindAll(filter dtos.AccessLogFilter) ([]models.DocumentAccessLog, error)
	Update(tx DB, entry *models.DocumentAccessLog) error
	Delete(tx DB, id uuid.UUID) error
}

type AssessmentService interface {
	CreateAssessment(template models.AssessmentTemplate, vendorID uuid.UUID, dueDate time.Time, assignedBy string, vendorNotes string) (models.Assessment, error)
	SubmitResponse(assessmentID uuid.UUID, questionID uuid.UUID, submission dtos.ResponseSubmission) (models.AssessmentResponse, error)
	ScoreResponseManually(assessmentID uuid.UUID, questionID uuid.UUID, score dtos.ManualScore, reviewer string) (models.AssessmentResponse, error)
	RecomputeScore(assessmentID uuid.UUID) (models.Assessment, error)
	SubmitAssessment(assessmentID uuid.UUID) (models.Assessment, error)
	ReviewAssessment(assessmentID uuid.UUID, review dtos.AssessmentReviewRequest, reviewer string) (models.Assessment, error)
	CompletionPercentage(assessmentID uuid.UUID) (int, error)
}

type DocumentService interface {
	CreateDocument(document *models.Document, actor string, meta ClientMetadata) error
	CreateNewVersion(parent models.Document, upload dtos.DocumentVersionUpload, actor string, meta ClientMetadata) (models.Document, error)
	ListVersions(document models.Document) ([]models.Document, error)
	VerifyDocument(document models.Document, verifier string, meta ClientMetadata) (models.Document, error)
	DeleteDocument(document models.Document, actor string, meta ClientMetadata) error
	ExpiringSoon(organizationID uuid.UUID, withinDays int) ([]models.Document, error)
}

type AccessLogService interface {
	LogAccess(entry models.DocumentAccessLog) error
	// LogAccessBestEffort never propagates an error to the caller - audit
	// logging must not break the request it documents.
	LogAccessBestEffort(entry models.DocumentAccessLog)
	FindAll(filter dtos.AccessLogFilter) ([]models.DocumentAccessLog, error)
}

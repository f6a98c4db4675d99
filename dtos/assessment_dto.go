package dtos

import (
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
)

type TemplateCreateRequest struct {
	Name           string                  `json:"name" validate:"required"`
	Description    string                  `json:"description"`
	AssessmentType models.AssessmentType   `json:"assessmentType"`
	PassingScore   int                     `json:"passingScore" validate:"min=0,max=100"`
	Questions      []QuestionCreateRequest `json:"questions" validate:"dive"`
}

type QuestionCreateRequest struct {
	QuestionText  string              `json:"questionText" validate:"required"`
	HelpText      string              `json:"helpText"`
	QuestionType  models.QuestionType `json:"questionType"`
	Choices       []string            `json:"choices"`
	Points        int                 `json:"points" validate:"min=0"`
	CorrectAnswer *string             `json:"correctAnswer"`
	Section       string              `json:"section"`
	Order         int                 `json:"order"`
	IsRequired    *bool               `json:"isRequired"`
	IsCritical    bool                `json:"isCritical"`
}

type AssessmentCreateRequest struct {
	TemplateID  uuid.UUID `json:"templateId" validate:"required"`
	VendorID    uuid.UUID `json:"vendorId" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	VendorNotes string    `json:"vendorNotes"`
}

// ResponseSubmission is what a vendor hands in for a single question.
type ResponseSubmission struct {
	AnswerText string         `json:"answerText"`
	AnswerJSON database.JSONB `json:"answerJson"`
	AnswerFile string         `json:"answerFile"`
}

// ManualScore is a reviewer's grading of a non-auto-scorable response.
type ManualScore struct {
	PointsEarned    int    `json:"pointsEarned" validate:"min=0"`
	IsApproved      *bool  `json:"isApproved"`
	ReviewerComment string `json:"reviewerComment"`
}

type AssessmentReviewRequest struct {
	Approved      bool   `json:"approved"`
	ReviewerNotes string `json:"reviewerNotes"`
}

type AssessmentDTO struct {
	ID                   uuid.UUID               `json:"id"`
	TemplateID           uuid.UUID               `json:"templateId"`
	TemplateName         string                  `json:"templateName"`
	VendorID             uuid.UUID               `json:"vendorId"`
	Status               models.AssessmentStatus `json:"status"`
	DueDate              time.Time               `json:"dueDate"`
	Score                *int                    `json:"score"`
	Passed               *bool                   `json:"passed"`
	CompletionPercentage int                     `json:"completionPercentage"`
	IsOverdue            bool                    `json:"isOverdue"`
	DaysUntilDue         int                     `json:"daysUntilDue"`
}

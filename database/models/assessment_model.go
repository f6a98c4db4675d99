package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	AssessmentStatusPending    AssessmentStatus = "pending"
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusSubmitted  AssessmentStatus = "submitted"
	AssessmentStatusApproved   AssessmentStatus = "approved"
	AssessmentStatusRejected   AssessmentStatus = "rejected"
	// AssessmentStatusExpired is reserved for reporting layers. No code path
	// transitions into it; overdue assessments are detected via IsOverdue.
	AssessmentStatusExpired AssessmentStatus = "expired"
)

// Assessment is a template instance assigned to a single vendor. Score and
// passed are derived from the response set - they are recomputed after every
// response mutation and never accepted from clients.
type Assessment struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TemplateID uuid.UUID          `json:"templateId" gorm:"not null;type:uuid;"`
	Template   AssessmentTemplate `json:"template" gorm:"foreignKey:TemplateID;"`

	VendorID uuid.UUID `json:"vendorId" gorm:"not null;type:uuid;"`
	Vendor   Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE;"`

	AssignedByID *string   `json:"assignedById" gorm:"type:text"`
	AssignedDate time.Time `json:"assignedDate" gorm:"default:NOW();"`

	DueDate time.Time `json:"dueDate" gorm:"not null;"`

	Status AssessmentStatus `json:"status" gorm:"type:text;default:'pending';"`

	StartedDate   *time.Time `json:"startedDate"`
	SubmittedDate *time.Time `json:"submittedDate"`
	ReviewedDate  *time.Time `json:"reviewedDate"`
	ReviewedByID  *string    `json:"reviewedById" gorm:"type:text"`

	Score  *int  `json:"score" validate:"omitempty,min=0,max=100"`
	Passed *bool `json:"passed"`

	ReviewerNotes string `json:"reviewerNotes" gorm:"type:text"`
	VendorNotes   string `json:"vendorNotes" gorm:"type:text"`

	Responses []AssessmentResponse `json:"responses" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE;"`
}

func (m Assessment) TableName() string {
	return "assessments"
}

// IsOverdue reports whether the due date has passed while the assessment is
// still actionable. Once the vendor has submitted - or a reviewer has
// approved or rejected - the due date no longer applies.
func (m Assessment) IsOverdue(now time.Time) bool {
	if !m.DueDate.Before(truncateToDay(now)) {
		return false
	}
	switch m.Status {
	case AssessmentStatusSubmitted, AssessmentStatusApproved, AssessmentStatusRejected:
		return false
	}
	return true
}

// DaysUntilDue never reports negative days - overdue assessments show 0.
func (m Assessment) DaysUntilDue(now time.Time) int {
	days := int(m.DueDate.Sub(truncateToDay(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

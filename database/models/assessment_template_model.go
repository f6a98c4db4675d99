package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentType string

const (
	AssessmentTypeHIPAASecurity   AssessmentType = "hipaa_security"
	AssessmentTypeHIPAAPrivacy    AssessmentType = "hipaa_privacy"
	AssessmentTypeGeneralSecurity AssessmentType = "general_security"
	AssessmentTypeSOC2            AssessmentType = "soc2"
	AssessmentTypeVendorRisk      AssessmentType = "vendor_risk"
	AssessmentTypeCustom          AssessmentType = "custom"
)

// AssessmentTemplate is a reusable question set. Assessments are instantiated
// from a template per vendor and keep a reference back to it for the passing
// score.
type AssessmentTemplate struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID uuid.UUID `json:"organizationId" gorm:"uniqueIndex:idx_template_org_name;not null;type:uuid;"`
	Organization   Org       `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`

	Name        string `json:"name" gorm:"uniqueIndex:idx_template_org_name;not null;type:text;" validate:"required"`
	Description string `json:"description" gorm:"type:text"`

	AssessmentType AssessmentType `json:"assessmentType" gorm:"type:text;default:'vendor_risk';"`

	TotalPoints  int `json:"totalPoints" gorm:"default:100;"`
	PassingScore int `json:"passingScore" gorm:"default:70;" validate:"min=0,max=100"`

	IsActive bool `json:"isActive" gorm:"default:true;"`

	CreatedByID *string `json:"createdById" gorm:"type:text"`

	Questions []Question `json:"questions" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE;"`
}

func (m AssessmentTemplate) TableName() string {
	return "assessment_templates"
}

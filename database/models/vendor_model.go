package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorType string

const (
	VendorTypeMedicalDevice    VendorType = "medical_device"
	VendorTypePharmaceutical   VendorType = "pharmaceutical"
	VendorTypeITServices       VendorType = "it_services"
	VendorTypeFacilityServices VendorType = "facility_services"
	VendorTypeConsulting       VendorType = "consulting"
	VendorTypeStaffing         VendorType = "staffing"
	VendorTypeOther            VendorType = "other"
)

type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "critical"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMinimal  RiskLevel = "minimal"
)

type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusPartial      ComplianceStatus = "partial"
	ComplianceStatusNonCompliant ComplianceStatus = "non_compliant"
	ComplianceStatusPending      ComplianceStatus = "pending"
	ComplianceStatusExpired      ComplianceStatus = "expired"
)

type Vendor struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	OrganizationID uuid.UUID `json:"organizationId" gorm:"uniqueIndex:idx_vendor_org_slug;not null;type:uuid;"`
	Organization   Org       `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`

	Name string `json:"name" gorm:"type:text;not null;"`
	Slug string `json:"slug" gorm:"uniqueIndex:idx_vendor_org_slug;not null;type:text;"`

	VendorType VendorType `json:"vendorType" gorm:"type:text;default:'other';"`

	PrimaryContactName string `json:"primaryContactName" gorm:"type:text"`
	Email              string `json:"email" gorm:"type:text" validate:"omitempty,email"`
	Phone              string `json:"phone" gorm:"type:text"`
	Address            string `json:"address" gorm:"type:text"`
	Website            string `json:"website" gorm:"type:text" validate:"omitempty,url"`

	// risk score between 0 and 100, lower is better. The risk level is
	// derived from the score on every save.
	RiskScore int       `json:"riskScore" gorm:"default:50;" validate:"min=0,max=100"`
	RiskLevel RiskLevel `json:"riskLevel" gorm:"type:text;default:'medium';"`

	HandlesPHI    bool       `json:"handlesPhi" gorm:"default:false;"`
	BAASigned     bool       `json:"baaSigned" gorm:"default:false;"`
	BAASignedDate *time.Time `json:"baaSignedDate"`
	BAAExpiryDate *time.Time `json:"baaExpiryDate"`

	ComplianceStatus   ComplianceStatus `json:"complianceStatus" gorm:"type:text;default:'pending';"`
	LastAssessmentDate *time.Time       `json:"lastAssessmentDate"`
	NextAssessmentDate *time.Time       `json:"nextAssessmentDate"`

	ServicesProvided string `json:"servicesProvided" gorm:"type:text"`
	IsCritical       bool   `json:"isCritical" gorm:"default:false;"`
	IsActive         bool   `json:"isActive" gorm:"default:true;"`
	InternalNotes    string `json:"-" gorm:"type:text"`
}

func (m Vendor) TableName() string {
	return "vendors"
}

// the risk level is never set by clients - it always follows the score.
func (m *Vendor) BeforeSave(tx *gorm.DB) error {
	m.RiskLevel = RiskLevelFromScore(m.RiskScore)
	return nil
}

func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLevelCritical
	case score >= 60:
		return RiskLevelHigh
	case score >= 40:
		return RiskLevelMedium
	case score >= 20:
		return RiskLevelLow
	default:
		return RiskLevelMinimal
	}
}

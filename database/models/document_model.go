package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentTypeBAA           DocumentType = "baa"
	DocumentTypeInsuranceCOI  DocumentType = "insurance_coi"
	DocumentTypeLicense       DocumentType = "license"
	DocumentTypeCertification DocumentType = "certification"
	DocumentTypeContract      DocumentType = "contract"
	DocumentTypeOther         DocumentType = "other"
)

type DocumentStatus string

const (
	DocumentStatusActive        DocumentStatus = "active"
	DocumentStatusExpired       DocumentStatus = "expired"
	DocumentStatusPendingReview DocumentStatus = "pending_review"
	DocumentStatusRejected      DocumentStatus = "rejected"
)

// Document is a vendor compliance document. Documents form a linear version
// chain: the chain root carries version 1 and children reference it through
// ParentDocumentID. Exactly one member of a chain is flagged latest.
type Document struct {
	ID         uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt"`

	VendorID uuid.UUID `json:"vendorId" gorm:"index:idx_document_vendor_type;not null;type:uuid;"`
	Vendor   Vendor    `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE;"`

	OrganizationID uuid.UUID `json:"organizationId" gorm:"not null;type:uuid;"`
	Organization   Org       `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`

	Name         string       `json:"name" gorm:"type:text;not null;" validate:"required"`
	DocumentType DocumentType `json:"documentType" gorm:"index:idx_document_vendor_type;type:text;not null;"`

	CategoryID *uuid.UUID        `json:"categoryId" gorm:"type:uuid"`
	Category   *DocumentCategory `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`

	Tags []DocumentTag `json:"tags" gorm:"many2many:document_tag_assignments;"`

	// reference into the object storage layer, e.g. an S3 key. The storage
	// mechanics live outside this core.
	FileRef  string `json:"fileRef" gorm:"type:text;not null;" validate:"required"`
	FileSize int64  `json:"fileSize" gorm:"default:0;"`

	Version          int        `json:"version" gorm:"uniqueIndex:idx_document_parent_version;default:1;"`
	IsLatest         bool       `json:"isLatest" gorm:"default:true;"`
	ParentDocumentID *uuid.UUID `json:"parentDocumentId" gorm:"uniqueIndex:idx_document_parent_version;type:uuid"`
	VersionNotes     string     `json:"versionNotes" gorm:"type:text"`

	Status DocumentStatus `json:"status" gorm:"index:idx_document_status_expires;type:text;default:'pending_review';"`

	DocumentDate time.Time  `json:"documentDate" gorm:"not null;"`
	ExpiresAt    *time.Time `json:"expiresAt" gorm:"index:idx_document_status_expires"`

	UploadedByID string `json:"uploadedById" gorm:"type:text;not null;"`

	Notes string `json:"notes" gorm:"type:text"`

	IsVerified   bool       `json:"isVerified" gorm:"default:false;"`
	VerifiedByID *string    `json:"verifiedById" gorm:"type:text"`
	VerifiedAt   *time.Time `json:"verifiedAt"`
}

func (m Document) TableName() string {
	return "documents"
}

// BeforeSave keeps the status consistent with the expiry date: once
// expires_at has passed, the document is expired no matter what status the
// caller supplied.
func (m *Document) BeforeSave(tx *gorm.DB) error {
	if m.IsExpired(time.Now()) {
		m.Status = DocumentStatusExpired
	}
	return nil
}

func (m Document) IsExpired(now time.Time) bool {
	if m.ExpiresAt == nil {
		return false
	}
	return m.ExpiresAt.Before(truncateToDay(now))
}

// DaysUntilExpiration returns nil for documents that never expire.
func (m Document) DaysUntilExpiration(now time.Time) *int {
	if m.ExpiresAt == nil {
		return nil
	}
	days := int(m.ExpiresAt.Sub(truncateToDay(now)).Hours() / 24)
	return &days
}

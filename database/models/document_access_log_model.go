package models

import (
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/google/uuid"
)

type AccessType string

const (
	AccessTypeView     AccessType = "view"
	AccessTypeDownload AccessType = "download"
	AccessTypeUpdate   AccessType = "update"
	AccessTypeDelete   AccessType = "delete"
	AccessTypeShare    AccessType = "share"
	AccessTypeUpload   AccessType = "upload"
	AccessTypeVerify   AccessType = "verify"
)

// DocumentAccessLog is the append-only audit ledger. Entries are immutable
// once written - the repository rejects updates and deletes.
//
// DocumentID deliberately carries no foreign key constraint: HIPAA retention
// requires the ledger to outlive the document it refers to.
type DocumentAccessLog struct {
	ID uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`

	DocumentID uuid.UUID `json:"documentId" gorm:"index:idx_access_log_document;not null;type:uuid;"`

	UserID string `json:"userId" gorm:"index:idx_access_log_user;type:text;not null;"`

	OrganizationID uuid.UUID `json:"organizationId" gorm:"index:idx_access_log_org;not null;type:uuid;"`

	AccessType AccessType `json:"accessType" gorm:"index:idx_access_log_type;type:text;not null;"`

	IPAddress string `json:"ipAddress" gorm:"type:text;not null;"`
	UserAgent string `json:"userAgent" gorm:"type:text"`

	// reason for accessing PHI, if applicable
	AccessReason string `json:"accessReason" gorm:"type:text"`
	SessionID    string `json:"sessionId" gorm:"type:text"`

	AccessedAt time.Time `json:"accessedAt" gorm:"autoCreateTime;index:idx_access_log_document,sort:desc;index:idx_access_log_user,sort:desc;index:idx_access_log_org,sort:desc;index:idx_access_log_type,sort:desc"`

	ChangesMade database.JSONB `json:"changesMade" gorm:"type:jsonb"`
}

func (m DocumentAccessLog) TableName() string {
	return "document_access_logs"
}

package dtos

import (
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
)

// AccessLogFilter narrows ledger reads. Results are always ordered newest
// first regardless of the filter.
type AccessLogFilter struct {
	DocumentID     *uuid.UUID
	UserID         *string
	OrganizationID *uuid.UUID
	AccessType     *models.AccessType
	From           *time.Time
	To             *time.Time
}

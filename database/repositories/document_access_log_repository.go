package repositories

import (
	"errors"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrImmutableAccessLog is returned for any attempt to change or remove a
// persisted ledger entry. HIPAA requires the audit trail to be append-only.
var ErrImmutableAccessLog = errors.New("access logs cannot be modified or deleted per HIPAA requirements")

type documentAccessLogRepository struct {
	db *gorm.DB
}

func NewDocumentAccessLogRepository(db *gorm.DB) *documentAccessLogRepository {
	return &documentAccessLogRepository{
		db: db,
	}
}

func (g *documentAccessLogRepository) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *documentAccessLogRepository) Create(tx *gorm.DB, entry *models.DocumentAccessLog) error {
	return g.GetDB(tx).Create(entry).Error
}

func (g *documentAccessLogRepository) Read(id uuid.UUID) (models.DocumentAccessLog, error) {
	var t models.DocumentAccessLog
	err := g.db.First(&t, "id = ?", id).Error
	return t, err
}

func (g *documentAccessLogRepository) FindAll(filter dtos.AccessLogFilter) ([]models.DocumentAccessLog, error) {
	query := g.db.Model(&models.DocumentAccessLog{})

	if filter.DocumentID != nil {
		query = query.Where("document_id = ?", *filter.DocumentID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.AccessType != nil {
		query = query.Where("access_type = ?", *filter.AccessType)
	}
	if filter.From != nil {
		query = query.Where("accessed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("accessed_at <= ?", *filter.To)
	}

	var entries []models.DocumentAccessLog
	// review workflows always read the ledger newest first
	err := query.Order("accessed_at DESC").Find(&entries).Error
	return entries, err
}

func (g *documentAccessLogRepository) Update(tx *gorm.DB, entry *models.DocumentAccessLog) error {
	return ErrImmutableAccessLog
}

func (g *documentAccessLogRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	return ErrImmutableAccessLog
}

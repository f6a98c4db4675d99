package repositories

import (
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type documentRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (g *documentRepository) GetByVendorID(vendorID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := g.db.Preload("Category").Preload("Tags").
		Where("vendor_id = ?", vendorID).
		Order("uploaded_at DESC").
		Find(&documents).Error
	return documents, err
}

func (g *documentRepository) GetByOrgID(organizationID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := g.db.Preload("Category").Preload("Tags").
		Where("organization_id = ?", organizationID).
		Order("uploaded_at DESC").
		Find(&documents).Error
	return documents, err
}

// CreateVersion appends doc to the version chain parent belongs to.
//
// Chains are flattened to depth 1: children always reference the chain root,
// even when the caller hands in a child as parent. The root row is locked
// for the duration of the transaction so two concurrent calls cannot compute
// the same version number.
func (g *documentRepository) CreateVersion(parent models.Document, doc *models.Document) error {
	return g.Transaction(func(tx *gorm.DB) error {
		rootID := parent.ID
		if parent.ParentDocumentID != nil {
			rootID = *parent.ParentDocumentID
		}

		var root models.Document
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", rootID).First(&root).Error; err != nil {
			return errors.Wrap(err, "could not lock version chain root")
		}

		var maxVersion int
		if err := tx.Model(&models.Document{}).
			Where("id = ? OR parent_document_id = ?", rootID, rootID).
			Select("MAX(version)").Scan(&maxVersion).Error; err != nil {
			return err
		}
		if maxVersion == 0 {
			// the root predates explicit version numbering
			maxVersion = 1
		}

		if err := tx.Model(&models.Document{}).
			Where("id = ? OR parent_document_id = ?", rootID, rootID).
			Update("is_latest", false).Error; err != nil {
			return err
		}

		doc.ParentDocumentID = &rootID
		doc.Version = maxVersion + 1
		doc.IsLatest = true

		return tx.Create(doc).Error
	})
}

// GetVersions returns the whole chain the given document belongs to, newest
// version first.
func (g *documentRepository) GetVersions(id uuid.UUID) ([]models.Document, error) {
	doc, err := g.Read(id)
	if err != nil {
		return nil, err
	}

	rootID := doc.ID
	if doc.ParentDocumentID != nil {
		rootID = *doc.ParentDocumentID
	}

	var documents []models.Document
	err = g.db.Where("id = ? OR parent_document_id = ?", rootID, rootID).
		Order("version DESC").
		Find(&documents).Error
	return documents, err
}

func (g *documentRepository) GetExpiringBefore(organizationID uuid.UUID, deadline time.Time) ([]models.Document, error) {
	var documents []models.Document
	err := g.db.Where("organization_id = ? AND expires_at IS NOT NULL AND expires_at <= ? AND status = ?",
		organizationID, deadline, models.DocumentStatusActive).
		Order("expires_at ASC").
		Find(&documents).Error
	return documents, err
}

func (g *documentRepository) CountByType(organizationID uuid.UUID) (map[models.DocumentType]int64, error) {
	var rows []struct {
		DocumentType models.DocumentType
		Count        int64
	}
	err := g.db.Model(&models.Document{}).
		Select("document_type, COUNT(id) as count").
		Where("organization_id = ?", organizationID).
		Group("document_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.DocumentType]int64, len(rows))
	for _, row := range rows {
		counts[row.DocumentType] = row.Count
	}
	return counts, nil
}

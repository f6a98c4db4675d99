package repositories

import (
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assessmentRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Assessment, *gorm.DB]
}

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (g *assessmentRepository) ReadWithResponses(id uuid.UUID) (models.Assessment, error) {
	var t models.Assessment
	err := g.db.Model(models.Assessment{}).
		Preload("Template").
		Preload("Responses.Question").
		Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *assessmentRepository) GetByVendorID(vendorID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := g.db.Preload("Template").Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}

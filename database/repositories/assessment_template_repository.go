package repositories

import (
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assessmentTemplateRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.AssessmentTemplate, *gorm.DB]
}

func NewAssessmentTemplateRepository(db *gorm.DB) *assessmentTemplateRepository {
	return &assessmentTemplateRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AssessmentTemplate](db),
	}
}

func (g *assessmentTemplateRepository) ReadWithQuestions(id uuid.UUID) (models.AssessmentTemplate, error) {
	var t models.AssessmentTemplate
	err := g.db.Model(models.AssessmentTemplate{}).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC, questions.id ASC")
		}).
		Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *assessmentTemplateRepository) GetByOrgID(organizationID uuid.UUID) ([]models.AssessmentTemplate, error) {
	var templates []models.AssessmentTemplate
	err := g.db.Where("organization_id = ?", organizationID).Order("name ASC").Find(&templates).Error
	return templates, err
}

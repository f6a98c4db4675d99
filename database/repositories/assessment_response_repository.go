package repositories

import (
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assessmentResponseRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.AssessmentResponse, *gorm.DB]
}

func NewAssessmentResponseRepository(db *gorm.DB) *assessmentResponseRepository {
	return &assessmentResponseRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AssessmentResponse](db),
	}
}

func (g *assessmentResponseRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.AssessmentResponse, error) {
	var responses []models.AssessmentResponse
	err := g.db.Preload("Question").
		Joins("JOIN questions ON questions.id = assessment_responses.question_id").
		Where("assessment_responses.assessment_id = ?", assessmentID).
		Order("questions.question_order ASC, questions.id ASC").
		Find(&responses).Error
	return responses, err
}

func (g *assessmentResponseRepository) ReadByAssessmentAndQuestion(assessmentID uuid.UUID, questionID uuid.UUID) (models.AssessmentResponse, error) {
	var t models.AssessmentResponse
	err := g.db.Preload("Question").
		Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).
		First(&t).Error
	return t, err
}

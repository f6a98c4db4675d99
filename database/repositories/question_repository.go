package repositories

import (
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type questionRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Question, *gorm.DB]
}

func NewQuestionRepository(db *gorm.DB) *questionRepository {
	return &questionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Question](db),
	}
}

func (g *questionRepository) GetByTemplateID(templateID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := g.db.Where("template_id = ?", templateID).Order("question_order ASC, id ASC").Find(&questions).Error
	return questions, err
}

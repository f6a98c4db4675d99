package repositories

import (
	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentCategoryRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.DocumentCategory, *gorm.DB]
}

func NewDocumentCategoryRepository(db *gorm.DB) *documentCategoryRepository {
	return &documentCategoryRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.DocumentCategory](db),
	}
}

type documentTagRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.DocumentTag, *gorm.DB]
}

func NewDocumentTagRepository(db *gorm.DB) *documentTagRepository {
	return &documentTagRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.DocumentTag](db),
	}
}

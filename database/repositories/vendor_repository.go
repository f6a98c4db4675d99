package repositories

import (
	"fmt"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Vendor, *gorm.DB]
}

func NewVendorRepository(db *gorm.DB) *vendorRepository {
	return &vendorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Vendor](db),
	}
}

func (g *vendorRepository) Create(tx *gorm.DB, vendor *models.Vendor) error {
	if vendor.Slug == "" {
		vendor.Slug = slug.Make(vendor.Name)
	}
	firstFreeSlug, err := g.firstFreeSlug(vendor.OrganizationID, vendor.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	vendor.Slug = firstFreeSlug

	return g.GetDB(tx).Create(vendor).Error
}

func (g *vendorRepository) ReadBySlug(organizationID uuid.UUID, slug string) (models.Vendor, error) {
	var t models.Vendor
	err := g.db.Model(models.Vendor{}).Where("organization_id = ? AND slug = ?", organizationID, slug).First(&t).Error
	return t, err
}

func (g *vendorRepository) GetByOrgID(organizationID uuid.UUID) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := g.db.Where("organization_id = ?", organizationID).Order("name ASC").Find(&vendors).Error
	return vendors, err
}

// vendor slugs are only unique per organization, so the probe is scoped.
func (g *vendorRepository) firstFreeSlug(organizationID uuid.UUID, vendorSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Vendor{}).
		Where("organization_id = ? AND slug LIKE ?", organizationID, vendorSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == vendorSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return vendorSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", vendorSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}

package models_test

import (
	"testing"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/stretchr/testify/assert"
)

func TestRiskLevelFromScore(t *testing.T) {
	assert.Equal(t, models.RiskLevelMinimal, models.RiskLevelFromScore(0))
	assert.Equal(t, models.RiskLevelMinimal, models.RiskLevelFromScore(19))
	assert.Equal(t, models.RiskLevelLow, models.RiskLevelFromScore(20))
	assert.Equal(t, models.RiskLevelMedium, models.RiskLevelFromScore(40))
	assert.Equal(t, models.RiskLevelHigh, models.RiskLevelFromScore(60))
	assert.Equal(t, models.RiskLevelCritical, models.RiskLevelFromScore(80))
	assert.Equal(t, models.RiskLevelCritical, models.RiskLevelFromScore(100))
}

func TestVendorBeforeSaveDerivesRiskLevel(t *testing.T) {
	t.Run("should derive the level from the score", func(t *testing.T) {
		vendor := models.Vendor{RiskScore: 85}

		assert.NoError(t, vendor.BeforeSave(nil))
		assert.Equal(t, models.RiskLevelCritical, vendor.RiskLevel)
	})

	t.Run("should overwrite a client supplied level", func(t *testing.T) {
		vendor := models.Vendor{RiskScore: 10, RiskLevel: models.RiskLevelCritical}

		assert.NoError(t, vendor.BeforeSave(nil))
		assert.Equal(t, models.RiskLevelMinimal, vendor.RiskLevel)
	})
}

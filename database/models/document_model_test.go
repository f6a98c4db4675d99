package models_test

import (
	"testing"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/stretchr/testify/assert"
)

func TestDocumentExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should never expire without an expiry date", func(t *testing.T) {
		document := models.Document{}

		assert.False(t, document.IsExpired(now))
		assert.Nil(t, document.DaysUntilExpiration(now))
	})

	t.Run("should not be expired before the expiry date", func(t *testing.T) {
		document := models.Document{
			ExpiresAt: shared.Ptr(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		}

		assert.False(t, document.IsExpired(now))
		assert.Equal(t, 16, *document.DaysUntilExpiration(now))
	})

	t.Run("should be expired after the expiry date", func(t *testing.T) {
		document := models.Document{
			ExpiresAt: shared.Ptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		}

		assert.True(t, document.IsExpired(now))
		assert.Equal(t, -14, *document.DaysUntilExpiration(now))
	})
}

func TestDocumentBeforeSaveForcesExpiredStatus(t *testing.T) {
	t.Run("should demote an active document whose expiry date has passed", func(t *testing.T) {
		document := models.Document{
			Status:    models.DocumentStatusActive,
			ExpiresAt: shared.Ptr(time.Now().AddDate(0, 0, -1)),
		}

		assert.NoError(t, document.BeforeSave(nil))
		assert.Equal(t, models.DocumentStatusExpired, document.Status)
	})

	t.Run("should leave unexpired documents alone", func(t *testing.T) {
		document := models.Document{
			Status:    models.DocumentStatusActive,
			ExpiresAt: shared.Ptr(time.Now().AddDate(0, 0, 30)),
		}

		assert.NoError(t, document.BeforeSave(nil))
		assert.Equal(t, models.DocumentStatusActive, document.Status)
	})
}

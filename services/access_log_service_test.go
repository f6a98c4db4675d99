package services_test

import (
	"errors"
	"testing"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/mocks"
	"github.com/caas-platform/vendorguard/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogAccess(t *testing.T) {
	t.Run("should persist the entry", func(t *testing.T) {
		repository := mocks.NewDocumentAccessLogRepository(t)
		repository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := services.NewAccessLogService(repository)

		assert.NoError(t, service.LogAccess(models.DocumentAccessLog{
			DocumentID: uuid.New(),
			UserID:     "user-123",
			AccessType: models.AccessTypeView,
		}))
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		repository := mocks.NewDocumentAccessLogRepository(t)
		repository.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		service := services.NewAccessLogService(repository)

		assert.Error(t, service.LogAccess(models.DocumentAccessLog{}))
	})
}

func TestLogAccessBestEffort(t *testing.T) {
	t.Run("should swallow repository errors", func(t *testing.T) {
		repository := mocks.NewDocumentAccessLogRepository(t)
		repository.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		service := services.NewAccessLogService(repository)

		// must not panic and must not propagate anything
		service.LogAccessBestEffort(models.DocumentAccessLog{
			DocumentID: uuid.New(),
			UserID:     "user-123",
			AccessType: models.AccessTypeDownload,
		})
	})
}

func TestFindAll(t *testing.T) {
	repository := mocks.NewDocumentAccessLogRepository(t)

	documentID := uuid.New()
	expected := []models.DocumentAccessLog{
		{DocumentID: documentID, AccessType: models.AccessTypeView},
	}
	repository.On("FindAll", dtos.AccessLogFilter{DocumentID: &documentID}).Return(expected, nil)

	service := services.NewAccessLogService(repository)

	entries, err := service.FindAll(dtos.AccessLogFilter{DocumentID: &documentID})

	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}

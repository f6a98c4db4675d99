package models_test

import (
	"testing"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/stretchr/testify/assert"
)

func TestAssessmentIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("should not be overdue when the due date is in the future", func(t *testing.T) {
		assessment := models.Assessment{
			DueDate: now.AddDate(0, 0, 7),
			Status:  models.AssessmentStatusInProgress,
		}

		assert.False(t, assessment.IsOverdue(now))
	})

	t.Run("should not be overdue on the due date itself", func(t *testing.T) {
		assessment := models.Assessment{
			DueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Status:  models.AssessmentStatusPending,
		}

		assert.False(t, assessment.IsOverdue(now))
	})

	t.Run("should be overdue when the due date has passed and the assessment is still actionable", func(t *testing.T) {
		assessment := models.Assessment{
			DueDate: now.AddDate(0, 0, -1),
			Status:  models.AssessmentStatusInProgress,
		}

		assert.True(t, assessment.IsOverdue(now))
	})

	t.Run("should never be overdue once handed in or reviewed", func(t *testing.T) {
		for _, status := range []models.AssessmentStatus{
			models.AssessmentStatusSubmitted,
			models.AssessmentStatusApproved,
			models.AssessmentStatusRejected,
		} {
			assessment := models.Assessment{
				DueDate: now.AddDate(0, 0, -30),
				Status:  status,
			}

			assert.False(t, assessment.IsOverdue(now), "status %s", status)
		}
	})
}

func TestAssessmentDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("should report the remaining days", func(t *testing.T) {
		assessment := models.Assessment{
			DueDate: time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
		}

		assert.Equal(t, 10, assessment.DaysUntilDue(now))
	})

	t.Run("should floor at zero for overdue assessments", func(t *testing.T) {
		assessment := models.Assessment{
			DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}

		assert.Equal(t, 0, assessment.DaysUntilDue(now))
	})
}

package models_test

import (
	"testing"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/stretchr/testify/assert"
)

func TestAutoScore(t *testing.T) {
	t.Run("yes/no questions", func(t *testing.T) {
		question := models.Question{
			QuestionType:  models.QuestionTypeYesNo,
			Points:        10,
			CorrectAnswer: shared.Ptr("yes"),
		}

		t.Run("should award full points for the correct answer", func(t *testing.T) {
			response := models.AssessmentResponse{AnswerText: "yes"}

			assert.Equal(t, 10, response.AutoScore(question))
			assert.Equal(t, 10, response.PointsEarned)
		})

		t.Run("should award zero points for the wrong answer", func(t *testing.T) {
			response := models.AssessmentResponse{AnswerText: "no"}

			assert.Equal(t, 0, response.AutoScore(question))
		})

		t.Run("should reset previously earned points when the answer changes to wrong", func(t *testing.T) {
			response := models.AssessmentResponse{AnswerText: "no", PointsEarned: 10}

			assert.Equal(t, 0, response.AutoScore(question))
		})

		t.Run("should award zero points without an answer key", func(t *testing.T) {
			response := models.AssessmentResponse{AnswerText: "yes"}

			assert.Equal(t, 0, response.AutoScore(models.Question{
				QuestionType: models.QuestionTypeYesNo,
				Points:       10,
			}))
		})
	})

	t.Run("multiple choice questions", func(t *testing.T) {
		question := models.Question{
			QuestionType:  models.QuestionTypeMultipleChoice,
			Points:        5,
			CorrectAnswer: shared.Ptr("annually"),
		}

		t.Run("should award full points for the correct selection", func(t *testing.T) {
			response := models.AssessmentResponse{
				AnswerJSON: database.JSONB{"selected": "annually"},
			}

			assert.Equal(t, 5, response.AutoScore(question))
		})

		t.Run("should award zero points for a wrong selection", func(t *testing.T) {
			response := models.AssessmentResponse{
				AnswerJSON: database.JSONB{"selected": "never"},
			}

			assert.Equal(t, 0, response.AutoScore(question))
		})

		t.Run("should award zero points without a selection", func(t *testing.T) {
			response := models.AssessmentResponse{}

			assert.Equal(t, 0, response.AutoScore(question))
		})
	})

	t.Run("should leave manually reviewed types untouched", func(t *testing.T) {
		for _, questionType := range []models.QuestionType{
			models.QuestionTypeText,
			models.QuestionTypeNumber,
			models.QuestionTypeDate,
			models.QuestionTypeFile,
		} {
			response := models.AssessmentResponse{AnswerText: "something", PointsEarned: 3}

			assert.Equal(t, 3, response.AutoScore(models.Question{
				QuestionType: questionType,
				Points:       10,
			}), "question type %s", questionType)
		}
	})
}

func TestIsAnswered(t *testing.T) {
	assert.False(t, models.AssessmentResponse{}.IsAnswered())
	assert.True(t, models.AssessmentResponse{AnswerText: "yes"}.IsAnswered())
}

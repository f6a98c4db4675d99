package models_test

import (
	"testing"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestQuestionValidate(t *testing.T) {
	t.Run("should reject multiple choice questions without choices", func(t *testing.T) {
		question := models.Question{QuestionType: models.QuestionTypeMultipleChoice}

		assert.Error(t, question.Validate())
	})

	t.Run("should accept multiple choice questions with choices", func(t *testing.T) {
		question := models.Question{
			QuestionType: models.QuestionTypeMultipleChoice,
			Choices:      datatypes.JSON(`["annually","quarterly","never"]`),
		}

		assert.NoError(t, question.Validate())
		assert.Equal(t, []string{"annually", "quarterly", "never"}, question.ChoiceList())
	})

	t.Run("should reject yes/no questions with a bogus answer key", func(t *testing.T) {
		question := models.Question{
			QuestionType:  models.QuestionTypeYesNo,
			CorrectAnswer: shared.Ptr("maybe"),
		}

		assert.Error(t, question.Validate())
	})

	t.Run("should accept yes/no questions without an answer key", func(t *testing.T) {
		question := models.Question{QuestionType: models.QuestionTypeYesNo}

		assert.NoError(t, question.Validate())
	})

	t.Run("should reject negative points", func(t *testing.T) {
		question := models.Question{QuestionType: models.QuestionTypeText, Points: -1}

		assert.Error(t, question.Validate())
	})
}

func TestAutoScorable(t *testing.T) {
	assert.True(t, models.Question{QuestionType: models.QuestionTypeYesNo}.AutoScorable())
	assert.True(t, models.Question{QuestionType: models.QuestionTypeMultipleChoice}.AutoScorable())
	assert.False(t, models.Question{QuestionType: models.QuestionTypeText}.AutoScorable())
	assert.False(t, models.Question{QuestionType: models.QuestionTypeFile}.AutoScorable())
}

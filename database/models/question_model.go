package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeNumber         QuestionType = "number"
	QuestionTypeDate           QuestionType = "date"
	QuestionTypeFile           QuestionType = "file"
)

type Question struct {
	ID uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`

	TemplateID uuid.UUID          `json:"templateId" gorm:"not null;type:uuid;"`
	Template   AssessmentTemplate `json:"-" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE;"`

	QuestionText string `json:"questionText" gorm:"type:text;not null;" validate:"required"`
	HelpText     string `json:"helpText" gorm:"type:text"`

	QuestionType QuestionType `json:"questionType" gorm:"type:text;default:'yes_no';"`

	// choices is only meaningful for multiple_choice questions.
	Choices datatypes.JSON `json:"choices" gorm:"type:jsonb"`

	Points int `json:"points" gorm:"default:1;" validate:"min=0"`

	// what answer gives full points during auto-scoring. nil means the
	// question always needs manual review.
	CorrectAnswer *string `json:"correctAnswer" gorm:"type:text"`

	Section string `json:"section" gorm:"type:text"`
	Order   int    `json:"order" gorm:"column:question_order;default:0;"`

	IsRequired bool `json:"isRequired" gorm:"default:true;"`
	IsCritical bool `json:"isCritical" gorm:"default:false;"`
}

func (m Question) TableName() string {
	return "questions"
}

// ChoiceList decodes the jsonb choices column into a string slice.
func (m Question) ChoiceList() []string {
	if len(m.Choices) == 0 {
		return nil
	}
	var choices []string
	if err := json.Unmarshal(m.Choices, &choices); err != nil {
		return nil
	}
	return choices
}

// Validate checks that the question definition matches its type. It is
// called at the boundary before a question is persisted.
func (m Question) Validate() error {
	if m.Points < 0 {
		return fmt.Errorf("points must not be negative")
	}

	switch m.QuestionType {
	case QuestionTypeMultipleChoice:
		if len(m.ChoiceList()) == 0 {
			return fmt.Errorf("multiple choice questions must have choices")
		}
	case QuestionTypeYesNo:
		if m.CorrectAnswer != nil && *m.CorrectAnswer != "yes" && *m.CorrectAnswer != "no" {
			return fmt.Errorf("yes/no questions must have \"yes\" or \"no\" as correct answer")
		}
	}

	return nil
}

// AutoScorable reports whether the question type has an objective answer
// key. text, number, date and file answers always go through manual review.
func (m Question) AutoScorable() bool {
	return m.QuestionType == QuestionTypeYesNo || m.QuestionType == QuestionTypeMultipleChoice
}

package models

import (
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/google/uuid"
)

// AssessmentResponse holds the answer of one vendor to one question. One
// placeholder row is created per question when the assessment is assigned,
// so the response set is always complete and addressable.
type AssessmentResponse struct {
	ID uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid();"`

	AssessmentID uuid.UUID  `json:"assessmentId" gorm:"uniqueIndex:idx_response_assessment_question;not null;type:uuid;"`
	Assessment   Assessment `json:"-" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE;"`

	QuestionID uuid.UUID `json:"questionId" gorm:"uniqueIndex:idx_response_assessment_question;not null;type:uuid;"`
	Question   Question  `json:"question" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`

	AnswerText string         `json:"answerText" gorm:"type:text"`
	AnswerJSON database.JSONB `json:"answerJson" gorm:"type:jsonb"`
	AnswerFile string         `json:"answerFile" gorm:"type:text"`

	PointsEarned int `json:"pointsEarned" gorm:"default:0;"`

	IsApproved      *bool   `json:"isApproved"`
	ReviewerComment string  `json:"reviewerComment" gorm:"type:text"`
	ReviewedByID    *string `json:"reviewedById" gorm:"type:text"`

	AnsweredAt time.Time `json:"answeredAt" gorm:"autoUpdateTime"`
}

func (m AssessmentResponse) TableName() string {
	return "assessment_responses"
}

// IsAnswered reports whether the vendor has provided a text answer.
// Completion tracking counts answered questions regardless of correctness.
func (m AssessmentResponse) IsAnswered() bool {
	return m.AnswerText != ""
}

// AutoScore grades the response against the question's answer key where the
// question type permits objective grading. Manual-review types keep whatever
// points a reviewer assigned.
func (m *AssessmentResponse) AutoScore(question Question) int {
	switch question.QuestionType {
	case QuestionTypeYesNo:
		if question.CorrectAnswer != nil && m.AnswerText == *question.CorrectAnswer {
			m.PointsEarned = question.Points
		} else {
			m.PointsEarned = 0
		}
	case QuestionTypeMultipleChoice:
		if question.CorrectAnswer != nil && m.AnswerJSON != nil && m.AnswerJSON["selected"] == *question.CorrectAnswer {
			m.PointsEarned = question.Points
		} else {
			m.PointsEarned = 0
		}
	}
	// text, number, date and file answers are scored by a reviewer

	return m.PointsEarned
}

package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AssessmentService struct {
	assessmentRepository shared.AssessmentRepository
	responseRepository   shared.AssessmentResponseRepository
	questionRepository   shared.QuestionRepository
	templateRepository   shared.AssessmentTemplateRepository
}

func NewAssessmentService(assessmentRepository shared.AssessmentRepository, responseRepository shared.AssessmentResponseRepository, questionRepository shared.QuestionRepository, templateRepository shared.AssessmentTemplateRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: assessmentRepository,
		responseRepository:   responseRepository,
		questionRepository:   questionRepository,
		templateRepository:   templateRepository,
	}
}

// CreateAssessment instantiates a template for a vendor. One empty response
// placeholder is created per template question - in the same transaction as
// the assessment itself - so the response set is complete from the start and
// downstream code never needs null checks.
func (s *AssessmentService) CreateAssessment(template models.AssessmentTemplate, vendorID uuid.UUID, dueDate time.Time, assignedBy string, vendorNotes string) (models.Assessment, error) {
	if !dueDate.After(time.Now()) {
		return models.Assessment{}, echo.NewHTTPError(400, "due date must be in the future")
	}

	questions, err := s.questionRepository.GetByTemplateID(template.ID)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not load template questions").WithInternal(err)
	}

	assessment := models.Assessment{
		TemplateID:   template.ID,
		VendorID:     vendorID,
		DueDate:      dueDate,
		Status:       models.AssessmentStatusPending,
		AssignedByID: &assignedBy,
		AssignedDate: time.Now(),
		VendorNotes:  vendorNotes,
	}

	err = s.assessmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.assessmentRepository.Create(tx, &assessment); err != nil {
			return err
		}

		placeholders := utils.Map(questions, func(q models.Question) models.AssessmentResponse {
			return models.AssessmentResponse{
				AssessmentID: assessment.ID,
				QuestionID:   q.ID,
				PointsEarned: 0,
			}
		})

		return s.responseRepository.CreateBatch(tx, placeholders)
	})
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not create assessment").WithInternal(err)
	}

	return assessment, nil
}

// SubmitResponse records a vendor's answer on the pre-created placeholder,
// auto-scores it where the question type permits and recomputes the
// assessment score in the same transaction.
func (s *AssessmentService) SubmitResponse(assessmentID uuid.UUID, questionID uuid.UUID, submission dtos.ResponseSubmission) (models.AssessmentResponse, error) {
	response, err := s.responseRepository.ReadByAssessmentAndQuestion(assessmentID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AssessmentResponse{}, echo.NewHTTPError(404, "could not find response for this assessment and question")
		}
		return models.AssessmentResponse{}, err
	}

	assessment, err := s.assessmentRepository.ReadWithResponses(assessmentID)
	if err != nil {
		return models.AssessmentResponse{}, echo.NewHTTPError(404, "could not find assessment").WithInternal(err)
	}

	switch assessment.Status {
	case models.AssessmentStatusSubmitted, models.AssessmentStatusApproved, models.AssessmentStatusRejected:
		return models.AssessmentResponse{}, echo.NewHTTPError(400, fmt.Sprintf("assessment is %s and no longer accepts responses", assessment.Status))
	}

	if err := validateSubmission(response.Question, submission); err != nil {
		return models.AssessmentResponse{}, err
	}

	response.AnswerText = submission.AnswerText
	response.AnswerJSON = submission.AnswerJSON
	response.AnswerFile = submission.AnswerFile
	response.AutoScore(response.Question)

	err = s.responseRepository.Transaction(func(tx shared.DB) error {
		if err := s.responseRepository.Save(tx, &response); err != nil {
			return err
		}

		if assessment.Status == models.AssessmentStatusPending {
			assessment.Status = models.AssessmentStatusInProgress
			assessment.StartedDate = shared.Ptr(time.Now())
		}

		return s.recomputeAndSave(tx, &assessment, response)
	})
	if err != nil {
		return models.AssessmentResponse{}, echo.NewHTTPError(500, "could not save response").WithInternal(err)
	}

	return response, nil
}

// ScoreResponseManually is the reviewer path for question types without an
// objective answer key.
func (s *AssessmentService) ScoreResponseManually(assessmentID uuid.UUID, questionID uuid.UUID, score dtos.ManualScore, reviewer string) (models.AssessmentResponse, error) {
	response, err := s.responseRepository.ReadByAssessmentAndQuestion(assessmentID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AssessmentResponse{}, echo.NewHTTPError(404, "could not find response for this assessment and question")
		}
		return models.AssessmentResponse{}, err
	}

	if response.Question.AutoScorable() {
		return models.AssessmentResponse{}, echo.NewHTTPError(400, fmt.Sprintf("%s questions are scored automatically", response.Question.QuestionType))
	}

	if score.PointsEarned < 0 || score.PointsEarned > response.Question.Points {
		return models.AssessmentResponse{}, echo.NewHTTPError(400, fmt.Sprintf("points earned must be between 0 and %d", response.Question.Points))
	}

	assessment, err := s.assessmentRepository.ReadWithResponses(assessmentID)
	if err != nil {
		return models.AssessmentResponse{}, echo.NewHTTPError(404, "could not find assessment").WithInternal(err)
	}

	response.PointsEarned = score.PointsEarned
	response.IsApproved = score.IsApproved
	response.ReviewerComment = score.ReviewerComment
	response.ReviewedByID = &reviewer

	err = s.responseRepository.Transaction(func(tx shared.DB) error {
		if err := s.responseRepository.Save(tx, &response); err != nil {
			return err
		}
		return s.recomputeAndSave(tx, &assessment, response)
	})
	if err != nil {
		return models.AssessmentResponse{}, echo.NewHTTPError(500, "could not save manual score").WithInternal(err)
	}

	return response, nil
}

// RecomputeScore re-derives score and passed from the current response set.
func (s *AssessmentService) RecomputeScore(assessmentID uuid.UUID) (models.Assessment, error) {
	assessment, err := s.assessmentRepository.ReadWithResponses(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Assessment{}, echo.NewHTTPError(404, "could not find assessment")
		}
		return models.Assessment{}, err
	}

	score, passed := CalculateScore(assessment.Responses, assessment.Template.PassingScore)
	assessment.Score = &score
	assessment.Passed = &passed

	if err := s.assessmentRepository.Save(nil, &assessment); err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not save assessment score").WithInternal(err)
	}

	return assessment, nil
}

// SubmitAssessment hands the assessment in for review. The score is
// recomputed first so reviewers always see a value derived from the final
// response set.
func (s *AssessmentService) SubmitAssessment(assessmentID uuid.UUID) (models.Assessment, error) {
	assessment, err := s.assessmentRepository.ReadWithResponses(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Assessment{}, echo.NewHTTPError(404, "could not find assessment")
		}
		return models.Assessment{}, err
	}

	switch assessment.Status {
	case models.AssessmentStatusSubmitted, models.AssessmentStatusApproved, models.AssessmentStatusRejected:
		return models.Assessment{}, echo.NewHTTPError(400, fmt.Sprintf("assessment has already been %s", assessment.Status))
	}

	score, passed := CalculateScore(assessment.Responses, assessment.Template.PassingScore)
	assessment.Score = &score
	assessment.Passed = &passed
	assessment.Status = models.AssessmentStatusSubmitted
	assessment.SubmittedDate = shared.Ptr(time.Now())

	if err := s.assessmentRepository.Save(nil, &assessment); err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not submit assessment").WithInternal(err)
	}

	return assessment, nil
}

func (s *AssessmentService) ReviewAssessment(assessmentID uuid.UUID, review dtos.AssessmentReviewRequest, reviewer string) (models.Assessment, error) {
	assessment, err := s.assessmentRepository.ReadWithResponses(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Assessment{}, echo.NewHTTPError(404, "could not find assessment")
		}
		return models.Assessment{}, err
	}

	if assessment.Status != models.AssessmentStatusSubmitted {
		return models.Assessment{}, echo.NewHTTPError(400, "only submitted assessments can be reviewed")
	}

	if review.Approved {
		assessment.Status = models.AssessmentStatusApproved
	} else {
		assessment.Status = models.AssessmentStatusRejected
	}
	assessment.ReviewedDate = shared.Ptr(time.Now())
	assessment.ReviewedByID = &reviewer
	assessment.ReviewerNotes = review.ReviewerNotes

	if err := s.assessmentRepository.Save(nil, &assessment); err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not review assessment").WithInternal(err)
	}

	return assessment, nil
}

// CompletionPercentage reports how much of the assessment has been answered,
// independent of correctness.
func (s *AssessmentService) CompletionPercentage(assessmentID uuid.UUID) (int, error) {
	responses, err := s.responseRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return 0, err
	}

	return Completion(responses), nil
}

func (s *AssessmentService) recomputeAndSave(tx shared.DB, assessment *models.Assessment, updated models.AssessmentResponse) error {
	// the preloaded response set still holds the pre-mutation row
	responses := utils.Map(assessment.Responses, func(r models.AssessmentResponse) models.AssessmentResponse {
		if r.ID == updated.ID {
			return updated
		}
		return r
	})

	score, passed := CalculateScore(responses, assessment.Template.PassingScore)
	assessment.Score = &score
	assessment.Passed = &passed

	return s.assessmentRepository.Save(tx, assessment)
}

// CalculateScore derives the percentage score and pass outcome from a
// response set. Qualifying responses are those whose question is required or
// which were answered anyway - optional-but-answered questions count. A set
// with zero qualifying points always yields 0/false, never a division error.
func CalculateScore(responses []models.AssessmentResponse, passingScore int) (int, bool) {
	qualifying := utils.Filter(responses, func(r models.AssessmentResponse) bool {
		return r.Question.IsRequired || r.IsAnswered()
	})

	totalPoints := utils.Reduce(qualifying, func(acc int, r models.AssessmentResponse) int {
		return acc + r.Question.Points
	}, 0)
	earnedPoints := utils.Reduce(qualifying, func(acc int, r models.AssessmentResponse) int {
		return acc + r.PointsEarned
	}, 0)

	if totalPoints <= 0 {
		return 0, false
	}

	score := earnedPoints * 100 / totalPoints
	return score, score >= passingScore
}

// Completion is the answered-question ratio in percent.
func Completion(responses []models.AssessmentResponse) int {
	if len(responses) == 0 {
		return 0
	}

	answered := len(utils.Filter(responses, models.AssessmentResponse.IsAnswered))
	return answered * 100 / len(responses)
}

func validateSubmission(question models.Question, submission dtos.ResponseSubmission) error {
	switch question.QuestionType {
	case models.QuestionTypeYesNo:
		if submission.AnswerText != "yes" && submission.AnswerText != "no" {
			return echo.NewHTTPError(400, "answer must be \"yes\" or \"no\"")
		}
	case models.QuestionTypeMultipleChoice:
		selected, ok := submission.AnswerJSON["selected"].(string)
		if !ok || selected == "" {
			return echo.NewHTTPError(400, "multiple choice answers must have a selected option")
		}
		choices := question.ChoiceList()
		valid := false
		for _, choice := range choices {
			if choice == selected {
				valid = true
				break
			}
		}
		if !valid {
			return echo.NewHTTPError(400, fmt.Sprintf("%q is not one of the available choices", selected))
		}
	case models.QuestionTypeNumber:
		if _, err := strconv.ParseFloat(submission.AnswerText, 64); err != nil {
			return echo.NewHTTPError(400, "answer must be a valid number")
		}
	case models.QuestionTypeDate:
		if _, err := time.Parse("2006-01-02", submission.AnswerText); err != nil {
			return echo.NewHTTPError(400, "answer must be a date in YYYY-MM-DD format")
		}
	case models.QuestionTypeFile:
		if submission.AnswerFile == "" {
			return echo.NewHTTPError(400, "a file reference is required for this question")
		}
	}

	return nil
}

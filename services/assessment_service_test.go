package services_test

import (
	"testing"
	"time"

	"github.com/caas-platform/vendorguard/database"
	"github.com/caas-platform/vendorguard/database/models"
	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/mocks"
	"github.com/caas-platform/vendorguard/services"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func runInTransaction(fn func(*gorm.DB) error) error {
	return fn(nil)
}

func TestCalculateScore(t *testing.T) {
	t.Run("should floor the percentage and compare against the passing score", func(t *testing.T) {
		// a correctly answered 10 point yes/no question and an answered but
		// not yet reviewed 5 point text question: 10 of 15 points is 66%
		responses := []models.AssessmentResponse{
			{
				Question: models.Question{
					QuestionType: models.QuestionTypeYesNo,
					Points:       10,
					IsRequired:   true,
				},
				AnswerText:   "yes",
				PointsEarned: 10,
			},
			{
				Question: models.Question{
					QuestionType: models.QuestionTypeText,
					Points:       5,
					IsRequired:   true,
				},
				AnswerText: "we use full disk encryption",
			},
		}

		score, passed := services.CalculateScore(responses, 70)
		assert.Equal(t, 66, score)
		assert.False(t, passed)

		score, passed = services.CalculateScore(responses, 66)
		assert.Equal(t, 66, score)
		assert.True(t, passed)
	})

	t.Run("should skip optional unanswered questions", func(t *testing.T) {
		responses := []models.AssessmentResponse{
			{
				Question:     models.Question{Points: 10, IsRequired: true, QuestionType: models.QuestionTypeYesNo},
				AnswerText:   "yes",
				PointsEarned: 10,
			},
			{
				Question: models.Question{Points: 90, IsRequired: false, QuestionType: models.QuestionTypeText},
			},
		}

		score, passed := services.CalculateScore(responses, 70)
		assert.Equal(t, 100, score)
		assert.True(t, passed)
	})

	t.Run("should count optional questions once they are answered", func(t *testing.T) {
		responses := []models.AssessmentResponse{
			{
				Question:     models.Question{Points: 10, IsRequired: true, QuestionType: models.QuestionTypeYesNo},
				AnswerText:   "yes",
				PointsEarned: 10,
			},
			{
				Question:   models.Question{Points: 10, IsRequired: false, QuestionType: models.QuestionTypeText},
				AnswerText: "answered anyway",
			},
		}

		score, passed := services.CalculateScore(responses, 70)
		assert.Equal(t, 50, score)
		assert.False(t, passed)
	})

	t.Run("should yield zero and not passed for an empty point pool", func(t *testing.T) {
		score, passed := services.CalculateScore(nil, 70)
		assert.Equal(t, 0, score)
		assert.False(t, passed)

		score, passed = services.CalculateScore([]models.AssessmentResponse{
			{Question: models.Question{Points: 0, IsRequired: true}},
		}, 0)
		assert.Equal(t, 0, score)
		assert.False(t, passed)
	})
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 0, services.Completion(nil))

	responses := []models.AssessmentResponse{
		{AnswerText: "yes"},
		{AnswerText: "no"},
		{},
		{},
	}
	assert.Equal(t, 50, services.Completion(responses))
}

func TestCreateAssessment(t *testing.T) {
	template := models.AssessmentTemplate{
		ID:           uuid.New(),
		PassingScore: 70,
	}
	vendorID := uuid.New()

	t.Run("should reject a due date that is not in the future", func(t *testing.T) {
		service := services.NewAssessmentService(mocks.NewAssessmentRepository(t), mocks.NewAssessmentResponseRepository(t), mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		_, err := service.CreateAssessment(template, vendorID, time.Now().AddDate(0, 0, -1), "user-123", "")

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should create one placeholder response per template question", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		responseRepository := mocks.NewAssessmentResponseRepository(t)
		questionRepository := mocks.NewQuestionRepository(t)

		questions := []models.Question{
			{ID: uuid.New(), TemplateID: template.ID},
			{ID: uuid.New(), TemplateID: template.ID},
			{ID: uuid.New(), TemplateID: template.ID},
		}

		questionRepository.On("GetByTemplateID", template.ID).Return(questions, nil)
		assessmentRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		assessmentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		responseRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(responses []models.AssessmentResponse) bool {
			return len(responses) == len(questions)
		})).Return(nil)

		service := services.NewAssessmentService(assessmentRepository, responseRepository, questionRepository, mocks.NewAssessmentTemplateRepository(t))

		assessment, err := service.CreateAssessment(template, vendorID, time.Now().AddDate(0, 0, 14), "user-123", "please fill this in")

		assert.NoError(t, err)
		assert.Equal(t, models.AssessmentStatusPending, assessment.Status)
		assert.Equal(t, vendorID, assessment.VendorID)
	})
}

func TestSubmitResponse(t *testing.T) {
	assessmentID := uuid.New()
	questionID := uuid.New()

	newService := func(t *testing.T, question models.Question, status models.AssessmentStatus) (*services.AssessmentService, *mocks.AssessmentRepository, *mocks.AssessmentResponseRepository) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		responseRepository := mocks.NewAssessmentResponseRepository(t)

		response := models.AssessmentResponse{
			ID:           uuid.New(),
			AssessmentID: assessmentID,
			QuestionID:   questionID,
			Question:     question,
		}
		responseRepository.On("ReadByAssessmentAndQuestion", assessmentID, questionID).Return(response, nil)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:        assessmentID,
			Status:    status,
			Template:  models.AssessmentTemplate{PassingScore: 70},
			Responses: []models.AssessmentResponse{response},
		}, nil)

		service := services.NewAssessmentService(assessmentRepository, responseRepository, mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))
		return service, assessmentRepository, responseRepository
	}

	t.Run("should auto-score a yes/no answer and move the assessment to in progress", func(t *testing.T) {
		question := models.Question{
			ID:            questionID,
			QuestionType:  models.QuestionTypeYesNo,
			Points:        10,
			IsRequired:    true,
			CorrectAnswer: shared.Ptr("yes"),
		}

		service, assessmentRepository, responseRepository := newService(t, question, models.AssessmentStatusPending)

		responseRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		responseRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		var savedAssessment models.Assessment
		assessmentRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			savedAssessment = *args.Get(1).(*models.Assessment)
		}).Return(nil)

		response, err := service.SubmitResponse(assessmentID, questionID, dtos.ResponseSubmission{AnswerText: "yes"})

		assert.NoError(t, err)
		assert.Equal(t, 10, response.PointsEarned)
		assert.Equal(t, models.AssessmentStatusInProgress, savedAssessment.Status)
		assert.NotNil(t, savedAssessment.StartedDate)
		assert.Equal(t, 100, *savedAssessment.Score)
		assert.True(t, *savedAssessment.Passed)
	})

	t.Run("should reject answers other than yes or no", func(t *testing.T) {
		question := models.Question{ID: questionID, QuestionType: models.QuestionTypeYesNo, Points: 10}
		service, _, _ := newService(t, question, models.AssessmentStatusInProgress)

		_, err := service.SubmitResponse(assessmentID, questionID, dtos.ResponseSubmission{AnswerText: "probably"})

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should reject a multiple choice selection outside the choices", func(t *testing.T) {
		question := models.Question{
			ID:           questionID,
			QuestionType: models.QuestionTypeMultipleChoice,
			Choices:      []byte(`["annually","quarterly"]`),
			Points:       5,
		}
		service, _, _ := newService(t, question, models.AssessmentStatusInProgress)

		_, err := service.SubmitResponse(assessmentID, questionID, dtos.ResponseSubmission{
			AnswerJSON: database.JSONB{"selected": "never"},
		})

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should reject non-numeric answers to number questions", func(t *testing.T) {
		question := models.Question{ID: questionID, QuestionType: models.QuestionTypeNumber}
		service, _, _ := newService(t, question, models.AssessmentStatusInProgress)

		_, err := service.SubmitResponse(assessmentID, questionID, dtos.ResponseSubmission{AnswerText: "a lot"})

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should refuse responses on a submitted assessment", func(t *testing.T) {
		question := models.Question{ID: questionID, QuestionType: models.QuestionTypeText}
		service, _, _ := newService(t, question, models.AssessmentStatusSubmitted)

		_, err := service.SubmitResponse(assessmentID, questionID, dtos.ResponseSubmission{AnswerText: "too late"})

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestScoreResponseManually(t *testing.T) {
	assessmentID := uuid.New()
	questionID := uuid.New()

	t.Run("should refuse manual scores on auto-scorable questions", func(t *testing.T) {
		responseRepository := mocks.NewAssessmentResponseRepository(t)
		responseRepository.On("ReadByAssessmentAndQuestion", assessmentID, questionID).Return(models.AssessmentResponse{
			Question: models.Question{QuestionType: models.QuestionTypeYesNo, Points: 10},
		}, nil)

		service := services.NewAssessmentService(mocks.NewAssessmentRepository(t), responseRepository, mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		_, err := service.ScoreResponseManually(assessmentID, questionID, dtos.ManualScore{PointsEarned: 5}, "reviewer-1")

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should cap the points at the question maximum", func(t *testing.T) {
		responseRepository := mocks.NewAssessmentResponseRepository(t)
		responseRepository.On("ReadByAssessmentAndQuestion", assessmentID, questionID).Return(models.AssessmentResponse{
			Question: models.Question{QuestionType: models.QuestionTypeText, Points: 5},
		}, nil)

		service := services.NewAssessmentService(mocks.NewAssessmentRepository(t), responseRepository, mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		_, err := service.ScoreResponseManually(assessmentID, questionID, dtos.ManualScore{PointsEarned: 6}, "reviewer-1")

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should stamp the reviewer on the scored response", func(t *testing.T) {
		responseRepository := mocks.NewAssessmentResponseRepository(t)
		responseRepository.On("ReadByAssessmentAndQuestion", assessmentID, questionID).Return(models.AssessmentResponse{
			ID:       uuid.New(),
			Question: models.Question{QuestionType: models.QuestionTypeText, Points: 5, IsRequired: true},
		}, nil)
		responseRepository.On("Transaction", mock.Anything).Return(runInTransaction)

		var savedResponse models.AssessmentResponse
		responseRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			savedResponse = *args.Get(1).(*models.AssessmentResponse)
		}).Return(nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:       assessmentID,
			Status:   models.AssessmentStatusInProgress,
			Template: models.AssessmentTemplate{PassingScore: 70},
		}, nil)
		assessmentRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := services.NewAssessmentService(assessmentRepository, responseRepository, mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		approved := true
		response, err := service.ScoreResponseManually(assessmentID, questionID, dtos.ManualScore{
			PointsEarned:    4,
			IsApproved:      &approved,
			ReviewerComment: "evidence attached",
		}, "reviewer-1")

		assert.NoError(t, err)
		assert.Equal(t, 4, response.PointsEarned)
		assert.Equal(t, "reviewer-1", *savedResponse.ReviewedByID)
		assert.Equal(t, "evidence attached", savedResponse.ReviewerComment)
	})
}

func TestSubmitAssessment(t *testing.T) {
	assessmentID := uuid.New()

	t.Run("should recompute the score and stamp the submission date", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:       assessmentID,
			Status:   models.AssessmentStatusInProgress,
			Template: models.AssessmentTemplate{PassingScore: 70},
			Responses: []models.AssessmentResponse{
				{
					Question:     models.Question{QuestionType: models.QuestionTypeYesNo, Points: 10, IsRequired: true},
					AnswerText:   "yes",
					PointsEarned: 10,
				},
			},
		}, nil)
		assessmentRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := services.NewAssessmentService(assessmentRepository, mocks.NewAssessmentResponseRepository(t), mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		assessment, err := service.SubmitAssessment(assessmentID)

		assert.NoError(t, err)
		assert.Equal(t, models.AssessmentStatusSubmitted, assessment.Status)
		assert.NotNil(t, assessment.SubmittedDate)
		assert.Equal(t, 100, *assessment.Score)
		assert.True(t, *assessment.Passed)
	})

	t.Run("should refuse double submission", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:     assessmentID,
			Status: models.AssessmentStatusSubmitted,
		}, nil)

		service := services.NewAssessmentService(assessmentRepository, mocks.NewAssessmentResponseRepository(t), mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		_, err := service.SubmitAssessment(assessmentID)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestReviewAssessment(t *testing.T) {
	assessmentID := uuid.New()

	t.Run("should only review submitted assessments", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:     assessmentID,
			Status: models.AssessmentStatusInProgress,
		}, nil)

		service := services.NewAssessmentService(assessmentRepository, mocks.NewAssessmentResponseRepository(t), mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		_, err := service.ReviewAssessment(assessmentID, dtos.AssessmentReviewRequest{Approved: true}, "reviewer-1")

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should approve and stamp the reviewer", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithResponses", assessmentID).Return(models.Assessment{
			ID:       assessmentID,
			Status:   models.AssessmentStatusSubmitted,
			Template: models.AssessmentTemplate{PassingScore: 70},
		}, nil)
		assessmentRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := services.NewAssessmentService(assessmentRepository, mocks.NewAssessmentResponseRepository(t), mocks.NewQuestionRepository(t), mocks.NewAssessmentTemplateRepository(t))

		assessment, err := service.ReviewAssessment(assessmentID, dtos.AssessmentReviewRequest{Approved: true, ReviewerNotes: "looks solid"}, "reviewer-1")

		assert.NoError(t, err)
		assert.Equal(t, models.AssessmentStatusApproved, assessment.Status)
		assert.Equal(t, "reviewer-1", *assessment.ReviewedByID)
		assert.NotNil(t, assessment.ReviewedDate)
	})
}

package controllers

import (
	"fmt"

	"github.com/caas-platform/vendorguard/dtos"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/caas-platform/vendorguard/transformer"
	"github.com/caas-platform/vendorguard/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AssessmentController struct {
	assessmentService    shared.AssessmentService
	assessmentRepository shared.AssessmentRepository
	templateRepository   shared.AssessmentTemplateRepository
}

func NewAssessmentController(assessmentService shared.AssessmentService, assessmentRepository shared.AssessmentRepository, templateRepository shared.AssessmentTemplateRepository) *AssessmentController {
	return &AssessmentController{
		assessmentService:    assessmentService,
		assessmentRepository: assessmentRepository,
		templateRepository:   templateRepository,
	}
}

func (controller *AssessmentController) Create(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)
	session := shared.GetSession(ctx)

	var req dtos.AssessmentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	template, err := controller.templateRepository.ReadWithQuestions(req.TemplateID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find assessment template").WithInternal(err)
	}

	if template.OrganizationID != vendor.OrganizationID {
		return echo.NewHTTPError(404, "could not find assessment template")
	}

	assessment, err := controller.assessmentService.CreateAssessment(template, vendor.ID, req.DueDate, session.GetUserID(), req.VendorNotes)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.AssessmentDTOFromModel(assessment))
}

func (controller *AssessmentController) List(ctx shared.Context) error {
	vendor := shared.GetVendor(ctx)

	assessments, err := controller.assessmentRepository.GetByVendorID(vendor.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assessments").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(assessments, transformer.AssessmentDTOFromModel))
}

func (controller *AssessmentController) Read(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	full, err := controller.assessmentRepository.ReadWithResponses(assessment.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read assessment").WithInternal(err)
	}

	return ctx.JSON(200, full)
}

func (controller *AssessmentController) SubmitResponse(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	questionID, err := uuid.Parse(shared.GetParam(ctx, "questionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid question id").WithInternal(err)
	}

	var submission dtos.ResponseSubmission
	if err := ctx.Bind(&submission); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	response, err := controller.assessmentService.SubmitResponse(assessment.ID, questionID, submission)
	if err != nil {
		return err
	}

	return ctx.JSON(200, response)
}

func (controller *AssessmentController) ScoreResponse(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)
	session := shared.GetSession(ctx)

	questionID, err := uuid.Parse(shared.GetParam(ctx, "questionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid question id").WithInternal(err)
	}

	var score dtos.ManualScore
	if err := ctx.Bind(&score); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(score); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	response, err := controller.assessmentService.ScoreResponseManually(assessment.ID, questionID, score, session.GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, response)
}

func (controller *AssessmentController) Submit(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	submitted, err := controller.assessmentService.SubmitAssessment(assessment.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.AssessmentDTOFromModel(submitted))
}

func (controller *AssessmentController) Review(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)
	session := shared.GetSession(ctx)

	var review dtos.AssessmentReviewRequest
	if err := ctx.Bind(&review); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	reviewed, err := controller.assessmentService.ReviewAssessment(assessment.ID, review, session.GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.AssessmentDTOFromModel(reviewed))
}

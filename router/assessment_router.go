package router

import (
	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type AssessmentRouter struct {
	*echo.Group
}

func NewAssessmentRouter(
	vendorRouter VendorRouter,
	assessmentController *controllers.AssessmentController,
	assessmentRepository shared.AssessmentRepository,
) AssessmentRouter {
	vendorRouter.Group.GET("/assessments/", assessmentController.List)
	vendorRouter.Group.POST("/assessments/", assessmentController.Create)

	/**
	Assessment scoped router
	*/
	assessmentRouter := vendorRouter.Group.Group("/assessments/:assessmentID", middlewares.AssessmentMiddleware(assessmentRepository))

	assessmentRouter.GET("/", assessmentController.Read)
	assessmentRouter.POST("/submit/", assessmentController.Submit)
	assessmentRouter.POST("/review/", assessmentController.Review)

	assessmentRouter.PUT("/responses/:questionID/", assessmentController.SubmitResponse)
	assessmentRouter.PUT("/responses/:questionID/score/", assessmentController.ScoreResponse)

	return AssessmentRouter{Group: assessmentRouter}
}

package router

import (
	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionGroup SessionRouter,
	orgController *controllers.OrgController,
	vendorController *controllers.VendorController,
	templateController *controllers.AssessmentTemplateController,
	documentController *controllers.DocumentController,
	categoryController *controllers.DocumentCategoryController,
	tagController *controllers.DocumentTagController,
	accessLogController *controllers.AccessLogController,
	orgRepository shared.OrganizationRepository,
	templateRepository shared.AssessmentTemplateRepository,
) OrgRouter {
	/**
	Organization router
	*/
	orgRouter := sessionGroup.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create)

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/:orgSlug", middlewares.OrgMiddleware(orgRepository))

	organizationRouter.GET("/", orgController.Read)
	organizationRouter.DELETE("/", orgController.Delete)

	organizationRouter.GET("/vendors/", vendorController.List)
	organizationRouter.POST("/vendors/", vendorController.Create)

	organizationRouter.GET("/templates/", templateController.List)
	organizationRouter.POST("/templates/", templateController.Create)

	templateRouter := organizationRouter.Group("/templates/:templateID", middlewares.TemplateMiddleware(templateRepository))
	templateRouter.GET("/", templateController.Read)
	templateRouter.DELETE("/", templateController.Delete)

	// organization-wide document reporting
	organizationRouter.GET("/documents/expiring/", documentController.ExpiringSoon)
	organizationRouter.GET("/documents/stats/", documentController.Stats)

	// document labeling
	organizationRouter.GET("/document-categories/", categoryController.List)
	organizationRouter.POST("/document-categories/", categoryController.Create)
	organizationRouter.DELETE("/document-categories/:categoryID/", categoryController.Delete)

	organizationRouter.GET("/document-tags/", tagController.List)
	organizationRouter.POST("/document-tags/", tagController.Create)
	organizationRouter.DELETE("/document-tags/:tagID/", tagController.Delete)

	// the audit ledger is read at organization scope
	organizationRouter.GET("/access-logs/", accessLogController.List)

	return OrgRouter{Group: organizationRouter}
}

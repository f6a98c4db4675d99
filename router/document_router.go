package router

import (
	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type DocumentRouter struct {
	*echo.Group
}

func NewDocumentRouter(
	vendorRouter VendorRouter,
	documentController *controllers.DocumentController,
	accessLogController *controllers.AccessLogController,
	documentRepository shared.DocumentRepository,
) DocumentRouter {
	vendorRouter.Group.GET("/documents/", documentController.List)
	vendorRouter.Group.POST("/documents/", documentController.Create)

	/**
	Document scoped router
	*/
	documentRouter := vendorRouter.Group.Group("/documents/:documentID", middlewares.DocumentMiddleware(documentRepository))

	documentRouter.GET("/", documentController.Read)
	documentRouter.GET("/download/", documentController.Download)
	documentRouter.DELETE("/", documentController.Delete)

	documentRouter.GET("/versions/", documentController.Versions)
	documentRouter.POST("/versions/", documentController.CreateVersion)

	documentRouter.POST("/verify/", documentController.Verify)

	documentRouter.GET("/access-logs/", accessLogController.ListForDocument)

	return DocumentRouter{Group: documentRouter}
}

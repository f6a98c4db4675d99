package router

import (
	"github.com/caas-platform/vendorguard/controllers"
	"github.com/caas-platform/vendorguard/middlewares"
	"github.com/caas-platform/vendorguard/shared"
	"github.com/labstack/echo/v4"
)

type VendorRouter struct {
	*echo.Group
}

func NewVendorRouter(
	orgRouter OrgRouter,
	vendorController *controllers.VendorController,
	vendorRepository shared.VendorRepository,
) VendorRouter {
	/**
	Vendor scoped router
	All routes below this line are scoped to a specific vendor of the organization.
	*/
	vendorRouter := orgRouter.Group.Group("/vendors/:vendorSlug", middlewares.VendorMiddleware(vendorRepository))

	vendorRouter.GET("/", vendorController.Read)
	vendorRouter.PUT("/", vendorController.Update)
	vendorRouter.DELETE("/", vendorController.Delete)

	return VendorRouter{Group: vendorRouter}
}

package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterServiceRoutes(router *gin.Engine, serviceController *controllers.ServiceController) {
	serviceRoutesPublic := router.Group("/service")
	{
		serviceRoutesPublic.GET("", serviceController.GetAllServices)
		serviceRoutesPublic.GET("/id/:serviceId", serviceController.GetServiceByID)
		serviceRoutesPublic.GET("/:slug", serviceController.GetServiceBySlug)
	}
	serviceRoutesPrivate := router.Group("/service")
	serviceRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		serviceRoutesPrivate.POST("/create", serviceController.CreateService)
		serviceRoutesPrivate.PUT("/:serviceId", serviceController.UpdateService)
		serviceRoutesPrivate.DELETE("/:serviceId", serviceController.DeleteService)
		serviceRoutesPrivate.POST("/:serviceId/blocks", serviceController.AddContentBlock)
		serviceRoutesPrivate.DELETE("/:serviceId/blocks", serviceController.RemoveContentBlock)
		serviceRoutesPrivate.PUT("/:serviceId/blocks/reorder", serviceController.ReorderContentBlocks)
		serviceRoutesPrivate.PUT("/:serviceId/blocks/update", serviceController.UpdateContentBlock)
		serviceRoutesPrivate.POST("/:serviceId/features", serviceController.AddFeature)
		serviceRoutesPrivate.PUT("/:serviceId/features/update", serviceController.UpdateFeature)
		serviceRoutesPrivate.DELETE("/:serviceId/features", serviceController.RemoveFeature)
	}
}

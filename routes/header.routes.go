package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterHeaderRoutes(router *gin.Engine, headerController *controllers.HeaderController) {
	headerRoutesPublic := router.Group("/header")
	{
		headerRoutesPublic.GET("", headerController.GetHeader)
	}
	headerRoutesPrivate := router.Group("/header")
	headerRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		headerRoutesPrivate.PUT("/update", headerController.UpdateHeader)
		headerRoutesPrivate.POST("/add-menu-item", headerController.AddMenuItem)
		headerRoutesPrivate.DELETE("/remove-menu-item", headerController.RemoveMenuItem)
		headerRoutesPrivate.PUT("/reorder-menu-items", headerController.ReorderMenuItems)
	}
}

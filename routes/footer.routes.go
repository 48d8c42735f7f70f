package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFooterRoutes(router *gin.Engine, footerController *controllers.FooterController) {
	footerRoutesPublic := router.Group("/footer")
	{
		footerRoutesPublic.GET("", footerController.GetFooter)
	}
	footerRoutesPrivate := router.Group("/footer")
	footerRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		footerRoutesPrivate.PUT("/update", footerController.UpdateFooter)
		footerRoutesPrivate.POST("/add-menu-item", footerController.AddMenuItem)
		footerRoutesPrivate.DELETE("/remove-menu-item", footerController.RemoveMenuItem)
		footerRoutesPrivate.PUT("/reorder-menu-items", footerController.ReorderMenuItems)
	}
}

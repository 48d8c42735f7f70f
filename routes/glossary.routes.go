package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGlossaryRoutes(router *gin.Engine, glossaryController *controllers.GlossaryController) {
	glossaryRoutesPublic := router.Group("/glossary")
	{
		glossaryRoutesPublic.GET("", glossaryController.GetAllTerms)
		glossaryRoutesPublic.GET("/id/:termId", glossaryController.GetTermByID)
		glossaryRoutesPublic.GET("/:slug", glossaryController.GetTermBySlug)
	}
	glossaryRoutesPrivate := router.Group("/glossary")
	glossaryRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		glossaryRoutesPrivate.POST("/create", glossaryController.CreateTerm)
		glossaryRoutesPrivate.PUT("/:termId", glossaryController.UpdateTerm)
		glossaryRoutesPrivate.DELETE("/:termId", glossaryController.DeleteTerm)
	}
}

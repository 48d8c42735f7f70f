package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProjectRoutes(router *gin.Engine, projectController *controllers.ProjectController) {
	projectRoutesPublic := router.Group("/project")
	{
		projectRoutesPublic.GET("", projectController.GetAllProjects)
		projectRoutesPublic.GET("/id/:projectId", projectController.GetProjectByID)
		projectRoutesPublic.GET("/:slug", projectController.GetProjectBySlug)
	}
	projectRoutesPrivate := router.Group("/project")
	projectRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		projectRoutesPrivate.POST("/create", projectController.CreateProject)
		projectRoutesPrivate.PUT("/:projectId", projectController.UpdateProject)
		projectRoutesPrivate.DELETE("/:projectId", projectController.DeleteProject)
		projectRoutesPrivate.POST("/:projectId/blocks", projectController.AddContentBlock)
		projectRoutesPrivate.DELETE("/:projectId/blocks", projectController.RemoveContentBlock)
		projectRoutesPrivate.PUT("/:projectId/blocks/reorder", projectController.ReorderContentBlocks)
		projectRoutesPrivate.PUT("/:projectId/blocks/update", projectController.UpdateContentBlock)
	}
}

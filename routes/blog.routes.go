package routes

import (
	"avercms/internal/controllers"
	"avercms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(router *gin.Engine, blogController *controllers.BlogController) {
	blogRoutesPublic := router.Group("/blog")
	{
		blogRoutesPublic.GET("", blogController.GetAllBlogs)
		blogRoutesPublic.GET("/id/:blogId", blogController.GetBlogByID)
		blogRoutesPublic.GET("/:slug", blogController.GetBlogBySlug)
	}
	blogRoutesPrivate := router.Group("/blog")
	blogRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		blogRoutesPrivate.POST("/create", blogController.CreateBlog)
		blogRoutesPrivate.PUT("/:blogId", blogController.UpdateBlog)
		blogRoutesPrivate.DELETE("/:blogId", blogController.DeleteBlog)
		blogRoutesPrivate.POST("/:blogId/blocks", blogController.AddContentBlock)
		blogRoutesPrivate.DELETE("/:blogId/blocks", blogController.RemoveContentBlock)
		blogRoutesPrivate.PUT("/:blogId/blocks/reorder", blogController.ReorderContentBlocks)
		blogRoutesPrivate.PUT("/:blogId/blocks/update", blogController.UpdateContentBlock)
	}
}

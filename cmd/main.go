package main

import (
	"avercms/database"
	"avercms/internal/auth"
	"avercms/internal/cache"
	"avercms/internal/controllers"
	"avercms/internal/models"
	"avercms/internal/repository"
	"avercms/routes"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional; without it the repositories read straight
	// from the database.
	redisClient, err := cache.NewClientFromEnv()
	if err != nil {
		log.Printf("Warning: Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}
	if redisClient != nil {
		log.Println("Redis cache enabled")
	}

	policy := auth.PolicyFromEnv()

	// Initialize repositories
	var (
		blogRepo     repository.ContentRepository[models.Blog]
		projectRepo  repository.ContentRepository[models.Project]
		serviceRepo  repository.ContentRepository[models.Service]
		glossaryRepo repository.ContentRepository[models.GlossaryTerm]
	)
	if redisClient != nil {
		blogRepo = repository.NewCachedBlogRepository(database.DB, redisClient)
		projectRepo = repository.NewCachedProjectRepository(database.DB, redisClient)
		serviceRepo = repository.NewCachedServiceRepository(database.DB, redisClient)
		glossaryRepo = repository.NewCachedGlossaryRepository(database.DB, redisClient)
	} else {
		blogRepo = repository.NewBlogRepository(database.DB)
		projectRepo = repository.NewProjectRepository(database.DB)
		serviceRepo = repository.NewServiceRepository(database.DB)
		glossaryRepo = repository.NewGlossaryRepository(database.DB)
	}
	headerRepo := repository.NewHeaderRepository(database.DB)
	footerRepo := repository.NewFooterRepository(database.DB)

	// Initialize controllers
	blogController := controllers.NewBlogController(blogRepo, policy)
	projectController := controllers.NewProjectController(projectRepo, policy)
	serviceController := controllers.NewServiceController(serviceRepo, policy)
	glossaryController := controllers.NewGlossaryController(glossaryRepo, policy)
	headerController := controllers.NewHeaderController(headerRepo, policy)
	footerController := controllers.NewFooterController(footerRepo, policy)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Aver CMS API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterBlogRoutes(router, blogController)
	routes.RegisterProjectRoutes(router, projectController)
	routes.RegisterServiceRoutes(router, serviceController)
	routes.RegisterGlossaryRoutes(router, glossaryController)
	routes.RegisterHeaderRoutes(router, headerController)
	routes.RegisterFooterRoutes(router, footerController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Route not found"})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Aver CMS API started on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

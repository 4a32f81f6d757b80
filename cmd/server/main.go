package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pmapi/project-management-api/internal/auth"
	"github.com/pmapi/project-management-api/internal/config"
	"github.com/pmapi/project-management-api/internal/database"
	"github.com/pmapi/project-management-api/internal/handlers"
	"github.com/pmapi/project-management-api/internal/middleware"
	"github.com/pmapi/project-management-api/internal/repository"
	"github.com/pmapi/project-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Services
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := services.NewAuthService(userRepo, issuer)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)
	memberService := services.NewMemberService(memberRepo, projectRepo, userRepo)

	// Handlers
	tokenHandler := handlers.NewTokenHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	memberHandler := handlers.NewMemberHandler(memberService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Management API is running",
		})
	})

	authRequired := middleware.RequireAuth(issuer)

	// Public routes: registration and token issuance
	r.POST("/users/register/", userHandler.Register)
	r.POST("/auth/token/", tokenHandler.Obtain)
	r.POST("/auth/token/refresh/", tokenHandler.Refresh)

	// User routes (protected)
	users := r.Group("/users", authRequired)
	{
		users.GET("/", userHandler.List)
		users.GET("/:id/", userHandler.Get)
		users.PUT("/:id/", userHandler.Update)
		users.PATCH("/:id/", userHandler.Update)
		users.DELETE("/:id/", userHandler.Delete)
	}

	// Project routes (protected)
	projects := r.Group("/projects", authRequired)
	{
		projects.GET("/", projectHandler.List)
		projects.POST("/", projectHandler.Create)
		projects.GET("/:id/", projectHandler.Get)
		projects.PUT("/:id/", projectHandler.Update)
		projects.PATCH("/:id/", projectHandler.Update)
		projects.DELETE("/:id/", projectHandler.Delete)
		projects.POST("/:id/tasks/", taskHandler.Create)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks", authRequired)
	{
		tasks.GET("/", taskHandler.List)
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/:id/", taskHandler.Get)
		tasks.PUT("/:id/", taskHandler.Update)
		tasks.PATCH("/:id/", taskHandler.Update)
		tasks.DELETE("/:id/", taskHandler.Delete)
		tasks.POST("/:id/comments/", commentHandler.Create)
	}

	// Comment routes (protected)
	comments := r.Group("/comments", authRequired)
	{
		comments.GET("/", commentHandler.List)
		comments.POST("/", commentHandler.Create)
		comments.GET("/:id/", commentHandler.Get)
		comments.PUT("/:id/", commentHandler.Update)
		comments.PATCH("/:id/", commentHandler.Update)
		comments.DELETE("/:id/", commentHandler.Delete)
	}

	// Project membership routes (protected)
	members := r.Group("/members", authRequired)
	{
		members.GET("/", memberHandler.List)
		members.POST("/", memberHandler.Create)
		members.GET("/:id/", memberHandler.Get)
		members.PUT("/:id/", memberHandler.Update)
		members.PATCH("/:id/", memberHandler.Update)
		members.DELETE("/:id/", memberHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

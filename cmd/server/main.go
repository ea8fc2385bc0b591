package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/skillbridge/marketplace-api/internal/config"
	"github.com/skillbridge/marketplace-api/internal/constants"
	"github.com/skillbridge/marketplace-api/internal/database"
	"github.com/skillbridge/marketplace-api/internal/handlers"
	"github.com/skillbridge/marketplace-api/internal/middleware"
	"github.com/skillbridge/marketplace-api/internal/models"
	"github.com/skillbridge/marketplace-api/internal/repository"
	"github.com/skillbridge/marketplace-api/internal/services"
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

	// The index-existence check reads pg_indexes, so only Postgres gets the
	// extra indexes
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	proposalRepo := repository.NewProposalRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, proposalRepo, userRepo)
	proposalService := services.NewProposalService(proposalRepo, projectRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	proposalHandler := handlers.NewProposalHandler(proposalService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SkillBridge API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("/:id", userHandler.GetProfile)
			users.PUT("/me", middleware.RequireAuth(), userHandler.UpdateProfile)
		}

		// Freelancer search (public)
		api.GET("/freelancers", userHandler.ListFreelancers)

		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", middleware.RequireAuth(), middleware.RequireUserType(models.UserTypeClient), projectHandler.CreateProject)
			projects.GET("/mine", middleware.RequireAuth(), projectHandler.MyProjects)
			projects.PUT("/:id", middleware.RequireAuth(), middleware.RequireProjectOwner(), projectHandler.UpdateProject)
			projects.DELETE("/:id", middleware.RequireAuth(), middleware.RequireProjectOwner(), projectHandler.DeleteProject)
			projects.GET("/:id/proposals", middleware.RequireAuth(), proposalHandler.ProjectProposals)
		}

		// Proposal routes (protected)
		proposals := api.Group("/proposals")
		proposals.Use(middleware.RequireAuth())
		{
			proposals.POST("", middleware.RequireUserType(models.UserTypeFreelancer), proposalHandler.SubmitProposal)
			proposals.GET("/mine", proposalHandler.MyProposals)
			proposals.POST("/:id/accept", proposalHandler.AcceptProposal)
			proposals.POST("/:id/reject", proposalHandler.RejectProposal)
			proposals.DELETE("/:id", proposalHandler.WithdrawProposal)
		}

		// Dashboards (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireAuth())
		{
			dashboard.GET("/client", middleware.RequireUserType(models.UserTypeClient), projectHandler.ClientDashboard)
			dashboard.GET("/freelancer", middleware.RequireUserType(models.UserTypeFreelancer), proposalHandler.FreelancerDashboard)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

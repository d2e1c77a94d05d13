package main

import (
	"fmt"
	"net/http"
	"os"

	"salonbook/internal/config"
	"salonbook/internal/database"
	"salonbook/internal/handlers"
	"salonbook/internal/logger"
	"salonbook/internal/middleware"
	"salonbook/internal/services"
	"salonbook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "salonbook/internal/docs" // Import swagger docs
)

// @title           Salonbook API
// @version         1.0
// @description     Salonbook is an appointment and bookkeeping backend for a personal-services business: it schedules client appointments, records income, and reports daily, weekly, and monthly revenue.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	appointmentService := services.NewAppointmentService(db)
	incomeService := services.NewIncomeService(db)
	dashboardService := services.NewDashboardService(db)

	// Bootstrap the admin account on first run
	created, err := userService.EnsureAdminUser(appConfig.AdminUsername, appConfig.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	if created {
		log.Infof("Bootstrap account %q created", appConfig.AdminUsername)
		if appConfig.AdminPassword == config.DefaultAdminPassword {
			log.Warn("Bootstrap account uses the default password; set ADMIN_PASSWORD before exposing this service")
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Dashboard
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	// Appointment routes
	appointments := protected.Group("/appointments")
	appointments.POST("", appointmentHandler.ScheduleAppointment)
	appointments.GET("", appointmentHandler.ListAppointments)
	appointments.GET("/:id", appointmentHandler.GetAppointmentByID)
	appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)

	// Income routes
	incomes := protected.Group("/incomes")
	incomes.POST("", incomeHandler.RegisterIncome)
	incomes.GET("", incomeHandler.ListIncomes)
	incomes.GET("/:id", incomeHandler.GetIncomeByID)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	log.Infof("Starting Salonbook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

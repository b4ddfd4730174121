package routes

import (
	"net/http"

	_ "espresso-backend/docs" // registers the OpenAPI document with swag
	"espresso-backend/internal/api/handlers"
	"espresso-backend/internal/api/middleware"
	"espresso-backend/internal/artifact"
	"espresso-backend/internal/auth"
	"espresso-backend/internal/config"
	"espresso-backend/internal/logger"
	"espresso-backend/internal/repository"
	"espresso-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, oracle artifact.Oracle) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	widgetRepo := repository.NewWidgetRepository(db)
	branchRepo := repository.NewBranchRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validator)
	widgetService := service.NewWidgetService(widgetRepo, companyRepo, validator)
	branchService := service.NewBranchService(branchRepo, widgetRepo, companyRepo, oracle, validator)

	// Write routes are guarded only when AUTH_ENABLED is set
	protect := func(c *gin.Context) { c.Next() }
	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		protect = auth.NewAuthMiddleware(authService).RequireAuth()
	} else {
		logger.New().WithLabel(logger.LabelServerStartup).Warn("AUTH_ENABLED is false, write routes are unprotected")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	widgetHandler := handlers.NewWidgetHandler(widgetService)
	branchHandler := handlers.NewBranchHandler(branchService)
	artifactHandler := handlers.NewArtifactHandler(oracle)

	// Health check routes
	router.GET("/healthcheck", healthHandler.Health)
	router.GET("/healthcheck/ready", healthHandler.Ready)

	// Swagger documentation routes
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/postman.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{Error: "Error reading API document"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})

	api := router.Group(cfg.APIPrefix())
	espresso := api.Group("/espresso")
	{
		espresso.POST("/company", protect, companyHandler.CreateCompany)
		espresso.POST("/widget", protect, widgetHandler.CreateWidget)
		espresso.POST("/branch", protect, branchHandler.CreateBranch)
		espresso.PATCH("/branch/:branch_id", protect, branchHandler.UpdateBranch)

		espresso.GET("/companies", companyHandler.GetCompanies)
		espresso.GET("/branch/:branch_id", branchHandler.GetBranch)
		espresso.GET("/branch-id/:branch_name", branchHandler.GetBranchID)
		espresso.GET("/widget-id/:widget_name", widgetHandler.GetWidgetID)
		espresso.GET("/company-id/:company_name", companyHandler.GetCompanyID)
		espresso.GET("/artifacts", artifactHandler.ListArtifacts)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

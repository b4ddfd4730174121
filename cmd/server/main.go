package main

import (
	"context"

	"espresso-backend/internal/api/routes"
	"espresso-backend/internal/artifact"
	"espresso-backend/internal/config"
	"espresso-backend/internal/database"
	"espresso-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Espresso Backend API
//	@version		2.0
//	@description	Manages companies, their widgets and the widget branches that point at deployment artifacts.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3001
//	@BasePath	/api/v2

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token. Required on writes when AUTH_ENABLED is true.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logger.New().WithLabel(logger.LabelEnvVars).Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, nil)
	startup := logger.New().WithLabel(logger.LabelServerStartup)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logger.New().WithLabel(logger.LabelDatabaseConnection).WithError(err).Fatal("Failed to initialize database")
	}

	oracle, err := artifact.New(context.Background(), cfg)
	if err != nil {
		logger.New().WithLabel(logger.LabelArtifactBucket).WithError(err).Fatal("Failed to initialize artifact source")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, oracle)
	if err != nil {
		startup.WithError(err).Fatal("Failed to set up routes")
	}

	startup.WithFields(map[string]interface{}{
		"port":            cfg.Port,
		"api_prefix":      cfg.APIPrefix(),
		"artifact_source": cfg.ArtifactSource,
		"project_id":      cfg.ProjectID,
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		startup.WithError(err).Fatal("Failed to start server")
	}
}

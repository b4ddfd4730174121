package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"espresso-backend/internal/artifact"
	"espresso-backend/internal/config"
	"espresso-backend/internal/database"
	apperrors "espresso-backend/internal/errors"
	applogger "espresso-backend/internal/logger"
	"espresso-backend/internal/repository"
	"espresso-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures, one company tree per entry
type BranchData struct {
	Name                 string `yaml:"name"`
	DeploymentArtifactID string `yaml:"deployment_artifact_id"`
}

type WidgetData struct {
	Name     string       `yaml:"name"`
	Branches []BranchData `yaml:"branches,omitempty"`
}

type CompanyData struct {
	Name    string       `yaml:"name"`
	Widgets []WidgetData `yaml:"widgets,omitempty"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

// seedCounts records created vs total per level
type seedCounts struct {
	companiesCreated, companies int
	widgetsCreated, widgets     int
	branchesCreated, branches   int
	branchesSkipped             int
}

// seeder writes through the services so seeded data passes the same checks as API writes
type seeder struct {
	companies service.CompanyServiceInterface
	widgets   service.WidgetServiceInterface
	branches  service.BranchServiceInterface
	log       *applogger.Logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		applogger.New().WithLabel(applogger.LabelEnvVars).Debug("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	applogger.Setup(cfg.LogLevel, nil)
	log := applogger.New().WithLabel(applogger.LabelStoreOperations)
	log.Info("Loading initial data from YAML files...")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	ctx := context.Background()
	oracle, err := artifact.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize artifact source")
	}

	validator := service.NewValidator()
	companyRepo := repository.NewCompanyRepository(db)
	widgetRepo := repository.NewWidgetRepository(db)
	s := &seeder{
		companies: service.NewCompanyService(companyRepo, validator),
		widgets:   service.NewWidgetService(widgetRepo, companyRepo, validator),
		branches:  service.NewBranchService(repository.NewBranchRepository(db), widgetRepo, companyRepo, oracle, validator),
		log:       log,
	}

	companies, err := loadCompanies("scripts/data")
	if err != nil {
		log.WithError(err).Fatal("Failed to read YAML files")
	}

	counts, err := s.seed(ctx, companies)
	if err != nil {
		log.WithError(err).Fatal("Failed to load data from YAML files")
	}

	log.WithFields(map[string]interface{}{
		"companies_created": counts.companiesCreated,
		"companies":         counts.companies,
		"widgets_created":   counts.widgetsCreated,
		"widgets":           counts.widgets,
		"branches_created":  counts.branchesCreated,
		"branches_skipped":  counts.branchesSkipped,
		"branches":          counts.branches,
	}).Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM's SQL and "record not found" lines during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			applogger.New().WithLabel(applogger.LabelDatabaseConnection).WithError(err).
				Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadCompanies reads every *.yaml file under dataDir whose path mentions companies
func loadCompanies(dataDir string) ([]CompanyData, error) {
	var all []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			companies, err := parseCompanies(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			all = append(all, companies...)
		}
		return nil
	})

	return all, err
}

func parseCompanies(data []byte) ([]CompanyData, error) {
	var file CompaniesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Companies, nil
}

// seed creates what is missing and reuses what already exists, so reruns are harmless.
// A branch whose artifact is unknown is skipped with a warning.
func (s *seeder) seed(ctx context.Context, companies []CompanyData) (seedCounts, error) {
	var counts seedCounts

	for _, companyData := range companies {
		counts.companies++
		companyID, created, err := s.ensureCompany(ctx, companyData.Name)
		if err != nil {
			return counts, fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		if created {
			counts.companiesCreated++
		}

		for _, widgetData := range companyData.Widgets {
			counts.widgets++
			widgetID, created, err := s.ensureWidget(ctx, companyID, widgetData.Name)
			if err != nil {
				return counts, fmt.Errorf("failed to create widget %s/%s: %w", companyData.Name, widgetData.Name, err)
			}
			if created {
				counts.widgetsCreated++
			}

			for _, branchData := range widgetData.Branches {
				counts.branches++
				_, err := s.branches.Create(ctx, &service.CreateBranchRequest{
					CompanyID:            companyID,
					WidgetID:             widgetID,
					BranchName:           branchData.Name,
					DeploymentArtifactID: branchData.DeploymentArtifactID,
				})
				switch {
				case err == nil:
					counts.branchesCreated++
				case errors.Is(err, apperrors.ErrBranchExists):
				case errors.Is(err, apperrors.ErrDeploymentArtifactNotFound):
					counts.branchesSkipped++
					s.log.WithFields(map[string]interface{}{
						"company":  companyData.Name,
						"widget":   widgetData.Name,
						"branch":   branchData.Name,
						"artifact": branchData.DeploymentArtifactID,
					}).Warn("Skipping branch with unknown deployment artifact")
				default:
					return counts, fmt.Errorf("failed to create branch %s: %w", branchData.Name, err)
				}
			}
		}
	}

	return counts, nil
}

func (s *seeder) ensureCompany(ctx context.Context, name string) (string, bool, error) {
	resp, err := s.companies.Create(ctx, &service.CreateCompanyRequest{CompanyName: name})
	if err == nil {
		return resp.CompanyID, true, nil
	}
	if !errors.Is(err, apperrors.ErrCompanyExists) {
		return "", false, err
	}
	id, err := s.companies.GetIDByName(ctx, name)
	return id, false, err
}

func (s *seeder) ensureWidget(ctx context.Context, companyID, name string) (string, bool, error) {
	resp, err := s.widgets.Create(ctx, &service.CreateWidgetRequest{CompanyID: companyID, WidgetName: name})
	if err == nil {
		return resp.WidgetID, true, nil
	}
	if !errors.Is(err, apperrors.ErrWidgetExists) {
		return "", false, err
	}
	id, err := s.widgets.GetIDByName(ctx, companyID, name)
	return id, false, err
}

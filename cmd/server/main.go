package main

import (
	"github.com/kaxixi6666/foodflow/backend/internal/router"
	"github.com/kaxixi6666/foodflow/backend/pkg/config"
	"github.com/kaxixi6666/foodflow/backend/pkg/logger"
	"github.com/kaxixi6666/foodflow/backend/pkg/vision"
	"github.com/kaxixi6666/foodflow/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env)

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize databases")
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Vision model client for ingredient recognition
	visionClient := vision.NewClient(cfg.ZhipuAPIKey, cfg.ZhipuBaseURL, cfg.ZhipuModel)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, visionClient)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

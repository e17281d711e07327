package router

import (
	"github.com/kaxixi6666/foodflow/backend/internal/cache"
	"github.com/kaxixi6666/foodflow/backend/internal/handlers"
	"github.com/kaxixi6666/foodflow/backend/internal/middleware"
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/kaxixi6666/foodflow/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, visionClient services.VisionClient) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeLike{},
		&models.NoteLike{},
		&models.Notification{},
		&models.InventoryItem{},
		&models.MealPlan{},
		&models.ShoppingListItem{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to auto migrate models")
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	recipeRepo := repositories.NewPostgresRecipeRepository(pgdb)
	ingredientRepo := repositories.NewPostgresIngredientRepository(pgdb)
	inventoryRepo := repositories.NewPostgresInventoryRepository(pgdb)
	mealPlanRepo := repositories.NewPostgresMealPlanRepository(pgdb)
	shoppingListRepo := repositories.NewPostgresShoppingListRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	recognitionRepo := repositories.NewMongoRecognitionRepository(mgClient.Database("foodflow"))
	likeStore := repositories.NewGormLikeStore(pgdb)

	// --- Initialize Services ---
	likeService := services.NewLikeService(likeStore)
	noteLikeService := services.NewNoteLikeService(likeStore)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	recognitionService := services.NewRecognitionService(visionClient, recognitionRepo)
	userCache := cache.NewUserCache(0)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/users")
	authHandler := handlers.NewAuthHandler(userRepo, userCache, cfg.JWTSecret, cfg.JWTExpirationHours)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured")

	// --- User profile routes (require JWT authentication) ---
	usersGroup := e.Group("/api/v1/users")
	usersGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(usersGroup)
	logrus.Info("User profile routes configured")

	// --- Domain routes (require the X-User-Id header) ---
	api := e.Group("/api/v1")
	api.Use(middleware.RequireUserID())

	recipeHandler := handlers.NewRecipeHandler(recipeRepo, ingredientRepo, likeService)
	recipeHandler.RegisterRecipeRoutes(api)

	noteLikeHandler := handlers.NewNoteLikeHandler(noteLikeService)
	noteLikeHandler.RegisterNoteLikeRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	inventoryHandler := handlers.NewInventoryHandler(inventoryRepo, ingredientRepo, recognitionService)
	inventoryHandler.RegisterInventoryRoutes(api)

	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanRepo, recipeRepo, shoppingListRepo)
	mealPlanHandler.RegisterMealPlanRoutes(api)

	recognitionHandler := handlers.NewRecognitionHandler(recognitionService)
	recognitionHandler.RegisterRecognitionRoutes(api)

	ingredientHandler := handlers.NewIngredientHandler(ingredientRepo)
	ingredientHandler.RegisterIngredientRoutes(api)

	logrus.Info("Domain routes configured")
}

package main

import (
	"flag"

	"github.com/phvlkn/CookBook/config"
	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/db"
	"github.com/phvlkn/CookBook/handler"
	"github.com/phvlkn/CookBook/logger"
	"github.com/phvlkn/CookBook/repository"
	"github.com/phvlkn/CookBook/routes"
	"github.com/phvlkn/CookBook/seed"
	"github.com/phvlkn/CookBook/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	logger.InitializeLogger()
	defer logger.Close()

	cfg, err := config.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to read configuration", zap.Error(err))
	}

	if err := db.InitDB(cfg); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	gormDB := db.GetDBInstance()
	if cfg.SeedDemoData {
		if err := seed.Run(gormDB); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	userRepository := repository.NewUserRepository(gormDB)
	recipeRepository := repository.NewRecipeRepository(gormDB)
	ingredientRepository := repository.NewIngredientRepository(gormDB)
	reviewRepository := repository.NewReviewRepository(gormDB)
	collectionRepository := repository.NewCollectionRepository(gormDB)
	shoppingListRepository := repository.NewShoppingListRepository(gormDB)

	timeout := cfg.OperationTimeout
	userController := controller.NewUserController(userRepository, timeout)
	recipeController := controller.NewRecipeController(recipeRepository, timeout)
	ingredientController := controller.NewIngredientController(ingredientRepository, timeout)
	reviewController := controller.NewReviewController(reviewRepository, timeout)
	collectionController := controller.NewCollectionController(collectionRepository, timeout)
	shoppingListController := controller.NewShoppingListController(shoppingListRepository, timeout)

	authService := service.NewAuthService(userController, cfg)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Handlers{
		Auth:         handler.NewAuthHandler(authService, userController),
		User:         handler.NewUserHandler(userController),
		Recipe:       handler.NewRecipeHandler(recipeController, reviewController),
		Ingredient:   handler.NewIngredientHandler(ingredientController),
		Collection:   handler.NewCollectionHandler(collectionController),
		ShoppingList: handler.NewShoppingListHandler(shoppingListController),
		AuthService:  authService,
	})

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

package routes

import (
	"github.com/phvlkn/CookBook/handler"
	"github.com/phvlkn/CookBook/middleware"
	"github.com/phvlkn/CookBook/service"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         handler.AuthHandler
	User         handler.UserHandler
	Recipe       handler.RecipeHandler
	Ingredient   handler.IngredientHandler
	Collection   handler.CollectionHandler
	ShoppingList handler.ShoppingListHandler
	AuthService  service.AuthService
}

// SetupRoutes wires all endpoints. Search and the public collection
// listing live under their own prefixes so static segments never collide
// with the :id wildcards.
func SetupRoutes(r *gin.Engine, h Handlers) {
	r.Use(middleware.CORS())

	api := r.Group("/api")

	// Public
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.GET("/recipes", h.Recipe.List)
	api.GET("/recipes/:id", h.Recipe.Get)
	api.GET("/recipes/:id/reviews", h.Recipe.ListReviews)
	api.GET("/search/recipes", h.Recipe.Search)
	api.GET("/ingredients", h.Ingredient.List)
	api.GET("/ingredients/:id", h.Ingredient.Get)
	api.GET("/users/:id", h.User.Get)
	api.GET("/users/:id/recipes", h.Recipe.ListByUser)
	api.GET("/public/collections", h.Collection.ListPublic)

	// Authenticated
	authed := api.Group("")
	authed.Use(middleware.AuthenticateJWT(h.AuthService))
	authed.GET("/me", h.Auth.Me)
	authed.POST("/recipes", h.Recipe.Create)
	authed.DELETE("/recipes/:id", h.Recipe.Delete)
	authed.POST("/recipes/:id/reviews", h.Recipe.CreateReview)
	authed.POST("/collections", h.Collection.Create)
	authed.GET("/collections", h.Collection.ListMine)
	authed.GET("/collections/:id/recipes", h.Collection.ListRecipes)
	authed.POST("/collections/:id/recipes/:recipe_id", h.Collection.AddRecipe)
	authed.POST("/shopping-lists", h.ShoppingList.Create)
	authed.GET("/shopping-lists", h.ShoppingList.ListMine)
}

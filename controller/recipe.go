package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
)

// RecipeController interface
type RecipeController interface {
	CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeCreateRequest) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, skip, limit int) ([]entity.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*entity.Recipe, error)
	GetRecipesByUser(ctx context.Context, userID uint, skip, limit int) ([]entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id, requestingUserID uint) error
	SearchRecipes(ctx context.Context, query string, skip, limit int) ([]entity.Recipe, error)
}

// recipeController struct
type recipeController struct {
	recipeRepository *repository.RecipeRepository
	timeout          time.Duration
}

// NewRecipeController creates and returns a new RecipeController
func NewRecipeController(recipeRepository *repository.RecipeRepository, timeout time.Duration) RecipeController {
	return &recipeController{
		recipeRepository: recipeRepository,
		timeout:          timeout,
	}
}

func (c *recipeController) CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeCreateRequest) (*entity.Recipe, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipe := &entity.Recipe{
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		CookTime:    req.CookTime,
		Category:    req.Category,
		Diet:        req.Diet,
		Cuisine:     req.Cuisine,
		Steps:       req.Steps,
		Ingredients: req.Ingredients,
		Image:       req.Image,
	}
	created, err := c.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return created, nil
}

func (c *recipeController) ListRecipes(ctx context.Context, skip, limit int) ([]entity.Recipe, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipes, err := c.recipeRepository.ListRecipes(ctx, skip, limit)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return recipes, nil
}

func (c *recipeController) GetRecipe(ctx context.Context, id uint) (*entity.Recipe, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipe, err := c.recipeRepository.GetRecipe(ctx, id)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return recipe, nil
}

func (c *recipeController) GetRecipesByUser(ctx context.Context, userID uint, skip, limit int) ([]entity.Recipe, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipes, err := c.recipeRepository.GetRecipesByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return recipes, nil
}

func (c *recipeController) DeleteRecipe(ctx context.Context, id, requestingUserID uint) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	return translateTimeout(c.recipeRepository.DeleteRecipe(ctx, id, requestingUserID))
}

func (c *recipeController) SearchRecipes(ctx context.Context, query string, skip, limit int) ([]entity.Recipe, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipes, err := c.recipeRepository.SearchRecipes(ctx, query, skip, limit)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return recipes, nil
}

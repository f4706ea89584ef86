package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
)

// IngredientController interface
type IngredientController interface {
	GetOrCreate(ctx context.Context, name, defaultUnit string) (*entity.Ingredient, error)
	Get(ctx context.Context, id uint) (*entity.Ingredient, error)
	List(ctx context.Context) ([]entity.Ingredient, error)
}

// ingredientController struct
type ingredientController struct {
	ingredientRepository *repository.IngredientRepository
	timeout              time.Duration
}

// NewIngredientController creates and returns a new IngredientController
func NewIngredientController(ingredientRepository *repository.IngredientRepository, timeout time.Duration) IngredientController {
	return &ingredientController{
		ingredientRepository: ingredientRepository,
		timeout:              timeout,
	}
}

func (c *ingredientController) GetOrCreate(ctx context.Context, name, defaultUnit string) (*entity.Ingredient, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	ingredient, err := c.ingredientRepository.GetOrCreate(ctx, name, defaultUnit)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return ingredient, nil
}

func (c *ingredientController) Get(ctx context.Context, id uint) (*entity.Ingredient, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	ingredient, err := c.ingredientRepository.Get(ctx, id)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return ingredient, nil
}

func (c *ingredientController) List(ctx context.Context) ([]entity.Ingredient, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	ingredients, err := c.ingredientRepository.List(ctx)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return ingredients, nil
}

package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
)

// ShoppingListController interface
type ShoppingListController interface {
	CreateShoppingList(ctx context.Context, userID uint, req *entity.ShoppingListCreateRequest) (*entity.ShoppingList, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.ShoppingList, error)
}

// shoppingListController struct
type shoppingListController struct {
	shoppingListRepository *repository.ShoppingListRepository
	timeout                time.Duration
}

// NewShoppingListController creates and returns a new ShoppingListController
func NewShoppingListController(shoppingListRepository *repository.ShoppingListRepository, timeout time.Duration) ShoppingListController {
	return &shoppingListController{
		shoppingListRepository: shoppingListRepository,
		timeout:                timeout,
	}
}

func (c *shoppingListController) CreateShoppingList(ctx context.Context, userID uint, req *entity.ShoppingListCreateRequest) (*entity.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	list := &entity.ShoppingList{
		UserID:  userID,
		Title:   req.Title,
		Recipes: req.Recipes,
		Items:   req.Items,
	}
	created, err := c.shoppingListRepository.CreateShoppingList(ctx, list)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return created, nil
}

func (c *shoppingListController) ListByUser(ctx context.Context, userID uint) ([]entity.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	lists, err := c.shoppingListRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return lists, nil
}

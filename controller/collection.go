package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
)

// CollectionController interface
type CollectionController interface {
	CreateCollection(ctx context.Context, userID uint, req *entity.CollectionCreateRequest) (*entity.Collection, error)
	AddRecipe(ctx context.Context, collectionID, recipeID, requestingUserID uint) error
	ListByUser(ctx context.Context, userID uint) ([]entity.Collection, error)
	ListPublic(ctx context.Context) ([]entity.Collection, error)
	ListRecipes(ctx context.Context, collectionID uint) ([]uint, error)
}

// collectionController struct
type collectionController struct {
	collectionRepository *repository.CollectionRepository
	timeout              time.Duration
}

// NewCollectionController creates and returns a new CollectionController
func NewCollectionController(collectionRepository *repository.CollectionRepository, timeout time.Duration) CollectionController {
	return &collectionController{
		collectionRepository: collectionRepository,
		timeout:              timeout,
	}
}

func (c *collectionController) CreateCollection(ctx context.Context, userID uint, req *entity.CollectionCreateRequest) (*entity.Collection, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	collection := &entity.Collection{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    isPublic,
	}
	created, err := c.collectionRepository.CreateCollection(ctx, collection)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return created, nil
}

func (c *collectionController) AddRecipe(ctx context.Context, collectionID, recipeID, requestingUserID uint) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	return translateTimeout(c.collectionRepository.AddRecipe(ctx, collectionID, recipeID, requestingUserID))
}

func (c *collectionController) ListByUser(ctx context.Context, userID uint) ([]entity.Collection, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	collections, err := c.collectionRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return collections, nil
}

func (c *collectionController) ListPublic(ctx context.Context) ([]entity.Collection, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	collections, err := c.collectionRepository.ListPublic(ctx)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return collections, nil
}

func (c *collectionController) ListRecipes(ctx context.Context, collectionID uint) ([]uint, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	recipeIDs, err := c.collectionRepository.ListRecipes(ctx, collectionID)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return recipeIDs, nil
}

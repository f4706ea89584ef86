package repository

import (
	"context"
	"errors"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
)

// CollectionRepository is a struct that holds the database connection.
type CollectionRepository struct {
	DB *gorm.DB
}

// NewCollectionRepository creates and returns a new CollectionRepository.
func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{
		DB: db,
	}
}

// CreateCollection creates a new collection for a user.
func (r *CollectionRepository) CreateCollection(ctx context.Context, collectionEntity *entity.Collection) (*entity.Collection, error) {
	collectionModel := model.Collection{
		UserID:      collectionEntity.UserID,
		Title:       collectionEntity.Title,
		Description: collectionEntity.Description,
		IsPublic:    collectionEntity.IsPublic,
	}
	if err := r.DB.WithContext(ctx).Create(&collectionModel).Error; err != nil {
		return nil, err
	}
	return mapper.CollectionModelToEntity(&collectionModel), nil
}

// GetCollection fetches a collection by ID.
func (r *CollectionRepository) GetCollection(ctx context.Context, id uint) (*entity.Collection, error) {
	var collectionModel model.Collection
	if err := r.DB.WithContext(ctx).First(&collectionModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrCollectionNotFound
		}
		return nil, err
	}
	return mapper.CollectionModelToEntity(&collectionModel), nil
}

// AddRecipe links a recipe to a collection. The ownership check lives
// inside the operation so no caller can bypass it. Adding a recipe twice
// is a no-op.
func (r *CollectionRepository) AddRecipe(ctx context.Context, collectionID, recipeID, requestingUserID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var collectionModel model.Collection
		if err := tx.First(&collectionModel, collectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrCollectionNotFound
			}
			return err
		}
		if collectionModel.UserID != requestingUserID {
			return entity.ErrForbidden
		}

		if err := tx.First(&model.Recipe{}, recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrRecipeNotFound
			}
			return err
		}

		var count int64
		err := tx.Model(&model.CollectionRecipe{}).
			Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		row := model.CollectionRecipe{CollectionID: collectionID, RecipeID: recipeID}
		return tx.Create(&row).Error
	})
}

// ListByUser returns a user's collections, newest-first.
func (r *CollectionRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Collection, error) {
	var collectionModels []model.Collection
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&collectionModels).Error
	if err != nil {
		return nil, err
	}
	return collectionsToEntities(collectionModels), nil
}

// ListPublic returns all public collections, newest-first.
func (r *CollectionRepository) ListPublic(ctx context.Context) ([]entity.Collection, error) {
	var collectionModels []model.Collection
	err := r.DB.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC, id DESC").
		Find(&collectionModels).Error
	if err != nil {
		return nil, err
	}
	return collectionsToEntities(collectionModels), nil
}

// ListRecipes returns the recipe ids linked to a collection, in insertion
// order.
func (r *CollectionRepository) ListRecipes(ctx context.Context, collectionID uint) ([]uint, error) {
	if _, err := r.GetCollection(ctx, collectionID); err != nil {
		return nil, err
	}
	var recipeIDs []uint
	err := r.DB.WithContext(ctx).Model(&model.CollectionRecipe{}).
		Where("collection_id = ?", collectionID).
		Order("id").
		Pluck("recipe_id", &recipeIDs).Error
	if err != nil {
		return nil, err
	}
	return recipeIDs, nil
}

func collectionsToEntities(collectionModels []model.Collection) []entity.Collection {
	collections := make([]entity.Collection, len(collectionModels))
	for i := range collectionModels {
		collections[i] = *mapper.CollectionModelToEntity(&collectionModels[i])
	}
	return collections
}

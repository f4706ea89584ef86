package repository

import (
	"context"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
)

// ShoppingListRepository is a struct that holds the database connection.
type ShoppingListRepository struct {
	DB *gorm.DB
}

// NewShoppingListRepository creates and returns a new ShoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{
		DB: db,
	}
}

// CreateShoppingList stores a shopping list. Item lines are validated at
// construction; the recipe id list is stored verbatim and deliberately not
// checked against the recipes table.
func (r *ShoppingListRepository) CreateShoppingList(ctx context.Context, listEntity *entity.ShoppingList) (*entity.ShoppingList, error) {
	items, err := model.NewShoppingItemList(listEntity.Items)
	if err != nil {
		return nil, err
	}
	recipes := make(model.RecipeIDList, len(listEntity.Recipes))
	copy(recipes, listEntity.Recipes)

	listModel := model.ShoppingList{
		UserID:  listEntity.UserID,
		Title:   listEntity.Title,
		Recipes: recipes,
		Items:   items,
	}
	if err := r.DB.WithContext(ctx).Create(&listModel).Error; err != nil {
		return nil, err
	}
	return mapper.ShoppingListModelToEntity(&listModel), nil
}

// ListByUser returns a user's shopping lists, newest-first.
func (r *ShoppingListRepository) ListByUser(ctx context.Context, userID uint) ([]entity.ShoppingList, error) {
	var listModels []model.ShoppingList
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&listModels).Error
	if err != nil {
		return nil, err
	}
	lists := make([]entity.ShoppingList, len(listModels))
	for i := range listModels {
		lists[i] = *mapper.ShoppingListModelToEntity(&listModels[i])
	}
	return lists, nil
}

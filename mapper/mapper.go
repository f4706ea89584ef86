package mapper

import (
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/model"
)

// UserEntityToModel maps a User entity to the corresponding model. The
// entity's Password field is expected to already be a digest; hashing is
// the controller's job.
func UserEntityToModel(e *entity.User) *model.User {
	return &model.User{
		ID:           e.ID,
		Email:        e.Email,
		PasswordHash: e.Password,
		Username:     e.Username,
		Avatar:       e.Avatar,
		Bio:          e.Bio,
		DateJoined:   e.DateJoined,
		IsActive:     e.IsActive,
		IsStaff:      e.IsStaff,
	}
}

// UserModelToEntity maps a User model to the corresponding entity.
func UserModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:         m.ID,
		Email:      m.Email,
		Password:   m.PasswordHash,
		Username:   m.Username,
		Avatar:     m.Avatar,
		Bio:        m.Bio,
		DateJoined: m.DateJoined,
		IsActive:   m.IsActive,
		IsStaff:    m.IsStaff,
	}
}

// RecipeModelToEntity maps a Recipe model plus its ingredient lines to the
// corresponding entity.
func RecipeModelToEntity(m *model.Recipe, ingredients []entity.RecipeIngredient) *entity.Recipe {
	steps := make([]entity.RecipeStep, len(m.Steps))
	copy(steps, m.Steps)
	return &entity.Recipe{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Description: m.Description,
		CookTime:    m.CookTime,
		Category:    m.Category,
		Diet:        m.Diet,
		Cuisine:     m.Cuisine,
		Steps:       steps,
		Ingredients: ingredients,
		Image:       m.Image,
		RatingAvg:   m.RatingAvg,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IngredientModelToEntity maps an Ingredient model to the corresponding entity.
func IngredientModelToEntity(m *model.Ingredient) *entity.Ingredient {
	return &entity.Ingredient{
		ID:          m.ID,
		Name:        m.Name,
		DefaultUnit: m.DefaultUnit,
	}
}

// ReviewModelToEntity maps a Review model to the corresponding entity.
func ReviewModelToEntity(m *model.Review) *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		RecipeID:  m.RecipeID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

// CollectionModelToEntity maps a Collection model to the corresponding entity.
func CollectionModelToEntity(m *model.Collection) *entity.Collection {
	return &entity.Collection{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
	}
}

// ShoppingListModelToEntity maps a ShoppingList model to the corresponding entity.
func ShoppingListModelToEntity(m *model.ShoppingList) *entity.ShoppingList {
	recipes := make([]uint, len(m.Recipes))
	copy(recipes, m.Recipes)
	items := make([]entity.ShoppingListItem, len(m.Items))
	copy(items, m.Items)
	return &entity.ShoppingList{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Recipes:   recipes,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

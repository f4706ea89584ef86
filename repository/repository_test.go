package repository

import (
	"context"
	"testing"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens an in-memory database with the full schema. A single
// connection keeps every session on the same in-memory store.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *entity.User {
	t.Helper()

	repo := NewUserRepository(db)
	user, err := repo.CreateUser(context.Background(), &entity.User{
		Email:    email,
		Username: username,
		Password: "not-a-real-digest",
		IsActive: true,
	})
	require.NoError(t, err)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID uint, title string, ingredients []entity.RecipeIngredient) *entity.Recipe {
	t.Helper()

	repo := NewRecipeRepository(db)
	recipe, err := repo.CreateRecipe(context.Background(), &entity.Recipe{
		AuthorID:    authorID,
		Title:       title,
		Description: "test description",
		CookTime:    15,
		Category:    "Dinner",
		Steps: []entity.RecipeStep{
			{Order: 1, Text: "Prepare."},
			{Order: 2, Text: "Cook."},
		},
		Ingredients: ingredients,
	})
	require.NoError(t, err)
	return recipe
}

package seed

import (
	"errors"

	"github.com/phvlkn/CookBook/logger"
	"github.com/phvlkn/CookBook/model"
	"github.com/phvlkn/CookBook/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run inserts demo data. Every step is idempotent: existing rows are
// reused, so restarting the server never duplicates fixtures.
func Run(db *gorm.DB) error {
	alice, err := ensureUser(db, "alice@example.com", "alicepass", "alice", "Home cook and baker")
	if err != nil {
		return err
	}
	bob, err := ensureUser(db, "bob@example.com", "bobpass", "bob", "Quick meals specialist")
	if err != nil {
		return err
	}

	ingredients := []model.Ingredient{
		{Name: "Flour", DefaultUnit: "г"},
		{Name: "Sugar", DefaultUnit: "г"},
		{Name: "Eggs", DefaultUnit: "шт"},
		{Name: "Butter", DefaultUnit: "г"},
		{Name: "Milk", DefaultUnit: "мл"},
		{Name: "Salt", DefaultUnit: "г"},
	}
	for i := range ingredients {
		if err := ensureIngredient(db, &ingredients[i]); err != nil {
			return err
		}
	}

	pancakes, created, err := ensureRecipe(db, &model.Recipe{
		AuthorID:    alice.ID,
		Title:       "Classic Pancakes",
		Description: "Fluffy classic pancakes perfect for breakfast.",
		CookTime:    20,
		Category:    "Breakfast",
		Cuisine:     "American",
		Steps: model.StepList{
			{Order: 1, Text: "Whisk flour, sugar, salt, eggs and milk into a smooth batter."},
			{Order: 2, Text: "Fry ladles of batter in butter until golden on both sides."},
		},
	})
	if err != nil {
		return err
	}
	if created {
		lines := []struct {
			name     string
			quantity float64
			unit     string
		}{
			{"Flour", 200, "г"},
			{"Sugar", 30, "г"},
			{"Eggs", 2, "шт"},
			{"Milk", 300, "мл"},
			{"Butter", 40, "г"},
			{"Salt", 5, "г"},
		}
		for _, line := range lines {
			var ingredient model.Ingredient
			if err := db.Where("name = ?", line.name).First(&ingredient).Error; err != nil {
				return err
			}
			row := model.RecipeIngredient{
				RecipeID:     pancakes.ID,
				IngredientID: ingredient.ID,
				Quantity:     line.quantity,
				Unit:         line.unit,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}

		review := model.Review{
			RecipeID: pancakes.ID,
			UserID:   bob.ID,
			Rating:   5,
			Comment:  "Simple and delicious.",
		}
		if err := db.Create(&review).Error; err != nil {
			return err
		}
		err = db.Exec(
			"UPDATE recipes SET rating_avg = (SELECT AVG(rating) FROM reviews WHERE recipe_id = ?) WHERE id = ?",
			pancakes.ID, pancakes.ID,
		).Error
		if err != nil {
			return err
		}
	}

	if err := ensureCollection(db, alice.ID, "Breakfast Ideas", pancakes.ID); err != nil {
		return err
	}

	logger.Info("seed data ready",
		zap.Uint("alice_id", alice.ID),
		zap.Uint("pancakes_id", pancakes.ID))
	return nil
}

func ensureUser(db *gorm.DB, email, password, username, bio string) (*model.User, error) {
	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user = model.User{
		Email:        email,
		PasswordHash: digest,
		Username:     username,
		Bio:          bio,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ensureIngredient(db *gorm.DB, ingredient *model.Ingredient) error {
	var existing model.Ingredient
	err := db.Where("name = ?", ingredient.Name).First(&existing).Error
	if err == nil {
		*ingredient = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(ingredient).Error
}

func ensureRecipe(db *gorm.DB, recipe *model.Recipe) (*model.Recipe, bool, error) {
	var existing model.Recipe
	err := db.Where("title = ? AND author_id = ?", recipe.Title, recipe.AuthorID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := db.Create(recipe).Error; err != nil {
		return nil, false, err
	}
	return recipe, true, nil
}

func ensureCollection(db *gorm.DB, userID uint, title string, recipeID uint) error {
	var collection model.Collection
	err := db.Where("user_id = ? AND title = ?", userID, title).First(&collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		collection = model.Collection{UserID: userID, Title: title, IsPublic: true}
		if err := db.Create(&collection).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var count int64
	err = db.Model(&model.CollectionRecipe{}).
		Where("collection_id = ? AND recipe_id = ?", collection.ID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		row := model.CollectionRecipe{CollectionID: collection.ID, RecipeID: recipeID}
		return db.Create(&row).Error
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
)

const defaultRecipePageSize = 50

// RecipeRepository is a struct that holds the database connection.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates and returns a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{
		DB: db,
	}
}

// CreateRecipe inserts the recipe and its ingredient association rows in
// one transaction. Unknown ingredient names are created on the fly; the
// quantity and unit land on the association row.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipeEntity *entity.Recipe) (*entity.Recipe, error) {
	steps := make(model.StepList, len(recipeEntity.Steps))
	copy(steps, recipeEntity.Steps)

	recipeModel := model.Recipe{
		AuthorID:    recipeEntity.AuthorID,
		Title:       recipeEntity.Title,
		Description: recipeEntity.Description,
		CookTime:    recipeEntity.CookTime,
		Category:    recipeEntity.Category,
		Diet:        recipeEntity.Diet,
		Cuisine:     recipeEntity.Cuisine,
		Steps:       steps,
		Image:       recipeEntity.Image,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipeModel).Error; err != nil {
			return err
		}
		for _, line := range recipeEntity.Ingredients {
			ingredientModel, err := getOrCreateIngredient(tx, line.Name, line.Unit)
			if err != nil {
				return err
			}
			unit := line.Unit
			if unit == "" {
				unit = ingredientModel.DefaultUnit
			}
			row := model.RecipeIngredient{
				RecipeID:     recipeModel.ID,
				IngredientID: ingredientModel.ID,
				Quantity:     line.Quantity,
				Unit:         unit,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetRecipe(ctx, recipeModel.ID)
}

// GetRecipe fetches a recipe with its ingredient lines.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipeModel model.Recipe
	if err := r.DB.WithContext(ctx).First(&recipeModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrRecipeNotFound
		}
		return nil, err
	}
	lines, err := r.ingredientLines(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	return mapper.RecipeModelToEntity(&recipeModel, lines[id]), nil
}

// ListRecipes returns recipes newest-first with offset/limit pagination.
func (r *RecipeRepository) ListRecipes(ctx context.Context, skip, limit int) ([]entity.Recipe, error) {
	return r.listRecipes(ctx, r.DB.WithContext(ctx).Model(&model.Recipe{}), skip, limit)
}

// GetRecipesByUser returns the recipes authored by one user, newest-first.
func (r *RecipeRepository) GetRecipesByUser(ctx context.Context, userID uint, skip, limit int) ([]entity.Recipe, error) {
	query := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", userID)
	return r.listRecipes(ctx, query, skip, limit)
}

// SearchRecipes matches the query as a case-insensitive substring against
// title, description, category, cuisine and associated ingredient names.
// Results are deduplicated by recipe id, ordered newest-first, then
// paginated.
func (r *RecipeRepository) SearchRecipes(ctx context.Context, query string, skip, limit int) ([]entity.Recipe, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	search := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Select("recipes.*").
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where(
			"LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ? OR LOWER(recipes.category) LIKE ? OR LOWER(recipes.cuisine) LIKE ? OR LOWER(ingredients.name) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Group("recipes.id")
	return r.listRecipes(ctx, search, skip, limit)
}

// DeleteRecipe removes a recipe together with its reviews and association
// rows. Only the author may delete.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id, requestingUserID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeModel model.Recipe
		if err := tx.First(&recipeModel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrRecipeNotFound
			}
			return err
		}
		if recipeModel.AuthorID != requestingUserID {
			return entity.ErrForbidden
		}
		return deleteRecipeRows(tx, id)
	})
}

// deleteRecipeRows deletes a recipe and its dependent rows inside an open
// transaction. Shared with the user cascade.
func deleteRecipeRows(tx *gorm.DB, recipeID uint) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.CollectionRecipe{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Recipe{}, recipeID).Error
}

func (r *RecipeRepository) listRecipes(ctx context.Context, query *gorm.DB, skip, limit int) ([]entity.Recipe, error) {
	if limit <= 0 {
		limit = defaultRecipePageSize
	}
	if skip < 0 {
		skip = 0
	}

	var recipeModels []model.Recipe
	err := query.
		Order("recipes.created_at DESC, recipes.id DESC").
		Offset(skip).
		Limit(limit).
		Find(&recipeModels).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(recipeModels))
	for i := range recipeModels {
		ids[i] = recipeModels[i].ID
	}
	lines, err := r.ingredientLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	recipes := make([]entity.Recipe, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = *mapper.RecipeModelToEntity(&recipeModels[i], lines[recipeModels[i].ID])
	}
	return recipes, nil
}

// ingredientLines loads the ingredient lines for a set of recipes in one
// query, keyed by recipe id.
func (r *RecipeRepository) ingredientLines(ctx context.Context, recipeIDs []uint) (map[uint][]entity.RecipeIngredient, error) {
	lines := make(map[uint][]entity.RecipeIngredient, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return lines, nil
	}

	type lineRow struct {
		RecipeID uint
		Name     string
		Quantity float64
		Unit     string
	}
	var rows []lineRow
	err := r.DB.WithContext(ctx).Model(&model.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id, ingredients.name, recipe_ingredients.quantity, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		lines[row.RecipeID] = append(lines[row.RecipeID], entity.RecipeIngredient{
			Name:     row.Name,
			Quantity: row.Quantity,
			Unit:     row.Unit,
		})
	}
	return lines, nil
}

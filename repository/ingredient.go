package repository

import (
	"context"
	"errors"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultIngredientUnit applies when an ingredient line carries no unit.
const DefaultIngredientUnit = "г"

// IngredientRepository is a struct that holds the database connection.
type IngredientRepository struct {
	DB *gorm.DB
}

// NewIngredientRepository creates and returns a new IngredientRepository.
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{
		DB: db,
	}
}

// GetOrCreate returns the ingredient with the given name, inserting it
// first when absent. Idempotent by name, including under concurrent calls.
func (r *IngredientRepository) GetOrCreate(ctx context.Context, name, defaultUnit string) (*entity.Ingredient, error) {
	ingredientModel, err := getOrCreateIngredient(r.DB.WithContext(ctx), name, defaultUnit)
	if err != nil {
		return nil, err
	}
	return mapper.IngredientModelToEntity(ingredientModel), nil
}

// Get fetches one ingredient by id.
func (r *IngredientRepository) Get(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientModel model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ingredientModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrIngredientNotFound
		}
		return nil, err
	}
	return mapper.IngredientModelToEntity(&ingredientModel), nil
}

// List returns all ingredients ordered by name.
func (r *IngredientRepository) List(ctx context.Context) ([]entity.Ingredient, error) {
	var ingredientModels []model.Ingredient
	if err := r.DB.WithContext(ctx).Order("name").Find(&ingredientModels).Error; err != nil {
		return nil, err
	}
	ingredients := make([]entity.Ingredient, len(ingredientModels))
	for i := range ingredientModels {
		ingredients[i] = *mapper.IngredientModelToEntity(&ingredientModels[i])
	}
	return ingredients, nil
}

// getOrCreateIngredient is the upsert shared with the recipe repository so
// it can run inside a recipe transaction. ON CONFLICT DO NOTHING on the
// name's unique index closes the exact-match race: the losing writer falls
// through to the re-select and finds the winner's row.
func getOrCreateIngredient(db *gorm.DB, name, defaultUnit string) (*model.Ingredient, error) {
	if defaultUnit == "" {
		defaultUnit = DefaultIngredientUnit
	}
	ingredientModel := model.Ingredient{Name: name, DefaultUnit: defaultUnit}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&ingredientModel).Error
	if err != nil {
		return nil, err
	}
	if ingredientModel.ID == 0 {
		if err := db.Where("name = ?", name).First(&ingredientModel).Error; err != nil {
			return nil, err
		}
	}
	return &ingredientModel, nil
}

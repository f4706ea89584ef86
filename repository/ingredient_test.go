package repository

import (
	"context"
	"testing"

	"github.com/phvlkn/CookBook/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIngredientIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "Flour", "г")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "г", first.DefaultUnit)

	second, err := repo.GetOrCreate(ctx, "Flour", "г")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateIngredientKeepsExistingUnit(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "Milk", "мл")
	require.NoError(t, err)

	// A second caller with a different unit still gets the original row.
	second, err := repo.GetOrCreate(ctx, "Milk", "л")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "мл", second.DefaultUnit)
}

func TestGetOrCreateIngredientCaseSensitive(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	upper, err := repo.GetOrCreate(ctx, "Flour", "г")
	require.NoError(t, err)
	lower, err := repo.GetOrCreate(ctx, "flour", "г")
	require.NoError(t, err)

	assert.NotEqual(t, upper.ID, lower.ID)
}

func TestGetOrCreateIngredientDefaultUnit(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)

	ingredient, err := repo.GetOrCreate(context.Background(), "Salt", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultIngredientUnit, ingredient.DefaultUnit)
}

func TestGetIngredient(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "Butter", "г")
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Butter", got.Name)
	assert.Equal(t, "г", got.DefaultUnit)

	_, err = repo.Get(ctx, 9999)
	assert.ErrorIs(t, err, entity.ErrIngredientNotFound)
}

func TestListIngredients(t *testing.T) {
	db := setupDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Sugar", "Eggs", "Butter"} {
		_, err := repo.GetOrCreate(ctx, name, "")
		require.NoError(t, err)
	}

	ingredients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Butter", ingredients[0].Name)
	assert.Equal(t, "Eggs", ingredients[1].Name)
	assert.Equal(t, "Sugar", ingredients[2].Name)
}

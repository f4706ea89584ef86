package repository

import (
	"context"
	"testing"

	"github.com/phvlkn/CookBook/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShoppingList(t *testing.T) {
	db := setupDB(t)
	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com", "alice")

	created, err := repo.CreateShoppingList(ctx, &entity.ShoppingList{
		UserID:  alice.ID,
		Title:   "Weekend baking",
		Recipes: []uint{1, 2, 999}, // ids are stored verbatim, not checked
		Items: []entity.ShoppingListItem{
			{Ingredient: "Flour", Quantity: 200, Unit: "г"},
			{Ingredient: "Eggs", Quantity: 2, Unit: "шт"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	lists, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekend baking", lists[0].Title)
	assert.Equal(t, []uint{1, 2, 999}, lists[0].Recipes)
	require.Len(t, lists[0].Items, 2)
	assert.Equal(t, "Flour", lists[0].Items[0].Ingredient)
	assert.Equal(t, 200.0, lists[0].Items[0].Quantity)
}

func TestCreateShoppingListInvalidItems(t *testing.T) {
	db := setupDB(t)
	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com", "alice")

	_, err := repo.CreateShoppingList(ctx, &entity.ShoppingList{
		UserID: alice.ID,
		Title:  "Broken",
		Items:  []entity.ShoppingListItem{{Ingredient: "", Quantity: 1, Unit: "г"}},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPayload)

	_, err = repo.CreateShoppingList(ctx, &entity.ShoppingList{
		UserID: alice.ID,
		Title:  "Broken",
		Items:  []entity.ShoppingListItem{{Ingredient: "Flour", Quantity: 0, Unit: "г"}},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPayload)
}

func TestListShoppingListsScopedToUser(t *testing.T) {
	db := setupDB(t)
	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com", "alice")
	bob := createTestUser(t, db, "bob@example.com", "bob")

	_, err := repo.CreateShoppingList(ctx, &entity.ShoppingList{
		UserID: alice.ID, Title: "Alice's list",
		Items: []entity.ShoppingListItem{{Ingredient: "Milk", Quantity: 1000, Unit: "мл"}},
	})
	require.NoError(t, err)

	lists, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

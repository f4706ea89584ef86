package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/handler"
	"github.com/phvlkn/CookBook/model"
	"github.com/phvlkn/CookBook/repository"
	"github.com/phvlkn/CookBook/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(model.All()...))

	timeout := 5 * time.Second
	userController := controller.NewUserController(repository.NewUserRepository(db), timeout)
	recipeController := controller.NewRecipeController(repository.NewRecipeRepository(db), timeout)
	ingredientController := controller.NewIngredientController(repository.NewIngredientRepository(db), timeout)
	reviewController := controller.NewReviewController(repository.NewReviewRepository(db), timeout)
	collectionController := controller.NewCollectionController(repository.NewCollectionRepository(db), timeout)
	shoppingListController := controller.NewShoppingListController(repository.NewShoppingListRepository(db), timeout)

	authService := service.NewAuthService(userController, &entity.Config{JWTSecretKey: "route-test-secret"})

	r := gin.New()
	SetupRoutes(r, Handlers{
		Auth:         handler.NewAuthHandler(authService, userController),
		User:         handler.NewUserHandler(userController),
		Recipe:       handler.NewRecipeHandler(recipeController, reviewController),
		Ingredient:   handler.NewIngredientHandler(ingredientController),
		Collection:   handler.NewCollectionHandler(collectionController),
		ShoppingList: handler.NewShoppingListHandler(shoppingListController),
		AuthService:  authService,
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, password, username string) (uint, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", "", entity.RegisterRequest{
		Email: email, Username: username, Password: password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", "", entity.LoginRequest{
		Email: email, Password: password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	var user entity.User
	require.NoError(t, json.Unmarshal(body["user"], &user))
	var token string
	require.NoError(t, json.Unmarshal(body["access_token"], &token))
	require.NotEmpty(t, token)
	return user.ID, token
}

func TestEndToEndRecipeFlow(t *testing.T) {
	r := setupServer(t)

	aliceID, aliceToken := registerAndLogin(t, r, "alice@example.com", "alicepass", "alice")

	w := doJSON(t, r, http.MethodPost, "/api/recipes", aliceToken, entity.RecipeCreateRequest{
		Title:       "Classic Pancakes",
		Description: "Fluffy classic pancakes perfect for breakfast.",
		CookTime:    20,
		Category:    "Breakfast",
		Steps: []entity.RecipeStep{
			{Order: 1, Text: "Mix the batter."},
			{Order: 2, Text: "Fry until golden."},
		},
		Ingredients: []entity.RecipeIngredient{
			{Name: "Flour", Quantity: 200, Unit: "г"},
			{Name: "Eggs", Quantity: 2, Unit: "шт"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe"], &created))
	require.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/recipes/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe"], &got))
	assert.Equal(t, "Classic Pancakes", got.Title)
	assert.Equal(t, aliceID, got.AuthorID)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, 200.0, got.Ingredients[0].Quantity)
	assert.Equal(t, 2.0, got.Ingredients[1].Quantity)

	// Search finds it by substring, misses on nonsense.
	w = doJSON(t, r, http.MethodGet, "/api/search/recipes?q=pancake", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipes"], &found))
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/search/recipes?q=nonexistentword", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w)["recipes"], &found))
	assert.Empty(t, found)
}

func TestDeleteRecipeAuthorization(t *testing.T) {
	r := setupServer(t)

	_, aliceToken := registerAndLogin(t, r, "alice@example.com", "alicepass", "alice")
	_, bobToken := registerAndLogin(t, r, "bob@example.com", "bobpass99", "bob")

	w := doJSON(t, r, http.MethodPost, "/api/recipes", aliceToken, entity.RecipeCreateRequest{
		Title:       "Pancakes",
		Description: "Breakfast.",
		CookTime:    20,
		Category:    "Breakfast",
		Steps:       []entity.RecipeStep{{Order: 1, Text: "Cook."}},
		Ingredients: []entity.RecipeIngredient{{Name: "Flour", Quantity: 200, Unit: "г"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe"], &created))

	path := fmt.Sprintf("/api/recipes/%d", created.ID)

	w = doJSON(t, r, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewConflictOverHTTP(t *testing.T) {
	r := setupServer(t)

	_, aliceToken := registerAndLogin(t, r, "alice@example.com", "alicepass", "alice")
	_, bobToken := registerAndLogin(t, r, "bob@example.com", "bobpass99", "bob")

	w := doJSON(t, r, http.MethodPost, "/api/recipes", aliceToken, entity.RecipeCreateRequest{
		Title:       "Pancakes",
		Description: "Breakfast.",
		CookTime:    20,
		Category:    "Breakfast",
		Steps:       []entity.RecipeStep{{Order: 1, Text: "Cook."}},
		Ingredients: []entity.RecipeIngredient{{Name: "Flour", Quantity: 200, Unit: "г"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe"], &created))

	reviewPath := fmt.Sprintf("/api/recipes/%d/reviews", created.ID)
	w = doJSON(t, r, http.MethodPost, reviewPath, bobToken, entity.ReviewCreateRequest{Rating: 5})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, reviewPath, bobToken, entity.ReviewCreateRequest{Rating: 4})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/recipes", "", entity.RecipeCreateRequest{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentialsOverHTTP(t *testing.T) {
	r := setupServer(t)

	registerAndLogin(t, r, "alice@example.com", "alicepass", "alice")

	w := doJSON(t, r, http.MethodPost, "/api/login", "", entity.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", entity.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCollectionAndShoppingListFlow(t *testing.T) {
	r := setupServer(t)

	_, aliceToken := registerAndLogin(t, r, "alice@example.com", "alicepass", "alice")

	w := doJSON(t, r, http.MethodPost, "/api/recipes", aliceToken, entity.RecipeCreateRequest{
		Title:       "Pancakes",
		Description: "Breakfast.",
		CookTime:    20,
		Category:    "Breakfast",
		Steps:       []entity.RecipeStep{{Order: 1, Text: "Cook."}},
		Ingredients: []entity.RecipeIngredient{{Name: "Flour", Quantity: 200, Unit: "г"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var recipe entity.Recipe
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe"], &recipe))

	w = doJSON(t, r, http.MethodPost, "/api/collections", aliceToken, entity.CollectionCreateRequest{
		Title: "Breakfast Ideas",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var collection entity.Collection
	require.NoError(t, json.Unmarshal(decode(t, w)["collection"], &collection))
	assert.True(t, collection.IsPublic) // default

	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/collections/%d/recipes/%d", collection.ID, recipe.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/collections/%d/recipes", collection.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recipeIDs []uint
	require.NoError(t, json.Unmarshal(decode(t, w)["recipe_ids"], &recipeIDs))
	assert.Equal(t, []uint{recipe.ID}, recipeIDs)

	w = doJSON(t, r, http.MethodPost, "/api/shopping-lists", aliceToken, entity.ShoppingListCreateRequest{
		Title:   "Weekend baking",
		Recipes: []uint{recipe.ID},
		Items:   []entity.ShoppingListItem{{Ingredient: "Flour", Quantity: 200, Unit: "г"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/shopping-lists", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lists []entity.ShoppingList
	require.NoError(t, json.Unmarshal(decode(t, w)["shopping_lists"], &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekend baking", lists[0].Title)
}

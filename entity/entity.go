package entity

import (
	"encoding/json"
	"time"
)

// User represents an application user.
type User struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   string    `json:"password,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	DateJoined time.Time `json:"date_joined"`
	IsActive   bool      `json:"is_active"`
	IsStaff    bool      `json:"is_staff"`
}

// MarshalJSON implements the custom JSON serialization for User
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User // Create an alias to avoid infinite recursion
	return json.Marshal(&struct {
		*Alias
		Password string `json:"-"` // Exclude password field
	}{
		Alias:    (*Alias)(&u),
		Password: "",
	})
}

// RecipeStep is a single ordered instruction in a recipe.
type RecipeStep struct {
	Order int    `json:"order"`
	Text  string `json:"text"`
}

// RecipeIngredient is one ingredient line of a recipe, carrying the
// recipe-specific quantity and unit (the edge attributes, not the
// ingredient defaults).
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe represents a recipe in the system.
type Recipe struct {
	ID          uint               `json:"id"`
	AuthorID    uint               `json:"author_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CookTime    int                `json:"cook_time"`
	Category    string             `json:"category"`
	Diet        string             `json:"diet,omitempty"`
	Cuisine     string             `json:"cuisine,omitempty"`
	Steps       []RecipeStep       `json:"steps"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Image       string             `json:"image,omitempty"`
	RatingAvg   float64            `json:"rating_avg"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Ingredient represents a canonical ingredient name with its default unit.
type Ingredient struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DefaultUnit string `json:"default_unit"`
}

// Review is one user's rating and optional comment for one recipe.
type Review struct {
	ID        uint      `json:"id"`
	RecipeID  uint      `json:"recipe_id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Collection is a user-curated set of recipes.
type Collection struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShoppingListItem is one line of a shopping list.
type ShoppingListItem struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// ShoppingList is a user's denormalized shopping list: the recipe ids it
// was built from plus the item lines themselves.
type ShoppingList struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"user_id"`
	Title     string             `json:"title"`
	Recipes   []uint             `json:"recipes"`
	Items     []ShoppingListItem `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

type RecipeCreateRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description" binding:"required"`
	CookTime    int                `json:"cook_time" binding:"required"`
	Category    string             `json:"category" binding:"required"`
	Diet        string             `json:"diet"`
	Cuisine     string             `json:"cuisine"`
	Steps       []RecipeStep       `json:"steps" binding:"required"`
	Ingredients []RecipeIngredient `json:"ingredients" binding:"required"`
	Image       string             `json:"image"`
}

type ReviewCreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type CollectionCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type ShoppingListCreateRequest struct {
	Title   string             `json:"title" binding:"required"`
	Recipes []uint             `json:"recipes"`
	Items   []ShoppingListItem `json:"items"`
}

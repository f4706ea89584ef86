package model

import (
	"time"
)

// User represents an application user.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Hide password from JSON
	Username     string    `gorm:"size:100;not null" json:"username"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	Bio          string    `gorm:"type:text" json:"bio"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
}

// Recipe represents a recipe in the system.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CookTime    int       `gorm:"not null" json:"cook_time"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Diet        string    `gorm:"size:50" json:"diet"`
	Cuisine     string    `gorm:"size:50" json:"cuisine"`
	Steps       StepList  `gorm:"type:jsonb;not null" json:"steps"`
	Image       string    `gorm:"size:255" json:"image"`
	RatingAvg   float64   `gorm:"default:0" json:"rating_avg"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Ingredient represents a canonical ingredient. Names are unique and
// matched case-sensitively.
type Ingredient struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DefaultUnit string `gorm:"size:20;not null" json:"default_unit"`
}

// RecipeIngredient is the recipe↔ingredient association row. Quantity and
// unit belong to the edge, not to the ingredient.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;index" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Unit         string  `gorm:"size:20;not null" json:"unit"`
}

// Review is a user's rating of a recipe. The composite unique index backs
// the one-review-per-(user,recipe) invariant; the application pre-check is
// advisory only.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_review_recipe_user" json:"recipe_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_recipe_user" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Collection is a user-curated set of recipes.
type Collection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CollectionRecipe is the collection↔recipe association row.
type CollectionRecipe struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	CollectionID uint `gorm:"not null;index" json:"collection_id"`
	RecipeID     uint `gorm:"not null;index" json:"recipe_id"`
}

// ShoppingList stores the recipe ids it was built from and its item lines
// as typed JSONB payloads.
type ShoppingList struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Title     string           `gorm:"size:150;not null" json:"title"`
	Recipes   RecipeIDList     `gorm:"type:jsonb;not null" json:"recipes"`
	Items     ShoppingItemList `gorm:"type:jsonb;not null" json:"items"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// All returns every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&Review{},
		&Collection{},
		&CollectionRecipe{},
		&ShoppingList{},
	}
}

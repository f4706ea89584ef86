package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/phvlkn/CookBook/entity"
)

// StepList is a recipe's ordered instruction sequence, stored as JSONB.
type StepList []entity.RecipeStep

func (s StepList) Value() (driver.Value, error) {
	if s == nil {
		s = StepList{}
	}
	return json.Marshal(s)
}

func (s *StepList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// RecipeIDList is the set of recipe ids a shopping list was built from.
type RecipeIDList []uint

func (l RecipeIDList) Value() (driver.Value, error) {
	if l == nil {
		l = RecipeIDList{}
	}
	return json.Marshal(l)
}

func (l *RecipeIDList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ShoppingItemList is the item lines of a shopping list.
type ShoppingItemList []entity.ShoppingListItem

// NewShoppingItemList validates the raw item lines: every line needs an
// ingredient name and a positive quantity.
func NewShoppingItemList(items []entity.ShoppingListItem) (ShoppingItemList, error) {
	for i, item := range items {
		if item.Ingredient == "" {
			return nil, fmt.Errorf("%w: item %d has no ingredient name", entity.ErrInvalidPayload, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has non-positive quantity", entity.ErrInvalidPayload, i)
		}
	}
	return ShoppingItemList(items), nil
}

func (l ShoppingItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ShoppingItemList{}
	}
	return json.Marshal(l)
}

func (l *ShoppingItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

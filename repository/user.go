package repository

import (
	"context"
	"errors"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// CreateUser creates a new user in the database. A unique violation on the
// email column is reported as entity.ErrDuplicateEmail.
func (r *UserRepository) CreateUser(ctx context.Context, userEntity *entity.User) (*entity.User, error) {
	userModel := mapper.UserEntityToModel(userEntity)
	userModel.IsActive = true

	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrDuplicateEmail
		}
		return nil, err
	}
	return mapper.UserModelToEntity(userModel), nil
}

// GetUserByID fetches a user from the database by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// GetUserByEmail fetches a user by exact email match.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// DeleteUser deletes a user and everything the user owns: recipes (with
// their reviews and association rows), reviews written by the user,
// collections and shopping lists.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		if err := tx.First(&userModel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrUserNotFound
			}
			return err
		}

		var recipeIDs []uint
		if err := tx.Model(&model.Recipe{}).Where("author_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		for _, recipeID := range recipeIDs {
			if err := deleteRecipeRows(tx, recipeID); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}

		var collectionIDs []uint
		if err := tx.Model(&model.Collection{}).Where("user_id = ?", id).Pluck("id", &collectionIDs).Error; err != nil {
			return err
		}
		if len(collectionIDs) > 0 {
			if err := tx.Where("collection_id IN ?", collectionIDs).Delete(&model.CollectionRecipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Collection{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.ShoppingList{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, id).Error
	})
}

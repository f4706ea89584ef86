package repository

import (
	"context"
	"errors"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/mapper"
	"github.com/phvlkn/CookBook/model"

	"gorm.io/gorm"
)

// ReviewRepository is a struct that holds the database connection.
type ReviewRepository struct {
	DB *gorm.DB
}

// NewReviewRepository creates and returns a new ReviewRepository.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

// CreateReview inserts a review and recomputes the recipe's rating average
// in the same transaction. At most one review per (user, recipe): the
// pre-check gives a friendly answer, the composite unique index backs it
// under concurrency.
func (r *ReviewRepository) CreateReview(ctx context.Context, reviewEntity *entity.Review) (*entity.Review, error) {
	reviewModel := model.Review{
		RecipeID: reviewEntity.RecipeID,
		UserID:   reviewEntity.UserID,
		Rating:   reviewEntity.Rating,
		Comment:  reviewEntity.Comment,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Recipe{}, reviewEntity.RecipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrRecipeNotFound
			}
			return err
		}

		var count int64
		err := tx.Model(&model.Review{}).
			Where("recipe_id = ? AND user_id = ?", reviewEntity.RecipeID, reviewEntity.UserID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return entity.ErrAlreadyReviewed
		}

		if err := tx.Create(&reviewModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return entity.ErrAlreadyReviewed
			}
			return err
		}

		return tx.Exec(
			"UPDATE recipes SET rating_avg = (SELECT AVG(rating) FROM reviews WHERE recipe_id = ?) WHERE id = ?",
			reviewEntity.RecipeID, reviewEntity.RecipeID,
		).Error
	})
	if err != nil {
		return nil, err
	}
	return mapper.ReviewModelToEntity(&reviewModel), nil
}

// ListReviews returns a recipe's reviews, newest-first.
func (r *ReviewRepository) ListReviews(ctx context.Context, recipeID uint) ([]entity.Review, error) {
	var reviewModels []model.Review
	err := r.DB.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}
	reviews := make([]entity.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = *mapper.ReviewModelToEntity(&reviewModels[i])
	}
	return reviews, nil
}

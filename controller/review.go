package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
)

// ReviewController interface
type ReviewController interface {
	CreateReview(ctx context.Context, recipeID, userID uint, req *entity.ReviewCreateRequest) (*entity.Review, error)
	ListReviews(ctx context.Context, recipeID uint) ([]entity.Review, error)
}

// reviewController struct
type reviewController struct {
	reviewRepository *repository.ReviewRepository
	timeout          time.Duration
}

// NewReviewController creates and returns a new ReviewController
func NewReviewController(reviewRepository *repository.ReviewRepository, timeout time.Duration) ReviewController {
	return &reviewController{
		reviewRepository: reviewRepository,
		timeout:          timeout,
	}
}

func (c *reviewController) CreateReview(ctx context.Context, recipeID, userID uint, req *entity.ReviewCreateRequest) (*entity.Review, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	review := &entity.Review{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	created, err := c.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return created, nil
}

func (c *reviewController) ListReviews(ctx context.Context, recipeID uint) ([]entity.Review, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	reviews, err := c.reviewRepository.ListReviews(ctx, recipeID)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return reviews, nil
}

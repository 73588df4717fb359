package repository

import (
	"context"
	"errors"

	"bookswap/internal/models"
	"bookswap/internal/observability"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]models.Review, error) {
	defer observability.TrackQuery("list", "reviews")()

	var reviews []models.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	defer observability.TrackQuery("create", "reviews")()

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "reviews")()

	if err := r.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

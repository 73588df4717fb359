package service

import (
	"context"
	"time"

	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/validation"
)

// ReviewService orchestrates review creation and deletion.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
	userRepo   repository.UserRepository
}

// CreateReviewInput carries the payload for creating a review. Rating is a
// pointer so a missing rating and a zero rating can be told apart; both a
// missing and a negative rating fail the same validation.
type CreateReviewInput struct {
	UserID *uint
	BookID *uint
	Text   string
	Rating *int
}

// NewReviewService returns a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
	}
}

// CreateReview validates the payload, resolves both foreign keys and
// persists the review stamped with the creation time.
func (s *ReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.UserID == nil {
		return nil, models.NewValidationError("user_id", "user_id is required")
	}
	if in.BookID == nil {
		return nil, models.NewValidationError("book_id", "book_id is required")
	}
	if validation.IsBlank(in.Text) {
		return nil, models.NewValidationError("text", "text is required")
	}
	if in.Rating == nil || !validation.IsValidRating(*in.Rating) {
		return nil, models.NewValidationError("rating", "rating must be a non-negative integer")
	}

	user, err := resolveUser(ctx, s.userRepo, *in.UserID, "user_id")
	if err != nil {
		return nil, err
	}
	book, err := resolveBook(ctx, s.bookRepo, *in.BookID, "book_id")
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:    user.ID,
		BookID:    book.ID,
		Text:      in.Text,
		Rating:    *in.Rating,
		Timestamp: time.Now().UTC(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews lists all reviews.
func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.List(ctx)
}

// DeleteReview deletes a single review.
func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}

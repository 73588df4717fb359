package models

import "time"

// Review is a user's review of a book. Timestamp is set at creation and
// never updated. Rating is a non-negative integer with no upper bound.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	BookID    uint      `gorm:"not null;index" json:"book_id"`
	Text      string    `gorm:"not null" json:"text"`
	Rating    int       `gorm:"not null" json:"rating"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// ReviewResponse is the stable wire shape for a review.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	BookID    uint      `json:"book_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReviewResponse maps a Review to its wire shape.
func NewReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Text:      r.Text,
		Rating:    r.Rating,
		Timestamp: r.Timestamp,
	}
}

// NewReviewResponses maps a slice of reviews, always returning a non-nil slice.
func NewReviewResponses(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}

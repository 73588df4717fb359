package server

import (
	"bookswap/internal/models"
	"bookswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createReviewRequest struct {
	UserID *uint  `json:"user_id"`
	BookID *uint  `json:"book_id"`
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
}

// GetReviews handles GET /reviews
func (s *Server) GetReviews(c *fiber.Ctx) error {
	reviews, err := s.reviewService.ListReviews(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewReviewResponses(reviews))
}

// CreateReview handles POST /reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req createReviewRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondDomainError(c, err)
	}

	review, err := s.reviewService.CreateReview(c.Context(), service.CreateReviewInput{
		UserID: req.UserID,
		BookID: req.BookID,
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewReviewResponse(review))
}

// DeleteReview handles DELETE /reviews/:id
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.reviewService.DeleteReview(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

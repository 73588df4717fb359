package service

import (
	"context"
	"time"

	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/validation"
)

// ExchangeService orchestrates exchange creation, the status state machine
// and the ownership eligibility rule.
type ExchangeService struct {
	exchangeRepo repository.ExchangeRepository
	bookRepo     repository.BookRepository
	userRepo     repository.UserRepository
}

// CreateExchangeInput carries the payload for proposing an exchange.
type CreateExchangeInput struct {
	UserID *uint
	BookID *uint
	Place  string
}

// NewExchangeService returns a new ExchangeService.
func NewExchangeService(
	exchangeRepo repository.ExchangeRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) *ExchangeService {
	return &ExchangeService{
		exchangeRepo: exchangeRepo,
		bookRepo:     bookRepo,
		userRepo:     userRepo,
	}
}

// CreateExchange validates the payload, resolves both foreign keys, applies
// the eligibility rule (a user cannot propose an exchange on their own
// book) and persists a pending exchange stamped with the creation time.
func (s *ExchangeService) CreateExchange(ctx context.Context, in CreateExchangeInput) (*models.Exchange, error) {
	if in.UserID == nil {
		return nil, models.NewValidationError("user_id", "user_id is required")
	}
	if in.BookID == nil {
		return nil, models.NewValidationError("book_id", "book_id is required")
	}

	user, err := resolveUser(ctx, s.userRepo, *in.UserID, "user_id")
	if err != nil {
		return nil, err
	}
	book, err := resolveBook(ctx, s.bookRepo, *in.BookID, "book_id")
	if err != nil {
		return nil, err
	}

	if !validation.CanExchange(user.ID, book.OwnerID) {
		return nil, models.NewValidationError("user_id", "cannot propose an exchange for your own book")
	}

	exchange := &models.Exchange{
		UserID:    user.ID,
		BookID:    book.ID,
		Place:     in.Place,
		Timestamp: time.Now().UTC(),
		Status:    models.ExchangeStatusPending,
	}
	if err := s.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, err
	}
	return exchange, nil
}

// ApplyAction runs the state machine for the given action token and
// persists the resulting status. An unrecognized token fails without
// touching storage.
func (s *ExchangeService) ApplyAction(ctx context.Context, id uint, action string) (*models.Exchange, error) {
	exchange, err := s.exchangeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := exchange.ApplyAction(action); err != nil {
		return nil, err
	}
	if err := s.exchangeRepo.Update(ctx, exchange); err != nil {
		return nil, err
	}
	return exchange, nil
}

// ListExchanges lists exchanges matching the filter.
func (s *ExchangeService) ListExchanges(ctx context.Context, filter repository.ExchangeFilter) ([]models.Exchange, error) {
	return s.exchangeRepo.List(ctx, filter)
}

// DeleteExchange deletes a single exchange.
func (s *ExchangeService) DeleteExchange(ctx context.Context, id uint) error {
	if _, err := s.exchangeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.exchangeRepo.Delete(ctx, id)
}

package service

import (
	"context"

	"bookswap/internal/models"
	"bookswap/internal/repository"
)

// Hand-rolled repository stubs. Each method delegates to a function field
// when set and otherwise falls back to a harmless default, so tests only
// spell out the behavior they care about.

type userRepoStub struct {
	getByIDFn       func(id uint) (*models.User, error)
	getByEmailFn    func(email string) (*models.User, error)
	getByUsernameFn func(username string) (*models.User, error)
	listFn          func(email string) ([]models.User, error)
	createFn        func(user *models.User) error
	updateFn        func(user *models.User) error
	deleteFn        func(id uint) error

	usernameLookups int
}

func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.User{ID: id, Username: "reader", Email: "reader@example.com"}, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.usernameLookups++
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(username)
	}
	return nil, nil
}

func (s *userRepoStub) List(_ context.Context, email string) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(email)
	}
	return nil, nil
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(user)
	}
	user.ID = 1
	return nil
}

func (s *userRepoStub) Update(_ context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(user)
	}
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type bookRepoStub struct {
	getByIDFn func(id uint) (*models.Book, error)
	listFn    func(filter repository.BookFilter) ([]models.Book, error)
	createFn  func(book *models.Book) error
	updateFn  func(book *models.Book) error
	deleteFn  func(id uint) error

	updates int
}

func (s *bookRepoStub) GetByID(_ context.Context, id uint) (*models.Book, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.Book{ID: id, Title: "Dune", Author: "Frank Herbert", OwnerID: 2}, nil
}

func (s *bookRepoStub) List(_ context.Context, filter repository.BookFilter) ([]models.Book, error) {
	if s.listFn != nil {
		return s.listFn(filter)
	}
	return nil, nil
}

func (s *bookRepoStub) Create(_ context.Context, book *models.Book) error {
	if s.createFn != nil {
		return s.createFn(book)
	}
	book.ID = 1
	return nil
}

func (s *bookRepoStub) Update(_ context.Context, book *models.Book) error {
	s.updates++
	if s.updateFn != nil {
		return s.updateFn(book)
	}
	return nil
}

func (s *bookRepoStub) Delete(_ context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type exchangeRepoStub struct {
	getByIDFn func(id uint) (*models.Exchange, error)
	listFn    func(filter repository.ExchangeFilter) ([]models.Exchange, error)
	createFn  func(exchange *models.Exchange) error
	updateFn  func(exchange *models.Exchange) error
	deleteFn  func(id uint) error

	creates int
	updates int
}

func (s *exchangeRepoStub) GetByID(_ context.Context, id uint) (*models.Exchange, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.Exchange{ID: id, UserID: 1, BookID: 1, Status: models.ExchangeStatusPending}, nil
}

func (s *exchangeRepoStub) List(_ context.Context, filter repository.ExchangeFilter) ([]models.Exchange, error) {
	if s.listFn != nil {
		return s.listFn(filter)
	}
	return nil, nil
}

func (s *exchangeRepoStub) Create(_ context.Context, exchange *models.Exchange) error {
	s.creates++
	if s.createFn != nil {
		return s.createFn(exchange)
	}
	exchange.ID = 1
	return nil
}

func (s *exchangeRepoStub) Update(_ context.Context, exchange *models.Exchange) error {
	s.updates++
	if s.updateFn != nil {
		return s.updateFn(exchange)
	}
	return nil
}

func (s *exchangeRepoStub) Delete(_ context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type reviewRepoStub struct {
	getByIDFn func(id uint) (*models.Review, error)
	listFn    func() ([]models.Review, error)
	createFn  func(review *models.Review) error
	deleteFn  func(id uint) error

	creates int
}

func (s *reviewRepoStub) GetByID(_ context.Context, id uint) (*models.Review, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.Review{ID: id, UserID: 1, BookID: 1, Text: "fine", Rating: 4}, nil
}

func (s *reviewRepoStub) List(_ context.Context) ([]models.Review, error) {
	if s.listFn != nil {
		return s.listFn()
	}
	return nil, nil
}

func (s *reviewRepoStub) Create(_ context.Context, review *models.Review) error {
	s.creates++
	if s.createFn != nil {
		return s.createFn(review)
	}
	review.ID = 1
	return nil
}

func (s *reviewRepoStub) Delete(_ context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

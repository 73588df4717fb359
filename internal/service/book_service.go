package service

import (
	"context"

	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/validation"
)

// BookService orchestrates book CRUD with owner existence checks.
type BookService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

// CreateBookInput carries the payload for creating a book. OwnerID and
// IsAvailable are pointers so an absent field can be told apart from a
// zero value.
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	OwnerID     *uint
	IsAvailable *bool
}

// NewBookService returns a new BookService.
func NewBookService(bookRepo repository.BookRepository, userRepo repository.UserRepository) *BookService {
	return &BookService{bookRepo: bookRepo, userRepo: userRepo}
}

// CreateBook validates required fields, resolves the owner and persists the
// book. Availability defaults to true when not supplied.
func (s *BookService) CreateBook(ctx context.Context, in CreateBookInput) (*models.Book, error) {
	if validation.IsBlank(in.Title) {
		return nil, models.NewValidationError("title", "title is required")
	}
	if validation.IsBlank(in.Author) {
		return nil, models.NewValidationError("author", "author is required")
	}
	if in.OwnerID == nil {
		return nil, models.NewValidationError("owner_id", "owner_id is required")
	}

	owner, err := resolveUser(ctx, s.userRepo, *in.OwnerID, "owner_id")
	if err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	book := &models.Book{
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		OwnerID:     owner.ID,
		IsAvailable: available,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	book.Owner = owner
	return book, nil
}

// GetBook fetches a single book by id, with its owner resolved.
func (s *BookService) GetBook(ctx context.Context, id uint) (*models.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

// ListBooks lists books matching the filter, with owners resolved.
func (s *BookService) ListBooks(ctx context.Context, filter repository.BookFilter) ([]models.Book, error) {
	return s.bookRepo.List(ctx, filter)
}

// UpdateBook applies a partial update. A supplied owner_id is resolved
// before any field is applied, so an update carrying a dangling foreign key
// changes nothing. Unspecified fields are not re-validated.
func (s *BookService) UpdateBook(ctx context.Context, id uint, patch models.BookPatch) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newOwner *models.User
	if patch.OwnerID != nil {
		newOwner, err = resolveUser(ctx, s.userRepo, *patch.OwnerID, "owner_id")
		if err != nil {
			return nil, err
		}
	}
	if patch.Title != nil && validation.IsBlank(*patch.Title) {
		return nil, models.NewValidationError("title", "title must not be empty")
	}
	if patch.Author != nil && validation.IsBlank(*patch.Author) {
		return nil, models.NewValidationError("author", "author must not be empty")
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Description != nil {
		book.Description = *patch.Description
	}
	if newOwner != nil {
		book.OwnerID = newOwner.ID
		book.Owner = newOwner
	}
	if patch.IsAvailable != nil {
		book.IsAvailable = *patch.IsAvailable
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook deletes the book and cascades to its exchanges and reviews.
func (s *BookService) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.bookRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.bookRepo.Delete(ctx, id)
}

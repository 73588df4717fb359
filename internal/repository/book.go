package repository

import (
	"context"
	"errors"
	"strings"

	"bookswap/internal/models"
	"bookswap/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookFilter holds the optional, conjunctive listing filters for books.
// Author and Title are case-insensitive substring matches; Available is
// only applied when non-nil.
type BookFilter struct {
	Author    string
	Title     string
	Available *bool
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	List(ctx context.Context, filter BookFilter) ([]models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository returns a new BookRepository implementation.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// GetByID loads a book with its owner preloaded so the response can carry
// the owner's username.
func (r *bookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Preload("Owner").First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Book", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &book, nil
}

func (r *bookRepository) List(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	defer observability.TrackQuery("list", "books")()

	query := r.db.WithContext(ctx).Preload("Owner")
	if filter.Author != "" {
		query = query.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(filter.Author)+"%")
	}
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}

	var books []models.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return books, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	defer observability.TrackQuery("create", "books")()

	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists the book row only; a preloaded Owner association is
// never written back.
func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(book).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the book together with its exchanges and reviews in one
// transaction.
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "books")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.Exchange{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Book{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

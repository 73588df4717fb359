// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bookswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options control how much demo data is generated.
type Options struct {
	Users            int
	BooksPerUser     int
	ExchangeRatio    float64 // fraction of books that receive an exchange proposal
	ReviewsPerUser   int
	UnavailableRatio float64 // fraction of books seeded as unavailable
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Users:            10,
		BooksPerUser:     3,
		ExchangeRatio:    0.5,
		ReviewsPerUser:   2,
		UnavailableRatio: 0.2,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds users, their books, and a mesh of exchanges and reviews between
// them. Exchanges are only proposed on books the proposing user does not
// own, matching the eligibility rule enforced by the API.
func (f *Factory) Run() error {
	users := make([]models.User, 0, f.opts.Users)
	for i := 0; i < f.opts.Users; i++ {
		user := f.BuildUser()
		if err := f.db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, *user)
	}

	var books []models.Book
	for _, user := range users {
		for i := 0; i < f.opts.BooksPerUser; i++ {
			book := f.BuildBook(user.ID)
			if err := f.db.Create(book).Error; err != nil {
				return fmt.Errorf("seed book: %w", err)
			}
			books = append(books, *book)
		}
	}

	for _, book := range books {
		if f.rand.Float64() >= f.opts.ExchangeRatio {
			continue
		}
		proposer := f.pickOtherUser(users, book.OwnerID)
		if proposer == nil {
			continue
		}
		exchange := f.BuildExchange(proposer.ID, book.ID)
		if err := f.db.Create(exchange).Error; err != nil {
			return fmt.Errorf("seed exchange: %w", err)
		}
	}

	for _, user := range users {
		for i := 0; i < f.opts.ReviewsPerUser && len(books) > 0; i++ {
			book := books[f.rand.Intn(len(books))]
			review := f.BuildReview(user.ID, book.ID)
			if err := f.db.Create(review).Error; err != nil {
				return fmt.Errorf("seed review: %w", err)
			}
		}
	}

	return nil
}

// BuildUser constructs an unpersisted user with a unique username/email pair.
func (f *Factory) BuildUser() *models.User {
	suffix := uuid.NewString()[:8]
	username := fmt.Sprintf("%s_%s", strings.ToLower(gofakeit.Username()), suffix)
	return &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
	}
}

// BuildBook constructs an unpersisted book owned by the given user.
func (f *Factory) BuildBook(ownerID uint) *models.Book {
	return &models.Book{
		Title:       gofakeit.BookTitle(),
		Author:      gofakeit.BookAuthor(),
		Description: gofakeit.Sentence(12),
		OwnerID:     ownerID,
		IsAvailable: f.rand.Float64() >= f.opts.UnavailableRatio,
	}
}

// BuildExchange constructs an unpersisted pending exchange with a creation
// time spread over the last 30 days.
func (f *Factory) BuildExchange(userID, bookID uint) *models.Exchange {
	return &models.Exchange{
		UserID:    userID,
		BookID:    bookID,
		Place:     gofakeit.City(),
		Timestamp: time.Now().UTC().Add(-time.Duration(f.rand.Intn(30*24)) * time.Hour),
		Status:    models.ExchangeStatusPending,
	}
}

// BuildReview constructs an unpersisted review with a rating from 0 to 5.
func (f *Factory) BuildReview(userID, bookID uint) *models.Review {
	return &models.Review{
		UserID:    userID,
		BookID:    bookID,
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		Rating:    f.rand.Intn(6),
		Timestamp: time.Now().UTC().Add(-time.Duration(f.rand.Intn(30*24)) * time.Hour),
	}
}

func (f *Factory) pickOtherUser(users []models.User, ownerID uint) *models.User {
	for attempts := 0; attempts < 10; attempts++ {
		candidate := users[f.rand.Intn(len(users))]
		if candidate.ID != ownerID {
			return &candidate
		}
	}
	return nil
}

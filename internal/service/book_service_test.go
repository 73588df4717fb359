package service

import (
	"context"
	"testing"

	"bookswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Availability Defaults To True", func(t *testing.T) {
		svc := NewBookService(&bookRepoStub{}, &userRepoStub{})

		book, err := svc.CreateBook(ctx, CreateBookInput{
			Title:   "Dune",
			Author:  "Frank Herbert",
			OwnerID: uintPtr(2),
		})
		require.NoError(t, err)
		assert.True(t, book.IsAvailable)
		require.NotNil(t, book.Owner)
	})

	t.Run("Explicit Unavailable Is Preserved", func(t *testing.T) {
		svc := NewBookService(&bookRepoStub{}, &userRepoStub{})

		book, err := svc.CreateBook(ctx, CreateBookInput{
			Title:       "Dune",
			Author:      "Frank Herbert",
			OwnerID:     uintPtr(2),
			IsAvailable: boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, book.IsAvailable)
	})

	t.Run("Missing Owner ID", func(t *testing.T) {
		svc := NewBookService(&bookRepoStub{}, &userRepoStub{})
		_, err := svc.CreateBook(ctx, CreateBookInput{Title: "Dune", Author: "Frank Herbert"})
		requireAppError(t, err, models.CodeValidation, "owner_id")
	})

	t.Run("Dangling Owner ID", func(t *testing.T) {
		users := &userRepoStub{
			getByIDFn: func(id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewBookService(&bookRepoStub{}, users)

		_, err := svc.CreateBook(ctx, CreateBookInput{
			Title:   "Dune",
			Author:  "Frank Herbert",
			OwnerID: uintPtr(999),
		})
		requireAppError(t, err, models.CodeReference, "owner_id")
	})

	t.Run("Blank Title", func(t *testing.T) {
		svc := NewBookService(&bookRepoStub{}, &userRepoStub{})
		_, err := svc.CreateBook(ctx, CreateBookInput{Title: "  ", Author: "Frank Herbert", OwnerID: uintPtr(2)})
		requireAppError(t, err, models.CodeValidation, "title")
	})
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Dangling Owner Aborts Before Any Field Is Applied", func(t *testing.T) {
		books := &bookRepoStub{}
		users := &userRepoStub{
			getByIDFn: func(id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewBookService(books, users)

		_, err := svc.UpdateBook(ctx, 1, models.BookPatch{
			Title:   strPtr("Dune Messiah"),
			OwnerID: uintPtr(999),
		})
		requireAppError(t, err, models.CodeReference, "owner_id")
		assert.Zero(t, books.updates)
	})

	t.Run("Partial Update", func(t *testing.T) {
		books := &bookRepoStub{}
		svc := NewBookService(books, &userRepoStub{})

		book, err := svc.UpdateBook(ctx, 1, models.BookPatch{IsAvailable: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, book.IsAvailable)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, 1, books.updates)
	})

	t.Run("Owner Reassignment", func(t *testing.T) {
		users := &userRepoStub{
			getByIDFn: func(id uint) (*models.User, error) {
				return &models.User{ID: id, Username: "bob"}, nil
			},
		}
		svc := NewBookService(&bookRepoStub{}, users)

		book, err := svc.UpdateBook(ctx, 1, models.BookPatch{OwnerID: uintPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, uint(5), book.OwnerID)
		require.NotNil(t, book.Owner)
		assert.Equal(t, "bob", book.Owner.Username)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	books := &bookRepoStub{
		getByIDFn: func(id uint) (*models.Book, error) {
			return nil, models.NewNotFoundError("Book", id)
		},
	}
	svc := NewBookService(books, &userRepoStub{})

	err := svc.DeleteBook(context.Background(), 42)
	requireAppError(t, err, models.CodeNotFound, "")
}

// Package service implements the orchestration layer: field validation,
// referential-integrity and uniqueness checks, and persistence calls.
package service

import (
	"context"
	"errors"

	"bookswap/internal/models"
	"bookswap/internal/repository"
)

// resolveUser resolves a user foreign key. A missing row is reported as a
// ReferenceError on the given field, distinct from the NotFoundError a
// direct lookup would produce.
func resolveUser(ctx context.Context, repo repository.UserRepository, id uint, field string) (*models.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewReferenceError(field)
		}
		return nil, err
	}
	return user, nil
}

// resolveBook resolves a book foreign key, reporting a missing row as a
// ReferenceError on the given field.
func resolveBook(ctx context.Context, repo repository.BookRepository, id uint, field string) (*models.Book, error) {
	book, err := repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewReferenceError(field)
		}
		return nil, err
	}
	return book, nil
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeNotFound
}

package server

import (
	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/service"
	"bookswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	OwnerID     *uint  `json:"owner_id"`
	IsAvailable *bool  `json:"is_available"`
}

// GetBooks handles GET /books?author=&title=&is_available=
func (s *Server) GetBooks(c *fiber.Ctx) error {
	filter := repository.BookFilter{
		Author: c.Query("author"),
		Title:  c.Query("title"),
	}
	// An absent is_available parameter means no availability filter at
	// all; any supplied value is coerced to a boolean.
	if raw := c.Query("is_available"); raw != "" {
		available := validation.CoerceBool(raw)
		filter.Available = &available
	}

	books, err := s.bookService.ListBooks(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewBookResponses(books))
}

// GetBook handles GET /books/:id
func (s *Server) GetBook(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	book, err := s.bookService.GetBook(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewBookResponse(book))
}

// CreateBook handles POST /books
func (s *Server) CreateBook(c *fiber.Ctx) error {
	var req createBookRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondDomainError(c, err)
	}

	book, err := s.bookService.CreateBook(c.Context(), service.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewBookResponse(book))
}

// UpdateBook handles PUT /books/:id
func (s *Server) UpdateBook(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var patch models.BookPatch
	if err := decodeStrict(c, &patch); err != nil {
		return respondDomainError(c, err)
	}

	book, err := s.bookService.UpdateBook(c.Context(), id, patch)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewBookResponse(book))
}

// DeleteBook handles DELETE /books/:id
func (s *Server) DeleteBook(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.bookService.DeleteBook(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package server

import (
	"strconv"

	"bookswap/internal/models"
	"bookswap/internal/repository"
	"bookswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createExchangeRequest struct {
	UserID *uint  `json:"user_id"`
	BookID *uint  `json:"book_id"`
	Place  string `json:"place"`
}

type exchangeActionRequest struct {
	Action string `json:"action"`
}

// GetExchanges handles GET /exchanges?user_id=&owner_id=
func (s *Server) GetExchanges(c *fiber.Ctx) error {
	var filter repository.ExchangeFilter

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return respondDomainError(c,
				models.NewValidationError("user_id", "user_id must be an integer"))
		}
		userID := uint(id)
		filter.UserID = &userID
	}
	if raw := c.Query("owner_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return respondDomainError(c,
				models.NewValidationError("owner_id", "owner_id must be an integer"))
		}
		ownerID := uint(id)
		filter.OwnerID = &ownerID
	}

	exchanges, err := s.exchangeService.ListExchanges(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewExchangeResponses(exchanges))
}

// CreateExchange handles POST /exchanges
func (s *Server) CreateExchange(c *fiber.Ctx) error {
	var req createExchangeRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondDomainError(c, err)
	}

	exchange, err := s.exchangeService.CreateExchange(c.Context(), service.CreateExchangeInput{
		UserID: req.UserID,
		BookID: req.BookID,
		Place:  req.Place,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewExchangeResponse(exchange))
}

// UpdateExchange handles PUT /exchanges/:id with {"action": "accept"|"reject"}
func (s *Server) UpdateExchange(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req exchangeActionRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondDomainError(c, err)
	}

	exchange, err := s.exchangeService.ApplyAction(c.Context(), id, req.Action)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(models.ExchangeStatusResponse{
		ID:     exchange.ID,
		Status: exchange.Status,
	})
}

// DeleteExchange handles DELETE /exchanges/:id
func (s *Server) DeleteExchange(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.exchangeService.DeleteExchange(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

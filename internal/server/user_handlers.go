package server

import (
	"bookswap/internal/models"
	"bookswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := decodeStrict(c, &req); err != nil {
		return respondDomainError(c, err)
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewUserResponse(user))
}

// GetUsers handles GET /users?email=...
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context(), c.Query("email"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewUserResponses(users))
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewUserResponse(user))
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var patch models.UserPatch
	if err := decodeStrict(c, &patch); err != nil {
		return respondDomainError(c, err)
	}

	user, err := s.userService.UpdateUser(c.Context(), id, patch)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(models.NewUserResponse(user))
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package server

import (
	"bytes"
	"encoding/json"
	"errors"

	"bookswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("id", "Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// decodeStrict parses the request body into v, rejecting unknown keys so a
// payload carrying unrecognized fields fails instead of being silently
// truncated to the known ones.
func decodeStrict(c *fiber.Ctx, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &models.AppError{
			Code:    models.CodeValidation,
			Message: "invalid request body",
			Err:     err,
		}
	}
	return nil
}

// mapDomainError translates a domain error code into the HTTP status the
// handler should respond with.
func mapDomainError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation, models.CodeReference, models.CodeInvalidAction, models.CodeIntegrity:
		return fiber.StatusBadRequest
	case models.CodeConflict:
		return fiber.StatusConflict
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondDomainError writes the response for a domain error.
func respondDomainError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, mapDomainError(err), err)
}

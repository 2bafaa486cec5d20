package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/apperr"
)

var validate = validator.New()

// respondError maps the error taxonomy onto HTTP statuses at the handler
// boundary. Unclassified errors become a generic 500 without leaking store
// error text.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": apperr.Message(err)})
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindNotFound, apperr.KindNoActiveClockIn:
		return fiber.StatusNotFound
	case apperr.KindConflict, apperr.KindAlreadyClockedIn:
		return fiber.StatusConflict
	case apperr.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// validateBody parses and validates a JSON request body in one step.
func validateBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(dest); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return apperr.Validation("invalid field: " + errs[0].Field())
		}
		return apperr.Validation("invalid request body")
	}
	return nil
}

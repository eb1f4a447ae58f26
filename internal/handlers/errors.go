package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumelens/internal/models"
	"resumelens/internal/services"
)

// respondError converts a service failure into the uniform {error, details?}
// payload: 400 for caller-input problems, 500 for everything else.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.HTTPStatus()).JSON(models.APIError{
			Error:   svcErr.Message,
			Details: svcErr.Details,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.APIError{
		Error: err.Error(),
	})
}

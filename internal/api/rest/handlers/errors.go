package handlers

import (
	"errors"

	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the service failure classes onto HTTP statuses. Unknown
// errors surface as 500 so a store outage is never mistaken for "no data".
func serviceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateApplication):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	default:
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}

package middleware

import (
	"strings"

	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", uint(user.UserID))
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// Role guards always resolve the role server-side; a client-supplied role is
// never trusted. Wrong role is a 403, never an empty result.

func AdminOnly(userSvc services.UserService) fiber.Handler {
	return requireRole("admin only", userSvc.IsAdmin)
}

func StudentOnly(userSvc services.UserService) fiber.Handler {
	return requireRole("student only", userSvc.IsStudent)
}

func RecruiterOnly(userSvc services.UserService) fiber.Handler {
	return requireRole("recruiter only", userSvc.IsRecruiter)
}

func requireRole(denyMsg string, check func(userID uint) (bool, error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, ok := ctx.Locals("userID").(uint)
		if !ok || userID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		allowed, err := check(userID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if !allowed {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": denyMsg,
			})
		}

		return ctx.Next()
	}
}

package handlers

import (
	"strconv"

	"github.com/InternHub/internhub-backend/internal/api/rest/middleware"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	svc  services.NotificationService
	auth helper.Auth
}

func NewNotificationHandler(svc services.NotificationService, auth helper.Auth) *NotificationHandler {
	return &NotificationHandler{svc: svc, auth: auth}
}

func (h *NotificationHandler) SetupRoutes(app *fiber.App) {
	notifications := app.Group("/api/notifications", middleware.AuthMiddleware(h.auth))
	notifications.Get("", h.ListOwn)
	notifications.Patch("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) ListOwn(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	notifications, err := h.svc.ListOwn(userID, limit, offset)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	notificationID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || notificationID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := h.svc.MarkRead(userID, uint(notificationID)); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Notification marked as read")
}

package handlers

import (
	"strconv"

	"github.com/InternHub/internhub-backend/internal/api/rest/middleware"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	svc     services.AdminService
	userSvc services.UserService
	auth    helper.Auth
}

func NewAdminHandler(svc services.AdminService, userSvc services.UserService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, userSvc: userSvc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/recruiters", h.ListRecruiters)
	admin.Patch("/recruiters/:id", h.ModerateRecruiter)
}

func (h *AdminHandler) ListRecruiters(ctx *fiber.Ctx) error {
	recruiters, err := h.svc.ListRecruiters()
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, recruiters)
}

func (h *AdminHandler) ModerateRecruiter(ctx *fiber.Ctx) error {
	adminID, _ := ctx.Locals("userID").(uint)

	recruiterID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || recruiterID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid recruiter id")
	}

	var requestBody dto.ModerateRecruiterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	profile, err := h.svc.ModerateRecruiter(adminID, uint(recruiterID), requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

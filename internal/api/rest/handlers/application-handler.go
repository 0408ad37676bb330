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

type ApplicationHandler struct {
	svc     services.ApplicationService
	userSvc services.UserService
	auth    helper.Auth
}

func NewApplicationHandler(svc services.ApplicationService, userSvc services.UserService, auth helper.Auth) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, userSvc: userSvc, auth: auth}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	student := api.Group("/applications", middleware.AuthMiddleware(h.auth), middleware.StudentOnly(h.userSvc))
	student.Post("", h.Apply)
	student.Get("", h.ListOwn)

	recruiter := api.Group("/recruiter", middleware.AuthMiddleware(h.auth), middleware.RecruiterOnly(h.userSvc))
	recruiter.Get("/applications", h.ListForRecruiter)
	recruiter.Patch("/applications/:id", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var requestBody dto.ApplyRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	application, err := h.svc.Apply(userID, requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, application)
}

func (h *ApplicationHandler) ListOwn(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	applications, err := h.svc.ListOwn(userID)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, applications)
}

func (h *ApplicationHandler) ListForRecruiter(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	// listing_id=0 means all listings owned by the caller
	listingID := ctx.QueryInt("listing_id", 0)
	if listingID < 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid listing id")
	}

	applications, err := h.svc.ListForRecruiter(userID, uint(listingID))
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	applicationID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || applicationID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var requestBody dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	application, err := h.svc.UpdateStatus(userID, uint(applicationID), requestBody.Status)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}

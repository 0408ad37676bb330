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

type ListingHandler struct {
	svc     services.ListingService
	userSvc services.UserService
	auth    helper.Auth
}

func NewListingHandler(svc services.ListingService, userSvc services.UserService, auth helper.Auth) *ListingHandler {
	return &ListingHandler{svc: svc, userSvc: userSvc, auth: auth}
}

func (h *ListingHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public browse
	api.Get("/listings", h.Browse)
	api.Get("/listings/:id", h.Get)

	authed := middleware.AuthMiddleware(h.auth)
	recruiterOnly := middleware.RecruiterOnly(h.userSvc)

	api.Post("/listings", authed, recruiterOnly, h.Create)
	api.Patch("/listings/:id", authed, recruiterOnly, h.Update)
	api.Delete("/listings/:id", authed, recruiterOnly, h.Delete)

	recruiter := api.Group("/recruiter", authed, recruiterOnly)
	recruiter.Get("/listings", h.ListOwn)
}

func (h *ListingHandler) Browse(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	listings, err := h.svc.Browse(limit, offset)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, listings)
}

func (h *ListingHandler) Get(ctx *fiber.Ctx) error {
	listingID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || listingID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid listing id")
	}

	listing, err := h.svc.Get(uint(listingID))
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, listing)
}

func (h *ListingHandler) ListOwn(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	listings, err := h.svc.ListOwn(userID)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, listings)
}

func (h *ListingHandler) Create(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var requestBody dto.ListingInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	listing, err := h.svc.Create(userID, requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, listing)
}

func (h *ListingHandler) Update(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	listingID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || listingID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid listing id")
	}

	var patch dto.ListingPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	listing, err := h.svc.Update(userID, uint(listingID), patch)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, listing)
}

func (h *ListingHandler) Delete(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	listingID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || listingID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid listing id")
	}

	if err := h.svc.Delete(userID, uint(listingID)); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Listing deleted")
}

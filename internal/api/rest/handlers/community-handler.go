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

type CommunityHandler struct {
	svc  services.CommunityService
	auth helper.Auth
}

func NewCommunityHandler(svc services.CommunityService, auth helper.Auth) *CommunityHandler {
	return &CommunityHandler{svc: svc, auth: auth}
}

func (h *CommunityHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/community/posts", h.ListPosts)

	authed := api.Group("/community", middleware.AuthMiddleware(h.auth))
	authed.Post("/posts", h.CreatePost)
	authed.Delete("/posts/:id", h.DeletePost)
}

func (h *CommunityHandler) ListPosts(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	posts, err := h.svc.ListPosts(limit, offset)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, posts)
}

func (h *CommunityHandler) CreatePost(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var requestBody dto.CommunityPostInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	post, err := h.svc.CreatePost(userID, requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, post)
}

func (h *CommunityHandler) DeletePost(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	postID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || postID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid post id")
	}

	if err := h.svc.DeletePost(userID, uint(postID)); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Post deleted")
}

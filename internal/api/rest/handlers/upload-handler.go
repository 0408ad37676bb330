package handlers

import (
	"fmt"

	"github.com/InternHub/internhub-backend/internal/api/rest/middleware"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/interfaces"
	"github.com/InternHub/internhub-backend/internal/services"
	pkgutils "github.com/InternHub/internhub-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	maxResumeBytes = 8 << 20
	maxLogoBytes   = 5 << 20

	logoMaxWidth   = 512
	logoJPGQuality = 85
)

type UploadHandler struct {
	uploader interfaces.Uploader
	userSvc  services.UserService
	auth     helper.Auth
}

func NewUploadHandler(uploader interfaces.Uploader, userSvc services.UserService, auth helper.Auth) *UploadHandler {
	return &UploadHandler{uploader: uploader, userSvc: userSvc, auth: auth}
}

func (h *UploadHandler) SetupRoutes(app *fiber.App) {
	uploads := app.Group("/api/uploads", middleware.AuthMiddleware(h.auth))
	uploads.Post("/resume", middleware.StudentOnly(h.userSvc), h.UploadResume)
	uploads.Post("/logo", middleware.RecruiterOnly(h.userSvc), h.UploadLogo)
}

func (h *UploadHandler) UploadResume(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not read file")
	}
	defer file.Close()

	data, err := pkgutils.ReadAllLimit(file, maxResumeBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large")
	}

	url, err := h.uploader.UploadBytes(ctx.Context(), "resumes", fmt.Sprintf("resume-%d", userID), data)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "upload failed")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"url": url})
}

func (h *UploadHandler) UploadLogo(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not read file")
	}
	defer file.Close()

	data, err := pkgutils.ReadAllLimit(file, maxLogoBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large")
	}

	normalized, err := pkgutils.NormalizeToJPG(data, logoMaxWidth, logoJPGQuality)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "unsupported image format")
	}

	url, err := h.uploader.UploadBytes(ctx.Context(), "logos", fmt.Sprintf("logo-%d", userID), normalized)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "upload failed")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"url": url})
}

package handlers

import (
	"github.com/InternHub/internhub-backend/internal/api/rest/middleware"
	"github.com/InternHub/internhub-backend/internal/dto"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/helper/utils"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth (public)
	user := api.Group("/user")
	user.Post("/register", h.Register)
	user.Post("/login", h.Login)
	user.Post("/verify-email", h.VerifyEmail)
	user.Post("/forgot-password", h.ForgotPassword)
	user.Post("/reset-password", h.SetPassword)

	authed := user.Group("", middleware.AuthMiddleware(h.auth))
	authed.Get("/me", h.Me)

	// Role-specific profiles
	student := api.Group("/student", middleware.AuthMiddleware(h.auth), middleware.StudentOnly(h.svc))
	student.Get("/profile", h.GetStudentProfile)
	student.Put("/profile", h.UpsertStudentProfile)

	recruiter := api.Group("/recruiter", middleware.AuthMiddleware(h.auth), middleware.RecruiterOnly(h.svc))
	recruiter.Get("/profile", h.GetRecruiterProfile)
	recruiter.Put("/profile", h.UpsertRecruiterProfile)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Register(requestBody); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "User registered successfully")
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.svc.Login(requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}

	token, err := h.auth.GenerateToken(int(user.ID), user.Email)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	profile, err := h.svc.GetProfile(user.ID)
	if err != nil {
		return serviceError(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User:  *profile,
	})
}

func (h *UserHandler) VerifyEmail(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyEmailRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "token is required")
	}

	if err := h.svc.VerifyEmail(requestBody.Token); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Email verified")
}

func (h *UserHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid email id")
	}

	if err := h.svc.ForgotPassword(requestBody.Email); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password reset link sent")
}

func (h *UserHandler) SetPassword(ctx *fiber.Ctx) error {
	var requestBody dto.SetPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid input")
	}

	if err := h.svc.SetPassword(requestBody); err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password reset successfully")
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	profile, err := h.svc.GetProfile(userID)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *UserHandler) GetStudentProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	profile, err := h.svc.GetStudentProfile(userID)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *UserHandler) UpsertStudentProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var requestBody dto.StudentProfileInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	profile, err := h.svc.UpsertStudentProfile(userID, requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *UserHandler) GetRecruiterProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	profile, err := h.svc.GetRecruiterProfile(userID)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *UserHandler) UpsertRecruiterProfile(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var requestBody dto.RecruiterProfileInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	profile, err := h.svc.UpsertRecruiterProfile(userID, requestBody)
	if err != nil {
		return serviceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

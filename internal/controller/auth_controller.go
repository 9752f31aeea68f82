package controller

import (
	"time"

	"quicknotes-be/internal/dto"
	"quicknotes-be/internal/pkg/serverutils"
	"quicknotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service       service.IAuthService
	sessionCookie string
}

func NewAuthController(service service.IAuthService, sessionCookie string) IAuthController {
	return &authController{
		service:       service,
		sessionCookie: sessionCookie,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Post("/logout", authGuard, c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, sessionId, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	if sessionId != "" {
		ctx.Cookie(&fiber.Cookie{
			Name:     c.sessionCookie,
			Value:    sessionId,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionId := ctx.Cookies(c.sessionCookie)
	if err := c.service.Logout(ctx.Context(), sessionId); err != nil {
		return err
	}

	if sessionId != "" {
		ctx.ClearCookie(c.sessionCookie)
	}

	return ctx.JSON(dto.LogoutResponse{Success: true})
}

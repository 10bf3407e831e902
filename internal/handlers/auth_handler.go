package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillbridge/job-portal/internal/middleware"
	"skillbridge/job-portal/internal/models"
	"skillbridge/job-portal/internal/repositories"
)

type AuthHandler struct {
	userRepo  repositories.UserRepository
	validate  *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(
	userRepo repositories.UserRepository,
	validate *validator.Validate,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		validate:  validate,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.userRepo.Create(user); err != nil {
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse{
			Error: "Email already registered",
		})
	}

	token, err := middleware.GenerateToken(h.jwtSecret, user, h.tokenTTL)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Invalid email or password",
			Kind:  "unauthorized",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Invalid email or password",
			Kind:  "unauthorized",
		})
	}

	token, err := middleware.GenerateToken(h.jwtSecret, user, h.tokenTTL)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AuthResponse{
		Token: token,
		User:  user,
	})
}

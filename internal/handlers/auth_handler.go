package handlers

import (
	"errors"

	"affirm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validator.Validate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		logger:      logger,
	}
}

// RegisterRoutes registers the account and session routes. authRequired
// guards the current-session endpoint.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/accounts", h.HandleSignup)
	router.Post("/sessions", h.HandleLogin)
	router.Get("/sessions/me", authRequired, h.HandleMe)

	// Legacy paths used by the web client.
	router.Post("/signup", h.HandleSignup)
	router.Post("/login", h.HandleLogin)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// HandleSignup creates a new account.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	id, err := h.authService.CreateAccount(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Error creating user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"id":      id,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	session, err := h.authService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Error logging in")
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      session.Token,
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}

// HandleMe returns the account behind the caller's token.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	account, err := h.authService.CurrentAccount(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrAuth) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account no longer exists"})
		}
		return respondError(c, h.logger, err, "Error loading account")
	}

	return c.JSON(fiber.Map{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
	})
}

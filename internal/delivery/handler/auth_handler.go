package handler

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"auth-service/internal/application/command"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/domain"
)

// Register/login failures use an "error" envelope while the token gate uses
// "message"; the split is an inherited API wart that clients depend on.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type fieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type AuthHandler struct {
	service interfaces.AuthService
}

func NewAuthHandler(service interfaces.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := validateRegister(&cmd); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	result, err := h.service.Register(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already exists"})
		}
		log.Printf("register failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := validateLogin(&cmd); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	result, err := h.service.Login(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		log.Printf("login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, result)
}

// Profile handles GET /api/auth/profile. Runs behind TokenGate, which
// guarantees claims are present. The user is re-fetched from the store: the
// token being valid does not mean the account still exists.
func (h *AuthHandler) Profile(c echo.Context) error {
	claims := ClaimsFromContext(c)

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}

	result, err := h.service.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		log.Printf("get profile failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, result)
}

func validateRegister(cmd *command.RegisterUserCommand) []fieldError {
	var errs []fieldError
	if !emailPattern.MatchString(cmd.Email) {
		errs = append(errs, fieldError{Field: "email", Msg: "Please provide a valid email"})
	}
	if len(cmd.Password) < 6 {
		errs = append(errs, fieldError{Field: "password", Msg: "Password must be at least 6 characters long"})
	}
	return errs
}

func validateLogin(cmd *command.LoginUserCommand) []fieldError {
	var errs []fieldError
	if !emailPattern.MatchString(cmd.Email) {
		errs = append(errs, fieldError{Field: "email", Msg: "Please provide a valid email"})
	}
	if cmd.Password == "" {
		errs = append(errs, fieldError{Field: "password", Msg: "Password is required"})
	}
	return errs
}

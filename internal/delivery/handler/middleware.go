package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"auth-service/internal/infrastructure"
)

const claimsContextKey = "user"

// ClaimsFromContext returns the identity attached by TokenGate, or nil when
// the request was not authenticated.
func ClaimsFromContext(c echo.Context) *infrastructure.Claims {
	claims, _ := c.Get(claimsContextKey).(*infrastructure.Claims)
	return claims
}

// TokenGate protects a route with bearer-token authentication. The header
// must be exactly "Bearer <token>"; every codec failure, expired tokens
// included, is reported as the same "Invalid token" so the response never
// says why verification failed.
func TokenGate(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No token provided"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token format"})
			}

			claims, err := jwtService.VerifyToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

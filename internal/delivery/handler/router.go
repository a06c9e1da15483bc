package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"auth-service/internal/infrastructure"
)

// NewRouter wires the HTTP surface. The auth group carries a per-IP rate
// limiter; the profile route additionally sits behind the token gate.
func NewRouter(
	authHandler *AuthHandler,
	healthHandler *HealthHandler,
	jwtService *infrastructure.JWTService,
	rateLimitRPS int,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())

	api := e.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth",
		middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rateLimitRPS))))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, TokenGate(jwtService))

	return e
}

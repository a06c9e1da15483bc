package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /api/health by probing the database connection.
func (h *HealthHandler) Check(c echo.Context) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := h.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":    "error",
			"message":   "API is unhealthy",
			"timestamp": timestamp,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":    "success",
		"message":   "API is healthy",
		"timestamp": timestamp,
	})
}

package handler

import (
	"net/http"

	"blog/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root reports service identity and health.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Blog Application Platform API",
	})
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"})
}

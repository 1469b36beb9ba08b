package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz returns 200 if the process is running. It never calls out.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

package handler

import (
	"net/http"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles the month view summary request
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /api/v1/dashboard/summary?year=&month=
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	year, month, err := parseYearMonth(c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	summary, err := h.dashboardService.GetSummary(year, month)
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("Failed to build dashboard summary")
		return NewInternalError(c, "Failed to build dashboard summary")
	}
	return c.JSON(http.StatusOK, summary)
}

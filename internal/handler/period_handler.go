package handler

import (
	"net/http"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// PeriodHandler serves the month stepper: the current calendar month and the
// neighbours of any viewed month
type PeriodHandler struct{}

// NewPeriodHandler creates a new PeriodHandler
func NewPeriodHandler() *PeriodHandler {
	return &PeriodHandler{}
}

// YearMonth is one calendar month
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PeriodResponse is a month with its stepper neighbours
type PeriodResponse struct {
	Current  YearMonth `json:"current"`
	Previous YearMonth `json:"previous"`
	Next     YearMonth `json:"next"`
}

func periodFor(year, month int) PeriodResponse {
	prevYear, prevMonth := util.PreviousMonth(year, month)
	nextYear, nextMonth := util.NextMonth(year, month)
	return PeriodResponse{
		Current:  YearMonth{Year: year, Month: month},
		Previous: YearMonth{Year: prevYear, Month: prevMonth},
		Next:     YearMonth{Year: nextYear, Month: nextMonth},
	}
}

// GetCurrent handles GET /api/v1/period/current
func (h *PeriodHandler) GetCurrent(c echo.Context) error {
	year, month := util.CurrentMonth()
	return c.JSON(http.StatusOK, periodFor(year, month))
}

// GetPeriod handles GET /api/v1/period?year=&month=, resolving the stepper
// neighbours of an arbitrary viewed month
func (h *PeriodHandler) GetPeriod(c echo.Context) error {
	year, month, err := parseYearMonth(c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	return c.JSON(http.StatusOK, periodFor(year, month))
}

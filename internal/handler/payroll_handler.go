package handler

import (
	"net/http"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PayrollHandler exposes the net pay preview used by the income form
type PayrollHandler struct{}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler() *PayrollHandler {
	return &PayrollHandler{}
}

// NetPayResponse represents the withholding breakdown for one gross salary
type NetPayResponse struct {
	Gross     string `json:"gross"`
	Pension   string `json:"pension"`
	IncomeTax string `json:"incomeTax"`
	Net       string `json:"net"`
}

// GetNetPay handles GET /api/v1/payroll/net-pay?gross=
func (h *PayrollHandler) GetNetPay(c echo.Context) error {
	gross, err := decimal.NewFromString(c.QueryParam("gross"))
	if err != nil {
		return NewValidationError(c, "Invalid gross amount", []ValidationError{
			{Field: "gross", Message: "Must be a valid decimal number"},
		})
	}

	pay := domain.CalculateNetPay(gross)
	return c.JSON(http.StatusOK, NetPayResponse{
		Gross:     gross.StringFixed(2),
		Pension:   pay.Pension.StringFixed(2),
		IncomeTax: pay.IncomeTax.StringFixed(2),
		Net:       pay.Net.StringFixed(2),
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IncomeHandler handles income source HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the create request body
type CreateIncomeRequest struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
	Basis  string `json:"basis"`
}

// IncomeResponse represents an income source in API responses
type IncomeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RawAmount string `json:"rawAmount"`
	NetAmount string `json:"netAmount"`
	Type      string `json:"type"`
	Basis     string `json:"basis"`
}

func toIncomeResponse(income *domain.IncomeSource) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID,
		Name:      income.Name,
		RawAmount: income.RawAmount.StringFixed(2),
		NetAmount: income.NetAmount.StringFixed(2),
		Type:      string(income.Type),
		Basis:     string(income.Basis),
	}
}

// CreateIncome handles POST /api/v1/incomes
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount format", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	income, err := h.incomeService.Create(service.CreateIncomeInput{
		Name:   req.Name,
		Amount: amount,
		Type:   domain.IncomeType(req.Type),
		Basis:  domain.IncomeBasis(req.Basis),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) ||
			errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to create income")
		return NewInternalError(c, "Failed to create income")
	}

	log.Info().Str("income_id", income.ID).Str("type", string(income.Type)).Msg("Income created")

	return c.JSON(http.StatusCreated, toIncomeResponse(income))
}

// GetIncomes handles GET /api/v1/incomes
func (h *IncomeHandler) GetIncomes(c echo.Context) error {
	incomes, err := h.incomeService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list incomes")
		return NewInternalError(c, "Failed to list incomes")
	}

	resp := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		resp[i] = toIncomeResponse(income)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteIncome handles DELETE /api/v1/incomes/:id
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	id := c.Param("id")
	if err := h.incomeService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Income not found")
		}
		log.Error().Err(err).Str("income_id", id).Msg("Failed to delete income")
		return NewInternalError(c, "Failed to delete income")
	}
	return c.NoContent(http.StatusNoContent)
}

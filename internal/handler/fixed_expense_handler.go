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

// FixedExpenseHandler handles fixed expense HTTP requests
type FixedExpenseHandler struct {
	fixedExpenseService *service.FixedExpenseService
}

// NewFixedExpenseHandler creates a new FixedExpenseHandler
func NewFixedExpenseHandler(fixedExpenseService *service.FixedExpenseService) *FixedExpenseHandler {
	return &FixedExpenseHandler{fixedExpenseService: fixedExpenseService}
}

// CreateFixedExpenseRequest represents the create request body
type CreateFixedExpenseRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// FixedExpenseResponse represents a fixed expense in API responses
type FixedExpenseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

func toFixedExpenseResponse(expense *domain.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:       expense.ID,
		Name:     expense.Name,
		Amount:   expense.Amount.StringFixed(2),
		Category: string(expense.Category),
	}
}

// CreateFixedExpense handles POST /api/v1/fixed-expenses
func (h *FixedExpenseHandler) CreateFixedExpense(c echo.Context) error {
	var req CreateFixedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount format", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	expense, err := h.fixedExpenseService.Create(service.CreateFixedExpenseInput{
		Name:     req.Name,
		Amount:   amount,
		Category: domain.Category(req.Category),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) ||
			errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrInvalidCategory) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to create fixed expense")
		return NewInternalError(c, "Failed to create fixed expense")
	}

	log.Info().Str("fixed_expense_id", expense.ID).Str("category", string(expense.Category)).Msg("Fixed expense created")

	return c.JSON(http.StatusCreated, toFixedExpenseResponse(expense))
}

// GetFixedExpenses handles GET /api/v1/fixed-expenses
func (h *FixedExpenseHandler) GetFixedExpenses(c echo.Context) error {
	expenses, err := h.fixedExpenseService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list fixed expenses")
		return NewInternalError(c, "Failed to list fixed expenses")
	}

	resp := make([]FixedExpenseResponse, len(expenses))
	for i, expense := range expenses {
		resp[i] = toFixedExpenseResponse(expense)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteFixedExpense handles DELETE /api/v1/fixed-expenses/:id
func (h *FixedExpenseHandler) DeleteFixedExpense(c echo.Context) error {
	id := c.Param("id")
	if err := h.fixedExpenseService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Fixed expense not found")
		}
		log.Error().Err(err).Str("fixed_expense_id", id).Msg("Failed to delete fixed expense")
		return NewInternalError(c, "Failed to delete fixed expense")
	}
	return c.NoContent(http.StatusNoContent)
}

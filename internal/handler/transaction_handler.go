package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create request body
type CreateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	DateISO     string  `json:"dateISO"`
	GoalID      *string `json:"goalId"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	DateISO     string  `json:"dateISO"`
	GoalID      *string `json:"goalId,omitempty"`
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Category:    string(tx.Category),
		DateISO:     tx.Date.Format(time.RFC3339),
		GoalID:      tx.GoalID,
	}
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount format", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date time.Time
	if req.DateISO != "" {
		date, err = time.Parse(time.RFC3339, req.DateISO)
		if err != nil {
			return NewValidationError(c, "Invalid date format", []ValidationError{
				{Field: "dateISO", Message: "Must be an RFC 3339 timestamp"},
			})
		}
	}

	tx, err := h.transactionService.Create(service.CreateTransactionInput{
		Description: req.Description,
		Amount:      amount,
		Category:    domain.Category(req.Category),
		Date:        date,
		GoalID:      req.GoalID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) ||
			errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrInvalidCategory) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().Str("transaction_id", tx.ID).Str("category", string(tx.Category)).Msg("Transaction created")

	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// GetTransactions handles GET /api/v1/transactions with optional year/month filters
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	yearParam := c.QueryParam("year")
	monthParam := c.QueryParam("month")

	var (
		txs []*domain.Transaction
		err error
	)
	if yearParam != "" || monthParam != "" {
		year, month, perr := parseYearMonth(yearParam, monthParam)
		if perr != nil {
			return NewValidationError(c, perr.Error(), nil)
		}
		txs, err = h.transactionService.ListByMonth(year, month)
	} else {
		txs, err = h.transactionService.List()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list transactions")
		return NewInternalError(c, "Failed to list transactions")
	}

	resp := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	if err := h.transactionService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}
	return c.NoContent(http.StatusNoContent)
}

// parseYearMonth parses the year/month query pair used by the month-scoped
// endpoints. Both values are required together.
func parseYearMonth(yearParam, monthParam string) (int, int, error) {
	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 1 {
		return 0, 0, errors.New("year must be a positive integer")
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil || !util.ValidMonth(month) {
		return 0, 0, errors.New("month must be between 1 and 12")
	}
	return year, month, nil
}

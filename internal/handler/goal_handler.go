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

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the create request body
type CreateGoalRequest struct {
	Name             string `json:"name"`
	TargetAmount     string `json:"targetAmount"`
	CurrentAmount    string `json:"currentAmount"`
	Emoji            string `json:"emoji"`
	IsEmergencyFund  bool   `json:"isEmergencyFund"`
	MonthsOfSecurity int    `json:"monthsOfSecurity"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TargetAmount     string `json:"targetAmount"`
	CurrentAmount    string `json:"currentAmount"`
	Emoji            string `json:"emoji,omitempty"`
	IsEmergencyFund  bool   `json:"isEmergencyFund"`
	MonthsOfSecurity int    `json:"monthsOfSecurity,omitempty"`
}

// GoalProgressResponse is a goal plus its derived progress for one month.
type GoalProgressResponse struct {
	GoalResponse
	EffectiveTarget string `json:"effectiveTarget"`
	Percentage      string `json:"percentage"`
}

func toGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:               goal.ID,
		Name:             goal.Name,
		TargetAmount:     goal.TargetAmount.StringFixed(2),
		CurrentAmount:    goal.CurrentAmount.StringFixed(2),
		Emoji:            goal.Emoji,
		IsEmergencyFund:  goal.IsEmergencyFund,
		MonthsOfSecurity: goal.MonthsOfSecurity,
	}
}

func toGoalProgressResponse(progress *service.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		GoalResponse:    toGoalResponse(progress.Goal),
		EffectiveTarget: progress.EffectiveTarget.StringFixed(2),
		Percentage:      progress.Percentage.StringFixed(2),
	}
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	targetAmount := decimal.Zero
	if req.TargetAmount != "" {
		var err error
		targetAmount, err = decimal.NewFromString(req.TargetAmount)
		if err != nil {
			return NewValidationError(c, "Invalid target amount format", []ValidationError{
				{Field: "targetAmount", Message: "Must be a valid decimal number"},
			})
		}
	}
	currentAmount := decimal.Zero
	if req.CurrentAmount != "" {
		var err error
		currentAmount, err = decimal.NewFromString(req.CurrentAmount)
		if err != nil {
			return NewValidationError(c, "Invalid current amount format", []ValidationError{
				{Field: "currentAmount", Message: "Must be a valid decimal number"},
			})
		}
	}

	goal, err := h.goalService.Create(service.CreateGoalInput{
		Name:             req.Name,
		TargetAmount:     targetAmount,
		CurrentAmount:    currentAmount,
		Emoji:            req.Emoji,
		IsEmergencyFund:  req.IsEmergencyFund,
		MonthsOfSecurity: req.MonthsOfSecurity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) ||
			errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to create goal")
		return NewInternalError(c, "Failed to create goal")
	}

	log.Info().Str("goal_id", goal.ID).Bool("emergency_fund", goal.IsEmergencyFund).Msg("Goal created")

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// GetGoals handles GET /api/v1/goals?year=&month=
func (h *GoalHandler) GetGoals(c echo.Context) error {
	year, month, err := parseYearMonth(c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	goals, err := h.goalService.ListWithProgress(year, month)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list goals")
		return NewInternalError(c, "Failed to list goals")
	}

	resp := make([]GoalProgressResponse, len(goals))
	for i, goal := range goals {
		resp[i] = toGoalProgressResponse(goal)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetGoal handles GET /api/v1/goals/:id
func (h *GoalHandler) GetGoal(c echo.Context) error {
	id := c.Param("id")
	goal, err := h.goalService.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to get goal")
		return NewInternalError(c, "Failed to get goal")
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id := c.Param("id")
	if err := h.goalService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}
	return c.NoContent(http.StatusNoContent)
}

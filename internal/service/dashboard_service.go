package service

import (
	"github.com/acarvalho/familywealth/familywealth-backend/internal/chart"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
)

// Slice colors for the spend distribution donut, in category display order.
const (
	colorEssentials  = "#3b82f6"
	colorLifestyle   = "#f43f5e"
	colorInvestments = "#10b981"
)

// DashboardService assembles the presentation-ready month view: budget
// totals, donut geometry and goal progress.
type DashboardService struct {
	budgetService *BudgetService
	goalService   *GoalService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(budgetService *BudgetService, goalService *GoalService) *DashboardService {
	return &DashboardService{
		budgetService: budgetService,
		goalService:   goalService,
	}
}

// DashboardSummary is everything the month view displays.
type DashboardSummary struct {
	Budget *domain.BudgetSummary `json:"budget"`
	Donut  chart.Ring            `json:"donut"`
	Goals  []*GoalProgress       `json:"goals"`
}

// GetSummary derives the dashboard for one calendar month.
func (s *DashboardService) GetSummary(year, month int) (*DashboardSummary, error) {
	budget, err := s.budgetService.MonthlySummary(year, month)
	if err != nil {
		return nil, err
	}

	donut := chart.Project([]chart.Slice{
		{Value: budget.FinalTotals.Essentials, Color: colorEssentials},
		{Value: budget.FinalTotals.Lifestyle, Color: colorLifestyle},
		{Value: budget.FinalTotals.Investments, Color: colorInvestments},
	})

	goals, err := s.goalService.ListWithProgress(year, month)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Budget: budget,
		Donut:  donut,
		Goals:  goals,
	}, nil
}

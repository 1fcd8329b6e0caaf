package service

import (
	"math"
	"testing"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *testutil.MockIncomeRepository, *testutil.MockFixedExpenseRepository, *testutil.MockTransactionRepository, *testutil.MockGoalRepository) {
	t.Helper()
	incomeRepo := testutil.NewMockIncomeRepository()
	fixedRepo := testutil.NewMockFixedExpenseRepository()
	txRepo := testutil.NewMockTransactionRepository()
	goalRepo := testutil.NewMockGoalRepository()
	budgetService := NewBudgetService(incomeRepo, fixedRepo, txRepo)
	goalService := NewGoalService(goalRepo, budgetService)
	svc := NewDashboardService(budgetService, goalService)
	return svc, incomeRepo, fixedRepo, txRepo, goalRepo
}

func TestDashboardService_GetSummary(t *testing.T) {
	svc, incomeRepo, fixedRepo, txRepo, goalRepo := newDashboardFixture(t)

	putIncome(t, incomeRepo, "i1", "5000")
	putFixed(t, fixedRepo, "f1", "1000", domain.CategoryEssentials)
	putFixed(t, fixedRepo, "f2", "300", domain.CategoryLifestyle)
	putTx(t, txRepo, "t1", "200", domain.CategoryInvestments,
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, goalRepo.Put(&domain.Goal{
		ID: "g1", Name: "Trip", TargetAmount: dec("10000"), CurrentAmount: dec("2500"),
	}))

	summary, err := svc.GetSummary(2026, 3)
	require.NoError(t, err)

	require.NotNil(t, summary.Budget)
	assert.Equal(t, 2026, summary.Budget.Year)
	assert.Equal(t, 3, summary.Budget.Month)
	assert.True(t, summary.Budget.TotalSpent.Equal(dec("1500")))

	// All three categories have spend, so the donut is three arcs.
	assert.False(t, summary.Donut.Empty)
	assert.Nil(t, summary.Donut.Full)
	require.Len(t, summary.Donut.Arcs, 3)
	assert.Equal(t, colorEssentials, summary.Donut.Arcs[0].Color)
	assert.Equal(t, colorLifestyle, summary.Donut.Arcs[1].Color)
	assert.Equal(t, colorInvestments, summary.Donut.Arcs[2].Color)

	total := 0.0
	for _, arc := range summary.Donut.Arcs {
		total += arc.EndAngle - arc.StartAngle
	}
	assert.InDelta(t, 2*math.Pi, total, 1e-9)

	require.Len(t, summary.Goals, 1)
	assert.True(t, summary.Goals[0].Percentage.Equal(dec("25")))
}

func TestDashboardService_GetSummary_NoSpendIsEmptyDonut(t *testing.T) {
	svc, incomeRepo, _, _, _ := newDashboardFixture(t)
	putIncome(t, incomeRepo, "i1", "5000")

	summary, err := svc.GetSummary(2026, 3)
	require.NoError(t, err)

	assert.True(t, summary.Donut.Empty)
	assert.Empty(t, summary.Donut.Arcs)
}

func TestDashboardService_GetSummary_SingleCategoryIsDisc(t *testing.T) {
	svc, _, fixedRepo, _, _ := newDashboardFixture(t)
	putFixed(t, fixedRepo, "f1", "1000", domain.CategoryEssentials)

	summary, err := svc.GetSummary(2026, 3)
	require.NoError(t, err)

	require.NotNil(t, summary.Donut.Full)
	assert.Equal(t, colorEssentials, summary.Donut.Full.Color)
	assert.Empty(t, summary.Donut.Arcs)
}

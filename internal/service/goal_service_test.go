package service

import (
	"testing"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalFixture(t *testing.T) (*GoalService, *testutil.MockGoalRepository, *testutil.MockFixedExpenseRepository) {
	t.Helper()
	goalRepo := testutil.NewMockGoalRepository()
	incomeRepo := testutil.NewMockIncomeRepository()
	fixedRepo := testutil.NewMockFixedExpenseRepository()
	txRepo := testutil.NewMockTransactionRepository()
	budgetService := NewBudgetService(incomeRepo, fixedRepo, txRepo)
	return NewGoalService(goalRepo, budgetService), goalRepo, fixedRepo
}

func TestGoalService_Create_Regular(t *testing.T) {
	svc, repo, _ := newGoalFixture(t)

	goal, err := svc.Create(CreateGoalInput{
		Name:         "New car",
		TargetAmount: dec("45000"),
		Emoji:        "🚗",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, goal.ID)
	assert.False(t, goal.IsEmergencyFund)
	assert.True(t, goal.TargetAmount.Equal(dec("45000")))
	assert.True(t, goal.CurrentAmount.IsZero())
	assert.Len(t, repo.Goals, 1)
}

func TestGoalService_Create_EmergencyFundIgnoresTargetAmount(t *testing.T) {
	svc, _, _ := newGoalFixture(t)

	goal, err := svc.Create(CreateGoalInput{
		Name:             "Safety net",
		TargetAmount:     dec("99999"),
		IsEmergencyFund:  true,
		MonthsOfSecurity: 8,
	})
	require.NoError(t, err)

	assert.True(t, goal.IsEmergencyFund)
	assert.Equal(t, 8, goal.MonthsOfSecurity)
	// The stored target is irrelevant for an emergency fund.
	assert.True(t, goal.TargetAmount.IsZero())
}

func TestGoalService_Create_Validation(t *testing.T) {
	svc, repo, _ := newGoalFixture(t)

	_, err := svc.Create(CreateGoalInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Create(CreateGoalInput{Name: "x", TargetAmount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(CreateGoalInput{Name: "x", CurrentAmount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	assert.Empty(t, repo.Goals)
}

func TestGoalService_ListWithProgress_EmergencyFund(t *testing.T) {
	svc, goalRepo, fixedRepo := newGoalFixture(t)

	// Living cost 3000 per month, six months of security: target 18000.
	putFixed(t, fixedRepo, "f1", "3000", domain.CategoryEssentials)
	require.NoError(t, goalRepo.Put(&domain.Goal{
		ID:               "g1",
		Name:             "Safety net",
		CurrentAmount:    dec("9000"),
		IsEmergencyFund:  true,
		MonthsOfSecurity: 6,
	}))

	progress, err := svc.ListWithProgress(2026, 3)
	require.NoError(t, err)
	require.Len(t, progress, 1)

	assert.True(t, progress[0].EffectiveTarget.Equal(dec("18000")), "target = %s", progress[0].EffectiveTarget)
	assert.True(t, progress[0].Percentage.Equal(dec("50")), "pct = %s", progress[0].Percentage)
}

func TestGoalService_ListWithProgress_TargetTracksLivingCost(t *testing.T) {
	svc, goalRepo, fixedRepo := newGoalFixture(t)

	require.NoError(t, goalRepo.Put(&domain.Goal{
		ID:               "g1",
		Name:             "Safety net",
		CurrentAmount:    dec("6000"),
		IsEmergencyFund:  true,
		MonthsOfSecurity: 6,
	}))

	putFixed(t, fixedRepo, "f1", "1000", domain.CategoryEssentials)
	progress, err := svc.ListWithProgress(2026, 3)
	require.NoError(t, err)
	assert.True(t, progress[0].EffectiveTarget.Equal(dec("6000")))
	assert.True(t, progress[0].Percentage.Equal(dec("100")))

	// Living cost rises, the same balance now covers less.
	putFixed(t, fixedRepo, "f2", "1000", domain.CategoryLifestyle)
	progress, err = svc.ListWithProgress(2026, 3)
	require.NoError(t, err)
	assert.True(t, progress[0].EffectiveTarget.Equal(dec("12000")))
	assert.True(t, progress[0].Percentage.Equal(dec("50")))
}

func TestGoalService_ListWithProgress_ClampedAt100(t *testing.T) {
	svc, goalRepo, _ := newGoalFixture(t)

	require.NoError(t, goalRepo.Put(&domain.Goal{
		ID:            "g1",
		Name:          "Trip",
		TargetAmount:  dec("1000"),
		CurrentAmount: dec("2500"),
	}))

	progress, err := svc.ListWithProgress(2026, 3)
	require.NoError(t, err)
	assert.True(t, progress[0].Percentage.Equal(dec("100")), "pct = %s", progress[0].Percentage)
}

func TestGoalService_Delete(t *testing.T) {
	svc, goalRepo, _ := newGoalFixture(t)

	require.NoError(t, goalRepo.Put(&domain.Goal{ID: "g1", Name: "Trip", TargetAmount: dec("100")}))

	require.NoError(t, svc.Delete("g1"))
	assert.Empty(t, goalRepo.Goals)

	assert.ErrorIs(t, svc.Delete("g1"), domain.ErrGoalNotFound)
}

func TestGoalService_EmergencyFundProgressUsesRequestedMonth(t *testing.T) {
	svc, goalRepo, _ := newGoalFixture(t)

	goalRepo.Put(&domain.Goal{
		ID:               "g1",
		Name:             "Safety net",
		CurrentAmount:    dec("5000"),
		IsEmergencyFund:  true,
		MonthsOfSecurity: 6,
	})

	incomeRepo := testutil.NewMockIncomeRepository()
	fixedRepo := testutil.NewMockFixedExpenseRepository()
	txRepo := testutil.NewMockTransactionRepository()
	svc = NewGoalService(goalRepo, NewBudgetService(incomeRepo, fixedRepo, txRepo))

	// Variable spend exists only in March; April's living cost is zero.
	putTx(t, txRepo, "t1", "2000", domain.CategoryEssentials,
		time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local))

	march, err := svc.ListWithProgress(2026, 3)
	require.NoError(t, err)
	assert.True(t, march[0].EffectiveTarget.Equal(dec("12000")))

	april, err := svc.ListWithProgress(2026, 4)
	require.NoError(t, err)
	assert.True(t, april[0].EffectiveTarget.IsZero())
	assert.True(t, april[0].Percentage.IsZero())
}

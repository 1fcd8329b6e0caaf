package service

import (
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetService derives the monthly budget numbers from the raw collections.
// All derivations are pure recomputations over full-collection reads; nothing
// is cached in the entities.
type BudgetService struct {
	incomeRepo       domain.IncomeRepository
	fixedExpenseRepo domain.FixedExpenseRepository
	transactionRepo  domain.TransactionRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	incomeRepo domain.IncomeRepository,
	fixedExpenseRepo domain.FixedExpenseRepository,
	transactionRepo domain.TransactionRepository,
) *BudgetService {
	return &BudgetService{
		incomeRepo:       incomeRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		transactionRepo:  transactionRepo,
	}
}

// MonthlySummary computes the full budget derivation for one calendar month.
// Incomes are a standing monthly baseline: the whole collection is summed for
// every month viewed, they are not period-scoped like transactions.
func (s *BudgetService) MonthlySummary(year, month int) (*domain.BudgetSummary, error) {
	incomes, err := s.incomeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	fixedExpenses, err := s.fixedExpenseRepo.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	for _, income := range incomes {
		totalIncome = totalIncome.Add(income.NetAmount)
	}

	targets := domain.TargetAllocations(totalIncome)

	fixedTotals := domain.ZeroCategoryTotals()
	for _, expense := range fixedExpenses {
		fixedTotals.Add(expense.Category, expense.Amount)
	}

	monthTxs := domain.TransactionsInMonth(transactions, year, time.Month(month))
	variableTotals := domain.ZeroCategoryTotals()
	for _, tx := range monthTxs {
		variableTotals.Add(tx.Category, tx.Amount)
	}

	// Fixed expenses never reach investments, so the final investments total
	// is the variable total alone.
	finalTotals := domain.CategoryTotals{
		Essentials:  fixedTotals.Essentials.Add(variableTotals.Essentials),
		Lifestyle:   fixedTotals.Lifestyle.Add(variableTotals.Lifestyle),
		Investments: variableTotals.Investments,
	}

	totalSpent := finalTotals.Sum()

	summary := &domain.BudgetSummary{
		Year:           year,
		Month:          month,
		TotalIncome:    totalIncome,
		Targets:        targets,
		FixedTotals:    fixedTotals,
		VariableTotals: variableTotals,
		FinalTotals:    finalTotals,
		TotalSpent:     totalSpent,
		// Negative free balance is a valid overspend signal, not an error.
		FreeBalance:       totalIncome.Sub(totalSpent),
		MonthlyLivingCost: finalTotals.Essentials.Add(finalTotals.Lifestyle),
		Progress:          categoryProgress(finalTotals, targets),
	}
	return summary, nil
}

// MonthlyLivingCost returns the essentials+lifestyle spend for the month,
// the base figure for emergency-fund targets.
func (s *BudgetService) MonthlyLivingCost(year, month int) (decimal.Decimal, error) {
	summary, err := s.MonthlySummary(year, month)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.MonthlyLivingCost, nil
}

func categoryProgress(spent, targets domain.CategoryTotals) []domain.CategoryProgress {
	hundred := decimal.NewFromInt(100)
	progress := make([]domain.CategoryProgress, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		amount := spent.Get(category)
		target := targets.Get(category)
		pct := domain.CategoryPercentage(amount, target)

		entry := domain.CategoryProgress{
			Category:   category,
			Spent:      amount,
			Target:     target,
			Percentage: pct,
		}
		if category == domain.CategoryInvestments {
			// Reaching the investments target is the positive signal.
			entry.TargetMet = pct.GreaterThanOrEqual(hundred)
		} else {
			entry.OverTarget = amount.GreaterThan(target)
		}
		progress = append(progress, entry)
	}
	return progress
}

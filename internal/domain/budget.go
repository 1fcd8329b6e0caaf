package domain

import (
	"github.com/shopspring/decimal"
)

// Target allocation of total income: 50% needs, 30% wants, 20% future.
// The split is fixed, not configurable.
var (
	targetShareEssentials  = decimal.NewFromFloat(0.50)
	targetShareLifestyle   = decimal.NewFromFloat(0.30)
	targetShareInvestments = decimal.NewFromFloat(0.20)
)

// CategoryTotals holds one amount per budget category.
type CategoryTotals struct {
	Essentials  decimal.Decimal `json:"essentials"`
	Lifestyle   decimal.Decimal `json:"lifestyle"`
	Investments decimal.Decimal `json:"investments"`
}

// ZeroCategoryTotals returns totals with all categories at zero. The zero
// value of decimal.Decimal already equals zero; this exists for readability
// at call sites that build totals incrementally.
func ZeroCategoryTotals() CategoryTotals {
	return CategoryTotals{
		Essentials:  decimal.Zero,
		Lifestyle:   decimal.Zero,
		Investments: decimal.Zero,
	}
}

// Add accumulates amount into the given category.
func (c *CategoryTotals) Add(category Category, amount decimal.Decimal) {
	switch category {
	case CategoryEssentials:
		c.Essentials = c.Essentials.Add(amount)
	case CategoryLifestyle:
		c.Lifestyle = c.Lifestyle.Add(amount)
	case CategoryInvestments:
		c.Investments = c.Investments.Add(amount)
	}
}

// Get returns the amount for the given category.
func (c CategoryTotals) Get(category Category) decimal.Decimal {
	switch category {
	case CategoryEssentials:
		return c.Essentials
	case CategoryLifestyle:
		return c.Lifestyle
	case CategoryInvestments:
		return c.Investments
	}
	return decimal.Zero
}

// Sum returns the total across all categories.
func (c CategoryTotals) Sum() decimal.Decimal {
	return c.Essentials.Add(c.Lifestyle).Add(c.Investments)
}

// TargetAllocations splits total income into the fixed 50/30/20 targets.
func TargetAllocations(totalIncome decimal.Decimal) CategoryTotals {
	return CategoryTotals{
		Essentials:  totalIncome.Mul(targetShareEssentials),
		Lifestyle:   totalIncome.Mul(targetShareLifestyle),
		Investments: totalIncome.Mul(targetShareInvestments),
	}
}

// CategoryPercentage returns amount as a percentage of target, clamped to
// [0, 100]. A non-positive target yields 0.
func CategoryPercentage(amount, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	pct := amount.Div(target).Mul(decimal.NewFromInt(100))
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// CategoryProgress compares a category's spend against its target allocation.
// OverTarget drives the overspend warning on expense categories; TargetMet is
// the positive signal on the investments category.
type CategoryProgress struct {
	Category   Category        `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Target     decimal.Decimal `json:"target"`
	Percentage decimal.Decimal `json:"percentage"`
	OverTarget bool            `json:"overTarget"`
	TargetMet  bool            `json:"targetMet"`
}

// BudgetSummary is the full derivation for one calendar month.
type BudgetSummary struct {
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	Targets           CategoryTotals     `json:"targets"`
	FixedTotals       CategoryTotals     `json:"fixedTotals"`
	VariableTotals    CategoryTotals     `json:"variableTotals"`
	FinalTotals       CategoryTotals     `json:"finalTotals"`
	TotalSpent        decimal.Decimal    `json:"totalSpent"`
	FreeBalance       decimal.Decimal    `json:"freeBalance"`
	MonthlyLivingCost decimal.Decimal    `json:"monthlyLivingCost"`
	Progress          []CategoryProgress `json:"progress"`
}

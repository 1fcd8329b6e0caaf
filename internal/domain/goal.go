package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultMonthsOfSecurity is used when an emergency fund was saved without a
// months multiplier, matching the goal form default.
const DefaultMonthsOfSecurity = 6

// Goal is a savings goal. A regular goal tracks progress against its stored
// TargetAmount. An emergency fund ignores TargetAmount: its target is a
// multiple of the current monthly living cost, recomputed on every read.
type Goal struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	CurrentAmount    decimal.Decimal `json:"currentAmount"`
	Emoji            string          `json:"emoji"`
	IsEmergencyFund  bool            `json:"isEmergencyFund"`
	MonthsOfSecurity int             `json:"monthsOfSecurity"`
}

// Validate checks the goal invariants.
func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrNameRequired
	}
	if len(g.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if g.CurrentAmount.IsNegative() {
		return ErrInvalidAmount
	}
	if g.MonthsOfSecurity < 0 {
		return ErrInvalidInput
	}
	if !g.IsEmergencyFund && g.TargetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// EffectiveTarget returns the amount this goal is measured against. For an
// emergency fund that is monthlyLivingCost times the months of security;
// otherwise the stored target. This is the only reader of the
// TargetAmount/MonthsOfSecurity pair.
func (g *Goal) EffectiveTarget(monthlyLivingCost decimal.Decimal) decimal.Decimal {
	if !g.IsEmergencyFund {
		return g.TargetAmount
	}
	months := g.MonthsOfSecurity
	if months <= 0 {
		months = DefaultMonthsOfSecurity
	}
	return monthlyLivingCost.Mul(decimal.NewFromInt(int64(months)))
}

// ProgressPercent returns percent-complete against the effective target,
// clamped at 100. A non-positive target yields 0.
func (g *Goal) ProgressPercent(monthlyLivingCost decimal.Decimal) decimal.Decimal {
	target := g.EffectiveTarget(monthlyLivingCost)
	if !target.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(target).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

type GoalRepository interface {
	GetAll() ([]*Goal, error)
	GetByID(id string) (*Goal, error)
	Put(goal *Goal) error
	Delete(id string) error
	Clear() error
}

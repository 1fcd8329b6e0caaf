package domain

import (
	"github.com/shopspring/decimal"
)

// FixedExpense is a recurring monthly obligation. It carries no date: it is
// projected into every calendar month implicitly.
type FixedExpense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
}

// Validate checks the fixed expense invariants.
func (f *FixedExpense) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if len(f.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if f.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if !f.Category.ValidForFixedExpense() {
		return ErrInvalidCategory
	}
	return nil
}

type FixedExpenseRepository interface {
	GetAll() ([]*FixedExpense, error)
	Put(expense *FixedExpense) error
	Delete(id string) error
	Clear() error
}

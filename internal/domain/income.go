package domain

import (
	"github.com/shopspring/decimal"
)

type IncomeType string

const (
	IncomeTypeSalary  IncomeType = "salary"
	IncomeTypeBenefit IncomeType = "benefit"
)

type IncomeBasis string

const (
	IncomeBasisGross IncomeBasis = "gross"
	IncomeBasisNet   IncomeBasis = "net"
)

// IncomeSource is a standing monthly income. NetAmount is derived once at
// creation time: for gross salaries it is the statutory net pay, otherwise
// it equals RawAmount.
type IncomeSource struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RawAmount decimal.Decimal `json:"rawAmount"`
	NetAmount decimal.Decimal `json:"netAmount"`
	Type      IncomeType      `json:"type"`
	Basis     IncomeBasis     `json:"basis"`
}

// Validate checks the income source invariants.
func (i *IncomeSource) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	if len(i.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if i.RawAmount.IsNegative() || i.NetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	if i.Type != IncomeTypeSalary && i.Type != IncomeTypeBenefit {
		return ErrInvalidInput
	}
	if i.Basis != IncomeBasisGross && i.Basis != IncomeBasisNet {
		return ErrInvalidInput
	}
	return nil
}

type IncomeRepository interface {
	GetAll() ([]*IncomeSource, error)
	Put(income *IncomeSource) error
	Delete(id string) error
	Clear() error
}

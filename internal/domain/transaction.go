package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a one-time variable movement scoped to the calendar month
// containing Date. An investment transaction may optionally reference a goal;
// the reference is non-owning and may dangle after the goal is deleted.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        time.Time       `json:"dateISO"`
	GoalID      *string         `json:"goalId,omitempty"`
}

// Validate checks the transaction invariants.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrNameRequired
	}
	if len(t.Description) > MaxNameLength {
		return ErrNameTooLong
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

// LinksGoal reports whether this transaction credits a goal balance, i.e. it
// is an investment with a goal reference.
func (t *Transaction) LinksGoal() bool {
	return t.Category == CategoryInvestments && t.GoalID != nil && *t.GoalID != ""
}

// TransactionsInMonth returns the order-preserved subset of txs whose date
// falls in the given calendar month. Dates are decomposed in local time,
// matching the calendar the month stepper navigates. The input is not
// mutated.
func TransactionsInMonth(txs []*Transaction, year int, month time.Month) []*Transaction {
	matched := make([]*Transaction, 0)
	for _, t := range txs {
		d := t.Date.In(time.Local)
		if d.Year() == year && d.Month() == month {
			matched = append(matched, t)
		}
	}
	return matched
}

type TransactionRepository interface {
	GetAll() ([]*Transaction, error)
	Put(tx *Transaction) error
	// PutWithGoalCredit inserts the transaction and credits the referenced
	// goal's current amount by the transaction amount inside a single store
	// transaction. A dangling goal reference is tolerated: the insert still
	// commits and the credit is skipped.
	PutWithGoalCredit(tx *Transaction) error
	Delete(id string) error
	Clear() error
}

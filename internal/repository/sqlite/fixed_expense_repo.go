package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// FixedExpenseRepository implements domain.FixedExpenseRepository on the
// shared store.
type FixedExpenseRepository struct {
	db *sql.DB
}

// NewFixedExpenseRepository creates a new FixedExpenseRepository
func NewFixedExpenseRepository(store *Store) *FixedExpenseRepository {
	return &FixedExpenseRepository{db: store.DB()}
}

// GetAll returns every fixed expense in the collection.
func (r *FixedExpenseRepository) GetAll() ([]*domain.FixedExpense, error) {
	rows, err := r.db.Query(`SELECT id, name, amount, category FROM fixed_expenses`)
	if err != nil {
		return nil, fmt.Errorf("query fixed expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.FixedExpense, 0)
	for rows.Next() {
		var (
			expense   domain.FixedExpense
			amountStr string
			category  string
		)
		if err := rows.Scan(&expense.ID, &expense.Name, &amountStr, &category); err != nil {
			return nil, fmt.Errorf("scan fixed expense: %w", err)
		}
		if expense.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		expense.Category = domain.Category(category)
		expenses = append(expenses, &expense)
	}
	return expenses, rows.Err()
}

// Put inserts or replaces a fixed expense by id.
func (r *FixedExpenseRepository) Put(expense *domain.FixedExpense) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO fixed_expenses (id, name, amount, category) VALUES (?, ?, ?, ?)`,
		expense.ID, expense.Name, expense.Amount.String(), string(expense.Category),
	)
	if err != nil {
		return fmt.Errorf("put fixed expense: %w", err)
	}
	return nil
}

// Delete removes a fixed expense by id.
func (r *FixedExpenseRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM fixed_expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete fixed expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete fixed expense: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every fixed expense.
func (r *FixedExpenseRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM fixed_expenses`); err != nil {
		return fmt.Errorf("clear fixed expenses: %w", err)
	}
	return nil
}

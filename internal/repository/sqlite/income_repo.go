package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeRepository implements domain.IncomeRepository on the shared store.
type IncomeRepository struct {
	db *sql.DB
}

// NewIncomeRepository creates a new IncomeRepository
func NewIncomeRepository(store *Store) *IncomeRepository {
	return &IncomeRepository{db: store.DB()}
}

// GetAll returns every income source in the collection.
func (r *IncomeRepository) GetAll() ([]*domain.IncomeSource, error) {
	rows, err := r.db.Query(`SELECT id, name, raw_amount, net_amount, type, basis FROM incomes`)
	if err != nil {
		return nil, fmt.Errorf("query incomes: %w", err)
	}
	defer rows.Close()

	incomes := make([]*domain.IncomeSource, 0)
	for rows.Next() {
		var (
			income         domain.IncomeSource
			rawStr, netStr string
			incomeType     string
			basis          string
		)
		if err := rows.Scan(&income.ID, &income.Name, &rawStr, &netStr, &incomeType, &basis); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		if income.RawAmount, err = decimal.NewFromString(rawStr); err != nil {
			return nil, fmt.Errorf("parse raw amount: %w", err)
		}
		if income.NetAmount, err = decimal.NewFromString(netStr); err != nil {
			return nil, fmt.Errorf("parse net amount: %w", err)
		}
		income.Type = domain.IncomeType(incomeType)
		income.Basis = domain.IncomeBasis(basis)
		incomes = append(incomes, &income)
	}
	return incomes, rows.Err()
}

// Put inserts or replaces an income source by id.
func (r *IncomeRepository) Put(income *domain.IncomeSource) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO incomes (id, name, raw_amount, net_amount, type, basis) VALUES (?, ?, ?, ?, ?, ?)`,
		income.ID, income.Name, income.RawAmount.String(), income.NetAmount.String(), string(income.Type), string(income.Basis),
	)
	if err != nil {
		return fmt.Errorf("put income: %w", err)
	}
	return nil
}

// Delete removes an income source by id.
func (r *IncomeRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every income source.
func (r *IncomeRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM incomes`); err != nil {
		return fmt.Errorf("clear incomes: %w", err)
	}
	return nil
}

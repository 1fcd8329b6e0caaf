package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository on the
// shared store.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{db: store.DB()}
}

func scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	var (
		tx        domain.Transaction
		amountStr string
		category  string
		dateStr   string
		goalID    sql.NullString
	)
	if err := rows.Scan(&tx.ID, &tx.Description, &amountStr, &category, &dateStr, &goalID); err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	tx.Amount = amount
	tx.Category = domain.Category(category)
	tx.Date = date
	if goalID.Valid && goalID.String != "" {
		tx.GoalID = &goalID.String
	}
	return &tx, nil
}

// GetAll returns every transaction in the collection.
func (r *TransactionRepository) GetAll() ([]*domain.Transaction, error) {
	rows, err := r.db.Query(`SELECT id, description, amount, category, date_iso, goal_id FROM transactions ORDER BY date_iso`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Put inserts or replaces a transaction by id.
func (r *TransactionRepository) Put(tx *domain.Transaction) error {
	var goalID interface{}
	if tx.GoalID != nil {
		goalID = *tx.GoalID
	}
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO transactions (id, description, amount, category, date_iso, goal_id) VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Description, tx.Amount.String(), string(tx.Category), tx.Date.Format(time.RFC3339), goalID,
	)
	if err != nil {
		return fmt.Errorf("put transaction: %w", err)
	}
	return nil
}

// PutWithGoalCredit inserts the transaction and credits the linked goal's
// current amount in one database transaction, so the goal can never end up
// under-credited relative to the transaction log. A dangling goal reference
// commits the insert and skips the credit.
func (r *TransactionRepository) PutWithGoalCredit(tx *domain.Transaction) error {
	if tx.GoalID == nil {
		return r.Put(tx)
	}

	dbTx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin goal credit: %w", err)
	}
	defer dbTx.Rollback()

	var goalID interface{} = *tx.GoalID
	_, err = dbTx.Exec(
		`INSERT OR REPLACE INTO transactions (id, description, amount, category, date_iso, goal_id) VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Description, tx.Amount.String(), string(tx.Category), tx.Date.Format(time.RFC3339), goalID,
	)
	if err != nil {
		return fmt.Errorf("put transaction: %w", err)
	}

	var currentStr string
	err = dbTx.QueryRow(`SELECT current_amount FROM goals WHERE id = ?`, *tx.GoalID).Scan(&currentStr)
	switch {
	case err == sql.ErrNoRows:
		// Goal was deleted; the reference dangles and the credit is skipped.
		return dbTx.Commit()
	case err != nil:
		return fmt.Errorf("load goal balance: %w", err)
	}

	current, err := decimal.NewFromString(currentStr)
	if err != nil {
		return fmt.Errorf("parse goal balance: %w", err)
	}
	credited := current.Add(tx.Amount)

	if _, err := dbTx.Exec(`UPDATE goals SET current_amount = ? WHERE id = ?`, credited.String(), *tx.GoalID); err != nil {
		return fmt.Errorf("credit goal: %w", err)
	}

	return dbTx.Commit()
}

// Delete removes a transaction by id.
func (r *TransactionRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every transaction.
func (r *TransactionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	return nil
}

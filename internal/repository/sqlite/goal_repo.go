package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalRepository implements domain.GoalRepository on the shared store.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(store *Store) *GoalRepository {
	return &GoalRepository{db: store.DB()}
}

func scanGoal(scan func(dest ...interface{}) error) (*domain.Goal, error) {
	var (
		goal        domain.Goal
		targetStr   string
		currentStr  string
		isEmergency int
	)
	if err := scan(&goal.ID, &goal.Name, &targetStr, &currentStr, &goal.Emoji, &isEmergency, &goal.MonthsOfSecurity); err != nil {
		return nil, err
	}
	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("parse target amount: %w", err)
	}
	current, err := decimal.NewFromString(currentStr)
	if err != nil {
		return nil, fmt.Errorf("parse current amount: %w", err)
	}
	goal.TargetAmount = target
	goal.CurrentAmount = current
	goal.IsEmergencyFund = isEmergency != 0
	return &goal, nil
}

// GetAll returns every goal in the collection.
func (r *GoalRepository) GetAll() ([]*domain.Goal, error) {
	rows, err := r.db.Query(`SELECT id, name, target_amount, current_amount, emoji, is_emergency_fund, months_of_security FROM goals`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// GetByID returns a single goal or domain.ErrGoalNotFound.
func (r *GoalRepository) GetByID(id string) (*domain.Goal, error) {
	row := r.db.QueryRow(`SELECT id, name, target_amount, current_amount, emoji, is_emergency_fund, months_of_security FROM goals WHERE id = ?`, id)
	goal, err := scanGoal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, domain.ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan goal: %w", err)
	}
	return goal, nil
}

// Put inserts or replaces a goal by id.
func (r *GoalRepository) Put(goal *domain.Goal) error {
	isEmergency := 0
	if goal.IsEmergencyFund {
		isEmergency = 1
	}
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO goals (id, name, target_amount, current_amount, emoji, is_emergency_fund, months_of_security) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Name, goal.TargetAmount.String(), goal.CurrentAmount.String(), goal.Emoji, isEmergency, goal.MonthsOfSecurity,
	)
	if err != nil {
		return fmt.Errorf("put goal: %w", err)
	}
	return nil
}

// Delete removes a goal by id. Transactions referencing it are left in
// place; their goal references are allowed to dangle.
func (r *GoalRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if affected == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

// Clear removes every goal.
func (r *GoalRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM goals`); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}
	return nil
}

package testutil

import (
	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
)

// MockIncomeRepository is a mock implementation of domain.IncomeRepository
type MockIncomeRepository struct {
	Incomes map[string]*domain.IncomeSource
	order   []string
}

// NewMockIncomeRepository creates a new MockIncomeRepository
func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{Incomes: make(map[string]*domain.IncomeSource)}
}

// GetAll returns all income sources in insertion order
func (m *MockIncomeRepository) GetAll() ([]*domain.IncomeSource, error) {
	result := make([]*domain.IncomeSource, 0, len(m.Incomes))
	for _, id := range m.order {
		if income, ok := m.Incomes[id]; ok {
			result = append(result, income)
		}
	}
	return result, nil
}

// Put stores an income source
func (m *MockIncomeRepository) Put(income *domain.IncomeSource) error {
	if _, ok := m.Incomes[income.ID]; !ok {
		m.order = append(m.order, income.ID)
	}
	m.Incomes[income.ID] = income
	return nil
}

// Delete removes an income source
func (m *MockIncomeRepository) Delete(id string) error {
	if _, ok := m.Incomes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Incomes, id)
	return nil
}

// Clear removes all income sources
func (m *MockIncomeRepository) Clear() error {
	m.Incomes = make(map[string]*domain.IncomeSource)
	m.order = nil
	return nil
}

// MockFixedExpenseRepository is a mock implementation of domain.FixedExpenseRepository
type MockFixedExpenseRepository struct {
	Expenses map[string]*domain.FixedExpense
	order    []string
}

// NewMockFixedExpenseRepository creates a new MockFixedExpenseRepository
func NewMockFixedExpenseRepository() *MockFixedExpenseRepository {
	return &MockFixedExpenseRepository{Expenses: make(map[string]*domain.FixedExpense)}
}

// GetAll returns all fixed expenses in insertion order
func (m *MockFixedExpenseRepository) GetAll() ([]*domain.FixedExpense, error) {
	result := make([]*domain.FixedExpense, 0, len(m.Expenses))
	for _, id := range m.order {
		if expense, ok := m.Expenses[id]; ok {
			result = append(result, expense)
		}
	}
	return result, nil
}

// Put stores a fixed expense
func (m *MockFixedExpenseRepository) Put(expense *domain.FixedExpense) error {
	if _, ok := m.Expenses[expense.ID]; !ok {
		m.order = append(m.order, expense.ID)
	}
	m.Expenses[expense.ID] = expense
	return nil
}

// Delete removes a fixed expense
func (m *MockFixedExpenseRepository) Delete(id string) error {
	if _, ok := m.Expenses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// Clear removes all fixed expenses
func (m *MockFixedExpenseRepository) Clear() error {
	m.Expenses = make(map[string]*domain.FixedExpense)
	m.order = nil
	return nil
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals map[string]*domain.Goal
	order []string
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{Goals: make(map[string]*domain.Goal)}
}

// GetAll returns all goals in insertion order
func (m *MockGoalRepository) GetAll() ([]*domain.Goal, error) {
	result := make([]*domain.Goal, 0, len(m.Goals))
	for _, id := range m.order {
		if goal, ok := m.Goals[id]; ok {
			result = append(result, goal)
		}
	}
	return result, nil
}

// GetByID retrieves a goal by ID
func (m *MockGoalRepository) GetByID(id string) (*domain.Goal, error) {
	if goal, ok := m.Goals[id]; ok {
		return goal, nil
	}
	return nil, domain.ErrGoalNotFound
}

// Put stores a goal
func (m *MockGoalRepository) Put(goal *domain.Goal) error {
	if _, ok := m.Goals[goal.ID]; !ok {
		m.order = append(m.order, goal.ID)
	}
	m.Goals[goal.ID] = goal
	return nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(id string) error {
	if _, ok := m.Goals[id]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(m.Goals, id)
	return nil
}

// Clear removes all goals
func (m *MockGoalRepository) Clear() error {
	m.Goals = make(map[string]*domain.Goal)
	m.order = nil
	return nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository.
// GoalRepo, when set, receives goal credits from PutWithGoalCredit.
type MockTransactionRepository struct {
	Transactions map[string]*domain.Transaction
	GoalRepo     *MockGoalRepository
	order        []string
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: make(map[string]*domain.Transaction)}
}

// GetAll returns all transactions in insertion order
func (m *MockTransactionRepository) GetAll() ([]*domain.Transaction, error) {
	result := make([]*domain.Transaction, 0, len(m.Transactions))
	for _, id := range m.order {
		if tx, ok := m.Transactions[id]; ok {
			result = append(result, tx)
		}
	}
	return result, nil
}

// Put stores a transaction
func (m *MockTransactionRepository) Put(tx *domain.Transaction) error {
	if _, ok := m.Transactions[tx.ID]; !ok {
		m.order = append(m.order, tx.ID)
	}
	m.Transactions[tx.ID] = tx
	return nil
}

// PutWithGoalCredit stores a transaction and credits the linked goal.
// A dangling goal reference stores the transaction and skips the credit.
func (m *MockTransactionRepository) PutWithGoalCredit(tx *domain.Transaction) error {
	if err := m.Put(tx); err != nil {
		return err
	}
	if m.GoalRepo == nil || tx.GoalID == nil {
		return nil
	}
	if goal, ok := m.GoalRepo.Goals[*tx.GoalID]; ok {
		goal.CurrentAmount = goal.CurrentAmount.Add(tx.Amount)
	}
	return nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(id string) error {
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// Clear removes all transactions
func (m *MockTransactionRepository) Clear() error {
	m.Transactions = make(map[string]*domain.Transaction)
	m.order = nil
	return nil
}

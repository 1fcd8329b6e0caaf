package service

import (
	"strings"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedExpenseService handles fixed expense business logic
type FixedExpenseService struct {
	fixedExpenseRepo domain.FixedExpenseRepository
	eventPublisher   websocket.EventPublisher
}

// NewFixedExpenseService creates a new FixedExpenseService
func NewFixedExpenseService(fixedExpenseRepo domain.FixedExpenseRepository) *FixedExpenseService {
	return &FixedExpenseService{fixedExpenseRepo: fixedExpenseRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *FixedExpenseService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateFixedExpenseInput holds the input for creating a fixed expense
type CreateFixedExpenseInput struct {
	Name     string
	Amount   decimal.Decimal
	Category domain.Category
}

// Create records a new recurring monthly obligation.
func (s *FixedExpenseService) Create(input CreateFixedExpenseInput) (*domain.FixedExpense, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !input.Category.ValidForFixedExpense() {
		return nil, domain.ErrInvalidCategory
	}

	expense := &domain.FixedExpense{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   input.Amount,
		Category: input.Category,
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.fixedExpenseRepo.Put(expense); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.FixedExpenseCreated(expense))
	}

	return expense, nil
}

// List returns every fixed expense.
func (s *FixedExpenseService) List() ([]*domain.FixedExpense, error) {
	return s.fixedExpenseRepo.GetAll()
}

// Delete removes a fixed expense.
func (s *FixedExpenseService) Delete(id string) error {
	if err := s.fixedExpenseRepo.Delete(id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.FixedExpenseDeleted(map[string]string{"id": id}))
	}

	return nil
}

package service

import (
	"strings"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeService handles income source business logic
type IncomeService struct {
	incomeRepo     domain.IncomeRepository
	eventPublisher websocket.EventPublisher
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *IncomeService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateIncomeInput holds the input for creating an income source
type CreateIncomeInput struct {
	Name   string
	Amount decimal.Decimal
	Type   domain.IncomeType
	Basis  domain.IncomeBasis
}

// Create records a new income source. The net amount is derived exactly once
// here: a gross salary goes through the statutory payroll calculation, every
// other combination is taken as already net.
func (s *IncomeService) Create(input CreateIncomeInput) (*domain.IncomeSource, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	net := input.Amount
	if input.Type == domain.IncomeTypeSalary && input.Basis == domain.IncomeBasisGross {
		net = domain.CalculateNetPay(input.Amount).Net
	}

	income := &domain.IncomeSource{
		ID:        uuid.NewString(),
		Name:      name,
		RawAmount: input.Amount,
		NetAmount: net,
		Type:      input.Type,
		Basis:     input.Basis,
	}
	if err := income.Validate(); err != nil {
		return nil, err
	}

	if err := s.incomeRepo.Put(income); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.IncomeCreated(income))
	}

	return income, nil
}

// List returns every income source.
func (s *IncomeService) List() ([]*domain.IncomeSource, error) {
	return s.incomeRepo.GetAll()
}

// Delete removes an income source.
func (s *IncomeService) Delete(id string) error {
	if err := s.incomeRepo.Delete(id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.IncomeDeleted(map[string]string{"id": id}))
	}

	return nil
}

package service

import (
	"strings"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles variable transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Category    domain.Category
	Date        time.Time
	GoalID      *string
}

// Create records a one-time movement. An investment linked to a goal also
// credits that goal's balance; both writes happen in one store transaction
// so the caller sees a single result. A goal reference that no longer
// resolves is tolerated: the transaction is recorded and the credit skipped.
func (s *TransactionService) Create(input CreateTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrNameRequired
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &domain.Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        date,
		GoalID:      input.GoalID,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	var err error
	if tx.LinksGoal() {
		err = s.transactionRepo.PutWithGoalCredit(tx)
	} else {
		err = s.transactionRepo.Put(tx)
	}
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.TransactionCreated(tx))
	}

	return tx, nil
}

// ListByMonth returns the transactions whose date falls in the given
// calendar month, in store order.
func (s *TransactionService) ListByMonth(year, month int) ([]*domain.Transaction, error) {
	all, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return domain.TransactionsInMonth(all, year, time.Month(month)), nil
}

// List returns every transaction.
func (s *TransactionService) List() ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll()
}

// Delete removes a transaction. Goal balances are not re-debited: an
// already-applied credit stays applied, matching the product decision for
// goal deletion.
func (s *TransactionService) Delete(id string) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.TransactionDeleted(map[string]string{"id": id}))
	}

	return nil
}

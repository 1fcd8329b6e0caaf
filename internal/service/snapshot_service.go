package service

import (
	"fmt"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// SnapshotService exports and restores the complete database as one
// interchange document.
type SnapshotService struct {
	incomeRepo       domain.IncomeRepository
	fixedExpenseRepo domain.FixedExpenseRepository
	transactionRepo  domain.TransactionRepository
	goalRepo         domain.GoalRepository
	eventPublisher   websocket.EventPublisher
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	incomeRepo domain.IncomeRepository,
	fixedExpenseRepo domain.FixedExpenseRepository,
	transactionRepo domain.TransactionRepository,
	goalRepo domain.GoalRepository,
) *SnapshotService {
	return &SnapshotService{
		incomeRepo:       incomeRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		transactionRepo:  transactionRepo,
		goalRepo:         goalRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SnapshotService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Export reads every record from all four collections. No ordering beyond
// store enumeration order is promised.
func (s *SnapshotService) Export() (*domain.Snapshot, error) {
	incomes, err := s.incomeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	fixedExpenses, err := s.fixedExpenseRepo.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.GetAll()
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{
		Incomes:       incomes,
		FixedExpenses: fixedExpenses,
		Transactions:  transactions,
		Goals:         goals,
	}
	snapshot.Normalize()
	return snapshot, nil
}

// ExportFilename returns the download filename for an export taken now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("family_wealth_db_%s.json", now.Format("2006-01-02"))
}

// Import restores the given document with destructive-replace semantics:
// every collection is cleared, then every record is inserted with its
// original identifier, so importing the same document twice yields the same
// final state. A collection missing from the document ends up empty. The
// document is validated in full before the first clear; a failure at that
// stage mutates nothing.
func (s *SnapshotService) Import(snapshot *domain.Snapshot) error {
	snapshot.Normalize()
	if err := snapshot.Validate(); err != nil {
		return err
	}

	if err := s.incomeRepo.Clear(); err != nil {
		return err
	}
	if err := s.fixedExpenseRepo.Clear(); err != nil {
		return err
	}
	if err := s.transactionRepo.Clear(); err != nil {
		return err
	}
	if err := s.goalRepo.Clear(); err != nil {
		return err
	}

	for _, income := range snapshot.Incomes {
		if err := s.incomeRepo.Put(income); err != nil {
			return err
		}
	}
	for _, expense := range snapshot.FixedExpenses {
		if err := s.fixedExpenseRepo.Put(expense); err != nil {
			return err
		}
	}
	for _, tx := range snapshot.Transactions {
		// Plain Put: goal balances in the document are already credited.
		if err := s.transactionRepo.Put(tx); err != nil {
			return err
		}
	}
	for _, goal := range snapshot.Goals {
		if err := s.goalRepo.Put(goal); err != nil {
			return err
		}
	}

	log.Info().
		Int("incomes", len(snapshot.Incomes)).
		Int("fixed_expenses", len(snapshot.FixedExpenses)).
		Int("transactions", len(snapshot.Transactions)).
		Int("goals", len(snapshot.Goals)).
		Msg("Snapshot imported")

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.SnapshotImported(map[string]int{
			"incomes":       len(snapshot.Incomes),
			"fixedExpenses": len(snapshot.FixedExpenses),
			"transactions":  len(snapshot.Transactions),
			"goals":         len(snapshot.Goals),
		}))
	}

	return nil
}

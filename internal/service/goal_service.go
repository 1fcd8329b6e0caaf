package service

import (
	"strings"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goal business logic
type GoalService struct {
	goalRepo       domain.GoalRepository
	budgetService  *BudgetService
	eventPublisher websocket.EventPublisher
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository, budgetService *BudgetService) *GoalService {
	return &GoalService{
		goalRepo:      goalRepo,
		budgetService: budgetService,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *GoalService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateGoalInput holds the input for creating a goal
type CreateGoalInput struct {
	Name             string
	TargetAmount     decimal.Decimal
	CurrentAmount    decimal.Decimal
	Emoji            string
	IsEmergencyFund  bool
	MonthsOfSecurity int
}

// GoalProgress is a goal with its progress computed against the effective
// target. For emergency funds the target is derived from the month's living
// cost on every read; nothing is written back to the goal record.
type GoalProgress struct {
	Goal            *domain.Goal    `json:"goal"`
	EffectiveTarget decimal.Decimal `json:"effectiveTarget"`
	Percentage      decimal.Decimal `json:"percentage"`
}

// Create records a new savings goal.
func (s *GoalService) Create(input CreateGoalInput) (*domain.Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if input.CurrentAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	goal := &domain.Goal{
		ID:            uuid.NewString(),
		Name:          name,
		CurrentAmount: input.CurrentAmount,
		Emoji:         input.Emoji,
	}
	if input.IsEmergencyFund {
		goal.IsEmergencyFund = true
		goal.MonthsOfSecurity = input.MonthsOfSecurity
		goal.TargetAmount = decimal.Zero
	} else {
		if input.TargetAmount.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		goal.TargetAmount = input.TargetAmount
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Put(goal); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.GoalCreated(goal))
	}

	return goal, nil
}

// ListWithProgress returns every goal with progress computed against the
// given month's living cost.
func (s *GoalService) ListWithProgress(year, month int) ([]*GoalProgress, error) {
	goals, err := s.goalRepo.GetAll()
	if err != nil {
		return nil, err
	}

	livingCost, err := s.budgetService.MonthlyLivingCost(year, month)
	if err != nil {
		return nil, err
	}

	progress := make([]*GoalProgress, len(goals))
	for i, goal := range goals {
		progress[i] = &GoalProgress{
			Goal:            goal,
			EffectiveTarget: goal.EffectiveTarget(livingCost),
			Percentage:      goal.ProgressPercent(livingCost),
		}
	}
	return progress, nil
}

// Get returns a single goal or domain.ErrGoalNotFound.
func (s *GoalService) Get(id string) (*domain.Goal, error) {
	return s.goalRepo.GetByID(id)
}

// Delete removes a goal. Historical transactions referencing it are kept,
// and credits already applied to CurrentAmount are not reversed.
func (s *GoalService) Delete(id string) error {
	if err := s.goalRepo.Delete(id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.GoalDeleted(map[string]string{"id": id}))
	}

	return nil
}

package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeImported EventType = "imported"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeIncome       EntityType = "income"
	EntityTypeFixedExpense EntityType = "fixed_expense"
	EntityTypeTransaction  EntityType = "transaction"
	EntityTypeGoal         EntityType = "goal"
	EntityTypeSnapshot     EntityType = "snapshot"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "transaction"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// IncomeCreated creates an income.created event
func IncomeCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeIncome, payload)
}

// IncomeDeleted creates an income.deleted event
func IncomeDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeIncome, payload)
}

// FixedExpenseCreated creates a fixed_expense.created event
func FixedExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeFixedExpense, payload)
}

// FixedExpenseDeleted creates a fixed_expense.deleted event
func FixedExpenseDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeFixedExpense, payload)
}

// TransactionCreated creates a transaction.created event
func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

// TransactionDeleted creates a transaction.deleted event
func TransactionDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeTransaction, payload)
}

// GoalCreated creates a goal.created event
func GoalCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeGoal, payload)
}

// GoalUpdated creates a goal.updated event
func GoalUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeGoal, payload)
}

// GoalDeleted creates a goal.deleted event
func GoalDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeGoal, payload)
}

// SnapshotImported creates a snapshot.imported event
func SnapshotImported(payload interface{}) Event {
	return NewEvent(EventTypeImported, EntityTypeSnapshot, payload)
}

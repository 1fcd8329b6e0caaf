package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func txOn(id string, date time.Time) *Transaction {
	return &Transaction{
		ID:          id,
		Description: "tx " + id,
		Amount:      dec("10"),
		Category:    CategoryEssentials,
		Date:        date,
	}
}

func TestTransactionsInMonth(t *testing.T) {
	txs := []*Transaction{
		txOn("a", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)),
		txOn("b", time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local)),
		txOn("c", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)),
		txOn("d", time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local)),
	}

	march := TransactionsInMonth(txs, 2026, time.March)

	assert.Len(t, march, 2)
	assert.Equal(t, "a", march[0].ID)
	assert.Equal(t, "b", march[1].ID)
}

func TestTransactionsInMonth_Empty(t *testing.T) {
	march := TransactionsInMonth(nil, 2026, time.March)
	assert.NotNil(t, march)
	assert.Empty(t, march)
}

func TestTransactionsInMonth_PreservesOrder(t *testing.T) {
	txs := []*Transaction{
		txOn("late", time.Date(2026, time.May, 20, 0, 0, 0, 0, time.Local)),
		txOn("early", time.Date(2026, time.May, 2, 0, 0, 0, 0, time.Local)),
	}

	may := TransactionsInMonth(txs, 2026, time.May)

	// Input order, not date order.
	assert.Equal(t, "late", may[0].ID)
	assert.Equal(t, "early", may[1].ID)
}

func TestTransaction_LinksGoal(t *testing.T) {
	goalID := "g1"
	empty := ""

	linked := &Transaction{Category: CategoryInvestments, GoalID: &goalID}
	assert.True(t, linked.LinksGoal())

	noRef := &Transaction{Category: CategoryInvestments}
	assert.False(t, noRef.LinksGoal())

	emptyRef := &Transaction{Category: CategoryInvestments, GoalID: &empty}
	assert.False(t, emptyRef.LinksGoal())

	wrongCategory := &Transaction{Category: CategoryLifestyle, GoalID: &goalID}
	assert.False(t, wrongCategory.LinksGoal())
}

func TestTransaction_Validate(t *testing.T) {
	valid := txOn("a", time.Now())
	assert.NoError(t, valid.Validate())

	noDate := &Transaction{ID: "a", Description: "x", Amount: dec("1"), Category: CategoryEssentials}
	assert.ErrorIs(t, noDate.Validate(), ErrInvalidInput)

	negative := txOn("a", time.Now())
	negative.Amount = dec("-5")
	assert.ErrorIs(t, negative.Validate(), ErrInvalidAmount)

	badCategory := txOn("a", time.Now())
	badCategory.Category = Category("savings")
	assert.ErrorIs(t, badCategory.Validate(), ErrInvalidCategory)
}

package domain

// Snapshot is the interchange document for export and import. A missing
// collection key means "that collection is empty", not "leave it untouched".
type Snapshot struct {
	Incomes       []*IncomeSource `json:"incomes"`
	FixedExpenses []*FixedExpense `json:"fixedExpenses"`
	Transactions  []*Transaction  `json:"transactions"`
	Goals         []*Goal         `json:"goals"`
}

// Normalize replaces nil collections with empty slices so exports always
// carry all four keys.
func (s *Snapshot) Normalize() {
	if s.Incomes == nil {
		s.Incomes = []*IncomeSource{}
	}
	if s.FixedExpenses == nil {
		s.FixedExpenses = []*FixedExpense{}
	}
	if s.Transactions == nil {
		s.Transactions = []*Transaction{}
	}
	if s.Goals == nil {
		s.Goals = []*Goal{}
	}
}

// Validate checks every record in the document. Import must not begin
// clearing collections until this passes.
func (s *Snapshot) Validate() error {
	for _, income := range s.Incomes {
		if income.ID == "" {
			return ErrInvalidInput
		}
		if err := income.Validate(); err != nil {
			return err
		}
	}
	for _, expense := range s.FixedExpenses {
		if expense.ID == "" {
			return ErrInvalidInput
		}
		if err := expense.Validate(); err != nil {
			return err
		}
	}
	for _, tx := range s.Transactions {
		if tx.ID == "" {
			return ErrInvalidInput
		}
		if err := tx.Validate(); err != nil {
			return err
		}
	}
	for _, goal := range s.Goals {
		if goal.ID == "" {
			return ErrInvalidInput
		}
		if err := goal.Validate(); err != nil {
			return err
		}
	}
	return nil
}

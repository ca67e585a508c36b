package store

import (
	"log/slog"

	"github.com/acrozela/billbook/internal/ids"
	"github.com/acrozela/billbook/internal/models"
)

// ExpenseForm is the input for recording an expense. Date defaults to today
// and payment method to Cash.
type ExpenseForm struct {
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"paymentMethod"`
}

// CreateExpense validates the form and prepends a new expense: the expense
// list is most-recent-first, unlike the client list.
func (s *Store) CreateExpense(form ExpenseForm) (*models.Expense, error) {
	if form.Category == "" {
		return nil, validationf("expense category is required")
	}
	if form.Amount <= 0 {
		return nil, validationf("expense amount must be positive")
	}
	method := models.PaymentMethod(form.PaymentMethod)
	if form.PaymentMethod == "" {
		method = models.MethodCash
	} else if !method.Valid() {
		return nil, validationf("payment method %q is not valid", form.PaymentMethod)
	}
	date := form.Date
	if date == "" {
		date = today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense := models.Expense{
		ID:            ids.New(),
		Category:      form.Category,
		Amount:        form.Amount,
		Date:          date,
		Description:   form.Description,
		PaymentMethod: method,
	}
	s.state.Expenses = append([]models.Expense{expense}, s.state.Expenses...)

	slog.Info("Expense recorded", "expense_id", expense.ID, "category", expense.Category, "amount", expense.Amount)
	s.persist()
	return &expense, nil
}

// DeleteExpense removes the expense with the given id. Unknown ids are a
// no-op.
func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			slog.Info("Expense deleted", "expense_id", id)
			s.persist()
			return
		}
	}
}

// ListExpenses returns expenses most-recent-first.
func (s *Store) ListExpenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Expense, len(s.state.Expenses))
	copy(out, s.state.Expenses)
	return out
}

package daybook

// Expense operations.

// AddExpense records an ad-hoc daily expense and returns it.
func (b *Book) AddExpense(description string, amount Money) (Expense, error) {
	if description == "" {
		return Expense{}, validationf("expense description cannot be empty")
	}
	if amount.IsNegative() {
		return Expense{}, validationf("expense amount cannot be negative, got %s", amount)
	}
	exp := Expense{
		ID:          b.newID(),
		Description: description,
		Amount:      M(amount.value, b.state.Currency),
		Timestamp:   b.now(),
	}
	b.state.Expenses = append(b.state.Expenses, exp)
	if err := b.commit("save"); err != nil {
		return Expense{}, err
	}
	return exp, nil
}

// RemoveExpense deletes the expense with this id.
func (b *Book) RemoveExpense(id string) error {
	for i := range b.state.Expenses {
		if b.state.Expenses[i].ID == id {
			b.state.Expenses = append(b.state.Expenses[:i], b.state.Expenses[i+1:]...)
			return b.commit("save")
		}
	}
	return &NotFoundError{Kind: "expense", ID: id}
}

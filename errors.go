package daybook

import "fmt"

// Every operation on a Book reports failures as one of the typed errors
// below, so callers can branch with errors.As and map each kind to a
// specific message. Errors are never used for normal control flow.

// ValidationError reports malformed or out-of-range input, like a negative
// price or an empty name.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a reference to a missing record.
type NotFoundError struct {
	Kind string // "menu item", "order", "expense", "cart line", "state key"
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

// InsufficientStockError reports an order placement that exceeds an item's
// tracked stock.
type InsufficientStockError struct {
	Item string
	Want int
	Have int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: want %d, have %d", e.Item, e.Want, e.Have)
}

// EmptyOrderError reports an attempt to place an order with no lines.
type EmptyOrderError struct{}

func (e *EmptyOrderError) Error() string { return "cannot place an empty order" }

// PersistenceError reports a failure of the underlying store, like a write
// error or corrupted serialized state.
type PersistenceError struct {
	Op  string // "save", "load", "reset"
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s day state: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

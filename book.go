package daybook

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Book is the single controller owning a DayState. All mutations of the day
// state go through its methods; after every successful mutation the state is
// persisted under StateKey and the subscribed listeners are notified.
//
// A Book is not safe for concurrent use: the tool is single-user and every
// operation runs to completion before the next one starts.
type Book struct {
	state *DayState
	store Store

	listeners []func()

	// test seams, defaulting to the real thing
	now   func() time.Time
	newID func() string
}

// NewBook creates a book over an existing day state and store.
func NewBook(state *DayState, store Store) *Book {
	return &Book{
		state: state,
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Open loads the day state from the store, or starts an empty one in the
// given currency on first run. Corrupted persisted state is reported as a
// *PersistenceError; the caller decides whether to fall back to an empty
// state.
func Open(store Store, currency string) (*Book, error) {
	state, err := LoadState(store, StateKey)
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return NewBook(NewDayState(currency), store), nil
	}
	if err != nil {
		return nil, err
	}
	return NewBook(state, store), nil
}

// State returns the current day state. Callers must treat it as read-only;
// mutations go through the Book operations.
func (b *Book) State() *DayState { return b.state }

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.state.Currency }

// Subscribe registers a listener called after every successful mutation.
// Listeners run synchronously, after the state has been persisted. Failed
// operations never notify.
func (b *Book) Subscribe(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// Summary computes the daily summary from the current placed orders and
// expenses.
func (b *Book) Summary() Summary {
	return Summarize(b.state.Orders, b.state.Expenses, b.state.Currency)
}

// ResetDay clears placed orders and expenses, and the cart too when
// clearCart is set. The menu, including current stock levels, is preserved.
// The emptied state is persisted immediately.
func (b *Book) ResetDay(clearCart bool) error {
	b.state.Orders = make([]Order, 0)
	b.state.Expenses = make([]Expense, 0)
	if clearCart {
		b.state.Cart = make([]OrderLine, 0)
	}
	return b.commit("reset")
}

// SeedSampleMenu replaces the menu with the bundled sample and clears placed
// orders and expenses, giving a known starting point for a demo day.
func (b *Book) SeedSampleMenu() error {
	menu := SampleMenu(b.state.Currency)
	for i := range menu {
		menu[i].ID = b.newID()
	}
	b.state.Menu = menu
	b.state.Orders = make([]Order, 0)
	b.state.Expenses = make([]Expense, 0)
	return b.commit("save")
}

// commit persists the state and notifies listeners. The in-memory state
// keeps the mutation even when the write fails; the caller is told through
// the returned *PersistenceError and decides whether to retry or warn.
func (b *Book) commit(op string) error {
	if err := SaveState(b.store, StateKey, b.state); err != nil {
		var pe *PersistenceError
		if errors.As(err, &pe) {
			return err
		}
		return &PersistenceError{Op: op, Err: err}
	}
	for _, fn := range b.listeners {
		fn()
	}
	return nil
}

package daybook

import (
	"fmt"
	"testing"
	"time"
)

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// newTestBook returns a book over a MemStore with a deterministic clock and
// id sequence (id-1, id-2, ...).
func newTestBook() *Book {
	b := NewBook(NewDayState("USD"), MemStore{})
	var n int
	b.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	b.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return b
}

// mustAddItem adds a menu item or fails the test.
func mustAddItem(t *testing.T, b *Book, name string, price, cost float64, stock *int) MenuItem {
	t.Helper()
	item, err := b.AddItem(name, USD(price), USD(cost), stock)
	if err != nil {
		t.Fatalf("AddItem(%q) failed: %v", name, err)
	}
	return item
}

func stock(n int) *int { return &n }

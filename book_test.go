package daybook

import (
	"errors"
	"testing"
)

func TestOpen(t *testing.T) {
	store := MemStore{}

	// first run starts an empty day
	b, err := Open(store, "USD")
	if err != nil {
		t.Fatalf("Open on empty store: %v", err)
	}
	if b.Currency() != "USD" || len(b.State().Menu) != 0 {
		t.Errorf("first-run state: %+v", b.State())
	}

	// a mutation persists, and a new Open sees it
	if _, err := b.AddExpense("Rent", USD(50)); err != nil {
		t.Fatal(err)
	}
	reopened, err := Open(store, "USD")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if len(reopened.State().Expenses) != 1 || reopened.State().Expenses[0].Description != "Rent" {
		t.Errorf("reopened state lost the expense: %+v", reopened.State())
	}

	// corrupted state surfaces as a persistence error
	store[StateKey] = []byte("{corrupt")
	var pe *PersistenceError
	if _, err := Open(store, "USD"); !errors.As(err, &pe) {
		t.Errorf("Open on corrupt store: %v, want PersistenceError", err)
	}
}

// Listeners run once per successful mutation, after persistence, and never
// on failed operations.
func TestBook_Subscribe(t *testing.T) {
	b := newTestBook()
	var notified int
	b.Subscribe(func() { notified++ })

	item, err := b.AddItem("Fries", USD(3), USD(0.6), nil)
	if err != nil {
		t.Fatal(err)
	}
	if notified != 1 {
		t.Errorf("after AddItem notified = %d, want 1", notified)
	}

	// a failed operation must not notify
	if _, err := b.AddItem("", USD(1), USD(1), nil); err == nil {
		t.Fatal("invalid AddItem succeeded")
	}
	if notified != 1 {
		t.Errorf("failed AddItem notified listeners (%d)", notified)
	}

	if err := b.AddToCart(item.ID, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := b.PlaceOrder(""); err != nil {
		t.Fatal(err)
	}
	if notified != 3 {
		t.Errorf("notified = %d, want 3", notified)
	}

	// several listeners all fire
	var second int
	b.Subscribe(func() { second++ })
	if err := b.ResetDay(false); err != nil {
		t.Fatal(err)
	}
	if notified != 4 || second != 1 {
		t.Errorf("notified = %d/%d, want 4/1", notified, second)
	}
}

func TestBook_ResetDay_cart(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, nil)
	if err := b.AddToCart(fries.ID, 1); err != nil {
		t.Fatal(err)
	}

	// default reset keeps the cart
	if err := b.ResetDay(false); err != nil {
		t.Fatal(err)
	}
	if len(b.State().Cart) != 1 {
		t.Error("ResetDay(false) cleared the cart")
	}

	if err := b.ResetDay(true); err != nil {
		t.Fatal(err)
	}
	if len(b.State().Cart) != 0 {
		t.Error("ResetDay(true) kept the cart")
	}
}

func TestBook_SeedSampleMenu(t *testing.T) {
	b := newTestBook()
	if _, err := b.AddExpense("Rent", USD(50)); err != nil {
		t.Fatal(err)
	}

	if err := b.SeedSampleMenu(); err != nil {
		t.Fatalf("SeedSampleMenu: %v", err)
	}

	menu := b.State().Menu
	if len(menu) != 3 {
		t.Fatalf("sample menu has %d items, want 3", len(menu))
	}
	burger := b.State().ItemByName("Chicken Burger")
	if burger == nil || !burger.Price.Equal(USD(7.5)) || !burger.Cost.Equal(USD(3)) || *burger.Stock != 50 {
		t.Errorf("sample burger = %+v", burger)
	}
	for _, it := range menu {
		if it.ID == "" {
			t.Errorf("sample item %q has no id", it.Name)
		}
	}
	if len(b.State().Expenses) != 0 {
		t.Error("seeding kept old expenses")
	}
}

func TestBook_persistenceErrorKeepsTyped(t *testing.T) {
	b := NewBook(NewDayState("USD"), failingStore{MemStore{}})
	_, err := b.AddExpense("Rent", USD(50))
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Errorf("mutation on failing store: %v, want PersistenceError", err)
	}
}

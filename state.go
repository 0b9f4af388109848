package daybook

import (
	"time"
)

// MenuItem is a sellable item of the catalog.
//
// Price and Cost are in the day state's currency. Stock is nil when the item
// has no stock tracking. cost > price is deliberately allowed (loss leaders).
type MenuItem struct {
	ID    string
	Name  string
	Price Money
	Cost  Money
	Stock *int
}

// Tracked reports whether the item has stock tracking enabled.
func (it MenuItem) Tracked() bool { return it.Stock != nil }

// OrderLine is one cart or order line. UnitPrice and UnitCost are snapshots
// taken when the line entered the cart, so later menu edits never alter it.
// Name is snapshotted too: the line stays meaningful after the item is
// deleted from the menu.
type OrderLine struct {
	MenuItemID string
	Name       string
	Quantity   int
	UnitPrice  Money
	UnitCost   Money
}

// Revenue returns UnitPrice × Quantity for this line.
func (l OrderLine) Revenue() Money { return l.UnitPrice.Mul(l.Quantity) }

// COGS returns UnitCost × Quantity for this line.
func (l OrderLine) COGS() Money { return l.UnitCost.Mul(l.Quantity) }

// Order is a placed order. Immutable once placed, except for deletion
// through VoidOrder.
type Order struct {
	ID        string
	Timestamp time.Time
	Note      string
	Lines     []OrderLine
}

// Revenue returns the order subtotal.
func (o Order) Revenue() Money {
	var total Money
	for _, l := range o.Lines {
		total = total.Add(l.Revenue())
	}
	return total
}

// COGS returns the order's total cost of goods sold.
func (o Order) COGS() Money {
	var total Money
	for _, l := range o.Lines {
		total = total.Add(l.COGS())
	}
	return total
}

// Expense is an ad-hoc daily expense entry.
type Expense struct {
	ID          string
	Description string
	Amount      Money
	Timestamp   time.Time
}

// DayState is the root object holding one day of bookkeeping. It is the
// single source of truth, mutated only through the operations on Book, and
// persisted as a whole after every mutation.
//
// Orders are kept newest first.
type DayState struct {
	Currency string
	Menu     []MenuItem
	Cart     []OrderLine
	Orders   []Order
	Expenses []Expense
}

// NewDayState creates an empty day state in the given currency.
func NewDayState(currency string) *DayState {
	return &DayState{
		Currency: currency,
		Menu:     make([]MenuItem, 0),
		Cart:     make([]OrderLine, 0),
		Orders:   make([]Order, 0),
		Expenses: make([]Expense, 0),
	}
}

// Item returns the menu item with this id, or nil if unknown.
func (s *DayState) Item(id string) *MenuItem {
	for i := range s.Menu {
		if s.Menu[i].ID == id {
			return &s.Menu[i]
		}
	}
	return nil
}

// ItemByName returns the menu item with this exact name, or nil if unknown.
func (s *DayState) ItemByName(name string) *MenuItem {
	for i := range s.Menu {
		if s.Menu[i].Name == name {
			return &s.Menu[i]
		}
	}
	return nil
}

// Expense returns the expense with this id, or nil if unknown.
func (s *DayState) Expense(id string) *Expense {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			return &s.Expenses[i]
		}
	}
	return nil
}

// Order returns the placed order with this id, or nil if unknown.
func (s *DayState) Order(id string) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

package daybook

import (
	"errors"
	"testing"
)

func TestBook_AddToCart(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, nil)

	if err := b.AddToCart(fries.ID, 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	cart := b.State().Cart
	if len(cart) != 1 || cart[0].Quantity != 2 || !cart[0].UnitPrice.Equal(USD(3)) || !cart[0].UnitCost.Equal(USD(0.6)) {
		t.Fatalf("cart = %+v", cart)
	}

	// same item merges into the existing line
	if err := b.AddToCart(fries.ID, 1); err != nil {
		t.Fatalf("AddToCart again: %v", err)
	}
	cart = b.State().Cart
	if len(cart) != 1 || cart[0].Quantity != 3 {
		t.Fatalf("cart after merge = %+v", cart)
	}

	var nf *NotFoundError
	if err := b.AddToCart("missing", 1); !errors.As(err, &nf) {
		t.Errorf("AddToCart(missing): %v, want NotFoundError", err)
	}
	var ve *ValidationError
	if err := b.AddToCart(fries.ID, 0); !errors.As(err, &ve) {
		t.Errorf("AddToCart(qty 0): %v, want ValidationError", err)
	}
}

// For all sequences of cart operations the cart never holds a line with
// quantity below 1.
func TestBook_cartQuantityInvariant(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, nil)
	coke := mustAddItem(t, b, "Coke", 1.5, 0.2, nil)

	ops := []func() error{
		func() error { return b.AddToCart(fries.ID, 2) },
		func() error { return b.AddToCart(coke.ID, 1) },
		func() error { return b.UpdateQuantity(0, 5) },
		func() error { return b.UpdateQuantity(1, 0) },  // rejected
		func() error { return b.UpdateQuantity(1, -3) }, // rejected
		func() error { return b.RemoveFromCart(0) },
		func() error { return b.UpdateQuantity(0, 1) },
		func() error { return b.AddToCart(fries.ID, 4) },
		func() error { return b.RemoveFromCart(7) }, // rejected
	}
	for i, op := range ops {
		_ = op() // some of these fail on purpose
		for _, line := range b.State().Cart {
			if line.Quantity < 1 {
				t.Fatalf("after op %d, cart line %+v has quantity < 1", i, line)
			}
		}
	}

	var ve *ValidationError
	if err := b.UpdateQuantity(0, 0); !errors.As(err, &ve) {
		t.Errorf("UpdateQuantity(0): %v, want ValidationError", err)
	}
	var nf *NotFoundError
	if err := b.UpdateQuantity(99, 2); !errors.As(err, &nf) {
		t.Errorf("UpdateQuantity(bad index): %v, want NotFoundError", err)
	}
	if err := b.RemoveFromCart(-1); !errors.As(err, &nf) {
		t.Errorf("RemoveFromCart(-1): %v, want NotFoundError", err)
	}
}

// Editing or deleting a menu item never changes a snapshotted line.
func TestBook_snapshotIsolation(t *testing.T) {
	b := newTestBook()
	burger := mustAddItem(t, b, "Burger", 7.50, 3, nil)

	if err := b.AddToCart(burger.ID, 1); err != nil {
		t.Fatal(err)
	}
	// raise the price after the line entered the cart
	price := USD(9.99)
	if err := b.UpdateItem(burger.ID, ItemPatch{Price: &price}); err != nil {
		t.Fatal(err)
	}
	order, err := b.PlaceOrder("")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if !order.Lines[0].UnitPrice.Equal(USD(7.50)) {
		t.Errorf("order line price = %v, want the 7.50 snapshot", order.Lines[0].UnitPrice)
	}

	// deleting the item leaves the placed order intact
	if err := b.RemoveItem(burger.ID); err != nil {
		t.Fatal(err)
	}
	got := b.State().Order(order.ID)
	if got == nil || !got.Lines[0].UnitPrice.Equal(USD(7.50)) || got.Lines[0].Name != "Burger" {
		t.Errorf("order after menu deletion: %+v", got)
	}
	s := b.Summary()
	if !s.Revenue.Equal(USD(7.50)) {
		t.Errorf("revenue after menu deletion = %v, want 7.50", s.Revenue)
	}
}

// The worked example: Item A (10.00, 4.00, stock 5), 3 in the cart.
func TestBook_PlaceOrder(t *testing.T) {
	b := newTestBook()
	a := mustAddItem(t, b, "Item A", 10, 4, stock(5))
	if err := b.AddToCart(a.ID, 3); err != nil {
		t.Fatal(err)
	}

	order, err := b.PlaceOrder("table 4")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if len(b.State().Orders) != 1 {
		t.Fatalf("placedOrders has %d orders, want 1", len(b.State().Orders))
	}
	if len(order.Lines) != 1 {
		t.Fatalf("order has %d lines, want 1", len(order.Lines))
	}
	line := order.Lines[0]
	if line.Quantity != 3 || !line.UnitPrice.Equal(USD(10)) || !line.UnitCost.Equal(USD(4)) {
		t.Errorf("line = %+v", line)
	}
	if order.Note != "table 4" {
		t.Errorf("note = %q", order.Note)
	}
	if got := *b.State().Item(a.ID).Stock; got != 2 {
		t.Errorf("stock = %d, want 2", got)
	}
	if len(b.State().Cart) != 0 {
		t.Error("cart not emptied by placement")
	}

	s := b.Summary()
	if !s.Revenue.Equal(USD(30)) || !s.COGS.Equal(USD(12)) || !s.GrossProfit.Equal(USD(18)) {
		t.Errorf("summary = %+v", s)
	}
}

func TestBook_PlaceOrder_empty(t *testing.T) {
	b := newTestBook()
	var ee *EmptyOrderError
	if _, err := b.PlaceOrder(""); !errors.As(err, &ee) {
		t.Errorf("PlaceOrder on empty cart: %v, want EmptyOrderError", err)
	}
}

// Placement is all or nothing: an insufficient line leaves placed orders,
// stock levels and the cart unchanged.
func TestBook_PlaceOrder_atomic(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, stock(100))
	coke := mustAddItem(t, b, "Coke", 1.5, 0.2, stock(2))

	if err := b.AddToCart(fries.ID, 10); err != nil {
		t.Fatal(err)
	}
	if err := b.AddToCart(coke.ID, 3); err != nil { // exceeds coke stock
		t.Fatal(err)
	}

	_, err := b.PlaceOrder("")
	var ise *InsufficientStockError
	if !errors.As(err, &ise) {
		t.Fatalf("PlaceOrder: %v, want InsufficientStockError", err)
	}
	if ise.Item != "Coke" || ise.Want != 3 || ise.Have != 2 {
		t.Errorf("error detail = %+v", ise)
	}

	// nothing moved
	if got := *b.State().Item(fries.ID).Stock; got != 100 {
		t.Errorf("fries stock = %d, want 100 (no partial decrement)", got)
	}
	if got := *b.State().Item(coke.ID).Stock; got != 2 {
		t.Errorf("coke stock = %d, want 2", got)
	}
	if len(b.State().Orders) != 0 {
		t.Error("failed placement appended an order")
	}
	if len(b.State().Cart) != 2 {
		t.Error("failed placement touched the cart")
	}
}

// A line whose item left the menu places from its snapshots.
func TestBook_PlaceOrder_deletedItem(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, stock(100))
	if err := b.AddToCart(fries.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveItem(fries.ID); err != nil {
		t.Fatal(err)
	}
	order, err := b.PlaceOrder("")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if !order.Revenue().Equal(USD(6)) {
		t.Errorf("order revenue = %v, want 6.00", order.Revenue())
	}
}

func TestBook_ordersNewestFirst(t *testing.T) {
	b := newTestBook()
	fries := mustAddItem(t, b, "Fries", 3, 0.6, nil)

	var ids []string
	for i := 0; i < 3; i++ {
		if err := b.AddToCart(fries.ID, 1); err != nil {
			t.Fatal(err)
		}
		o, err := b.PlaceOrder("")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, o.ID)
	}
	orders := b.State().Orders
	for i := range orders {
		if orders[i].ID != ids[len(ids)-1-i] {
			t.Fatalf("orders not newest first: %v", orders)
		}
	}
}

func TestBook_VoidOrder(t *testing.T) {
	b := newTestBook()
	burger := mustAddItem(t, b, "Burger", 7.5, 3, stock(10))
	if err := b.AddToCart(burger.ID, 2); err != nil {
		t.Fatal(err)
	}
	order, err := b.PlaceOrder("")
	if err != nil {
		t.Fatal(err)
	}

	if err := b.VoidOrder(order.ID); err != nil {
		t.Fatalf("VoidOrder: %v", err)
	}
	if len(b.State().Orders) != 0 {
		t.Error("order still in ledger after void")
	}
	// stock is not restored
	if got := *b.State().Item(burger.ID).Stock; got != 8 {
		t.Errorf("stock after void = %d, want 8 (not restored)", got)
	}

	var nf *NotFoundError
	if err := b.VoidOrder(order.ID); !errors.As(err, &nf) {
		t.Errorf("VoidOrder twice: %v, want NotFoundError", err)
	}
}

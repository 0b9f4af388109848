package daybook

import "strconv"

// Cart and order-ledger operations.

// AddToCart puts qty of a menu item into the cart, snapshotting the item's
// current price and cost into the new line. When the item already has a cart
// line, its quantity is incremented and the original snapshot is kept.
func (b *Book) AddToCart(menuItemID string, qty int) error {
	if qty < 1 {
		return validationf("quantity must be at least 1, got %d", qty)
	}
	item := b.state.Item(menuItemID)
	if item == nil {
		return &NotFoundError{Kind: "menu item", ID: menuItemID}
	}
	for i := range b.state.Cart {
		if b.state.Cart[i].MenuItemID == menuItemID {
			b.state.Cart[i].Quantity += qty
			return b.commit("save")
		}
	}
	b.state.Cart = append(b.state.Cart, OrderLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Quantity:   qty,
		UnitPrice:  item.Price,
		UnitCost:   item.Cost,
	})
	return b.commit("save")
}

// UpdateQuantity sets the quantity of the cart line at lineIndex.
// Quantities below 1 are rejected; use RemoveFromCart instead.
func (b *Book) UpdateQuantity(lineIndex, qty int) error {
	if lineIndex < 0 || lineIndex >= len(b.state.Cart) {
		return &NotFoundError{Kind: "cart line", ID: itoa(lineIndex)}
	}
	if qty < 1 {
		return validationf("cannot set quantity below 1; remove the line instead")
	}
	b.state.Cart[lineIndex].Quantity = qty
	return b.commit("save")
}

// RemoveFromCart deletes the cart line at lineIndex.
func (b *Book) RemoveFromCart(lineIndex int) error {
	if lineIndex < 0 || lineIndex >= len(b.state.Cart) {
		return &NotFoundError{Kind: "cart line", ID: itoa(lineIndex)}
	}
	b.state.Cart = append(b.state.Cart[:lineIndex], b.state.Cart[lineIndex+1:]...)
	return b.commit("save")
}

// ClearCart empties the cart.
func (b *Book) ClearCart() error {
	b.state.Cart = make([]OrderLine, 0)
	return b.commit("save")
}

// PlaceOrder turns the current cart into a placed order with a fresh id and
// the current timestamp, prepends it to the order list (newest first) and
// empties the cart.
//
// Placement is all or nothing over stock: every line against an item with
// tracked stock is verified first, and only then are the decrements applied.
// When any line exceeds the remaining stock the placement fails with
// *InsufficientStockError, leaving stock, cart and placed orders untouched.
// Lines whose item was deleted from the menu place normally from their
// snapshots, with no stock involved.
func (b *Book) PlaceOrder(note string) (Order, error) {
	if len(b.state.Cart) == 0 {
		return Order{}, &EmptyOrderError{}
	}

	// phase 1: verify. Quantities are aggregated per item in case the cart
	// holds several lines for the same one.
	needed := make(map[string]int)
	for _, line := range b.state.Cart {
		item := b.state.Item(line.MenuItemID)
		if item == nil || !item.Tracked() {
			continue
		}
		needed[item.ID] += line.Quantity
		if needed[item.ID] > *item.Stock {
			return Order{}, &InsufficientStockError{Item: item.Name, Want: needed[item.ID], Have: *item.Stock}
		}
	}

	// phase 2: apply.
	for id, qty := range needed {
		*b.state.Item(id).Stock -= qty
	}

	order := Order{
		ID:        b.newID(),
		Timestamp: b.now(),
		Note:      note,
		Lines:     b.state.Cart,
	}
	b.state.Orders = append([]Order{order}, b.state.Orders...)
	b.state.Cart = make([]OrderLine, 0)
	if err := b.commit("save"); err != nil {
		return Order{}, err
	}
	return order, nil
}

// VoidOrder removes a placed order (refund/void). Decremented stock is not
// restored: the goods usually left the kitchen, and restoring would misstate
// the day's cost of goods sold.
func (b *Book) VoidOrder(orderID string) error {
	for i := range b.state.Orders {
		if b.state.Orders[i].ID == orderID {
			b.state.Orders = append(b.state.Orders[:i], b.state.Orders[i+1:]...)
			return b.commit("save")
		}
	}
	return &NotFoundError{Kind: "order", ID: orderID}
}

func itoa(i int) string { return strconv.Itoa(i) }

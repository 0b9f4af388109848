package daybook

// Menu operations. The catalog is part of the day state; past orders keep
// their own price/cost snapshots, so none of these operations can alter an
// already placed order.

// ItemPatch carries the fields of UpdateItem. Nil fields are left unchanged.
type ItemPatch struct {
	Name       *string
	Price      *Money
	Cost       *Money
	Stock      *int
	ClearStock bool // drop stock tracking altogether
}

// AddItem creates a new menu item and returns it.
// stock may be nil for items without stock tracking.
func (b *Book) AddItem(name string, price, cost Money, stock *int) (MenuItem, error) {
	if err := checkItemFields(name, price, cost, stock); err != nil {
		return MenuItem{}, err
	}
	item := MenuItem{
		ID:    b.newID(),
		Name:  name,
		Price: M(price.value, b.state.Currency),
		Cost:  M(cost.value, b.state.Currency),
	}
	if stock != nil {
		v := *stock
		item.Stock = &v
	}
	b.state.Menu = append(b.state.Menu, item)
	if err := b.commit("save"); err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

// UpdateItem mutates the matching item in place.
func (b *Book) UpdateItem(id string, patch ItemPatch) error {
	item := b.state.Item(id)
	if item == nil {
		return &NotFoundError{Kind: "menu item", ID: id}
	}

	name := item.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	price := item.Price
	if patch.Price != nil {
		price = M(patch.Price.value, b.state.Currency)
	}
	cost := item.Cost
	if patch.Cost != nil {
		cost = M(patch.Cost.value, b.state.Currency)
	}
	stock := item.Stock
	if patch.ClearStock {
		stock = nil
	} else if patch.Stock != nil {
		v := *patch.Stock
		stock = &v
	}
	if err := checkItemFields(name, price, cost, stock); err != nil {
		return err
	}

	item.Name, item.Price, item.Cost, item.Stock = name, price, cost, stock
	return b.commit("save")
}

// RemoveItem deletes an item from the menu. It does not cascade into the
// cart or past orders: their lines retain the snapshotted values.
func (b *Book) RemoveItem(id string) error {
	for i := range b.state.Menu {
		if b.state.Menu[i].ID == id {
			b.state.Menu = append(b.state.Menu[:i], b.state.Menu[i+1:]...)
			return b.commit("save")
		}
	}
	return &NotFoundError{Kind: "menu item", ID: id}
}

// DecrementStock reduces the tracked stock of an item by qty and persists.
// Items without stock tracking are left untouched. Fails with
// *InsufficientStockError when qty exceeds the remaining stock.
func (b *Book) DecrementStock(id string, qty int) error {
	item := b.state.Item(id)
	if item == nil {
		return &NotFoundError{Kind: "menu item", ID: id}
	}
	if qty <= 0 {
		return validationf("stock decrement must be positive, got %d", qty)
	}
	if !item.Tracked() {
		return nil
	}
	if qty > *item.Stock {
		return &InsufficientStockError{Item: item.Name, Want: qty, Have: *item.Stock}
	}
	*item.Stock -= qty
	return b.commit("save")
}

func checkItemFields(name string, price, cost Money, stock *int) error {
	if name == "" {
		return validationf("menu item name cannot be empty")
	}
	if price.IsNegative() {
		return validationf("price cannot be negative, got %s", price)
	}
	if cost.IsNegative() {
		return validationf("cost cannot be negative, got %s", cost)
	}
	if stock != nil && *stock < 0 {
		return validationf("stock cannot be negative, got %d", *stock)
	}
	return nil
}

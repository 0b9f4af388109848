package daybook

// SampleMenu returns the bundled starter menu, without ids. Book.SeedSampleMenu
// assigns fresh ids when installing it.
func SampleMenu(currency string) []MenuItem {
	stock := func(n int) *int { return &n }
	return []MenuItem{
		{Name: "Chicken Burger", Price: M(7.50, currency), Cost: M(3.00, currency), Stock: stock(50)},
		{Name: "Fries", Price: M(3.00, currency), Cost: M(0.60, currency), Stock: stock(200)},
		{Name: "Coke", Price: M(1.50, currency), Cost: M(0.20, currency), Stock: stock(100)},
	}
}

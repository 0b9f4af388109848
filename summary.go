package daybook

// Summary provides the at-a-glance profit figures for the day, derived from
// the placed orders and expenses. All amounts are in the day's currency.
type Summary struct {
	Currency     string
	OrderCount   int
	Revenue      Money
	COGS         Money
	GrossProfit  Money
	ExpenseTotal Money
	NetProfit    Money
}

// Summarize computes the daily summary. It is a pure function of the placed
// orders and expenses: it has no side effects and unchanged inputs always
// yield identical results. The cart never contributes.
//
// Revenue is the sum of unitPrice×quantity over all order lines, COGS the
// same over unitCost, GrossProfit = Revenue − COGS,
// NetProfit = GrossProfit − ExpenseTotal. Every figure is rounded to the
// currency's minor unit with bankers' rounding.
func Summarize(orders []Order, expenses []Expense, currency string) Summary {
	zero := M(0, currency)
	s := Summary{
		Currency:   currency,
		OrderCount: len(orders),
		Revenue:    zero,
		COGS:       zero,
	}
	for _, o := range orders {
		s.Revenue = s.Revenue.Add(o.Revenue())
		s.COGS = s.COGS.Add(o.COGS())
	}
	s.ExpenseTotal = zero
	for _, e := range expenses {
		s.ExpenseTotal = s.ExpenseTotal.Add(e.Amount)
	}
	s.Revenue = s.Revenue.Round()
	s.COGS = s.COGS.Round()
	s.ExpenseTotal = s.ExpenseTotal.Round()
	s.GrossProfit = s.Revenue.Sub(s.COGS)
	s.NetProfit = s.GrossProfit.Sub(s.ExpenseTotal)
	return s
}

// CartTotal returns the pending value of cart lines at their snapshotted
// unit prices. It is display-only and never part of the day's revenue.
func CartTotal(lines []OrderLine, currency string) Money {
	total := M(0, currency)
	for _, l := range lines {
		total = total.Add(l.Revenue())
	}
	return total
}

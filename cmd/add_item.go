package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
)

type addItemCmd struct {
	name  string
	price string
	cost  string
	stock int
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a new item to the menu" }
func (*addItemCmd) Usage() string {
	return `add-item -name <name> -price <amount> -cost <amount> [-stock <n>]

  Adds a new sellable item to the menu:
  - name: The item name shown on orders (e.g., "Fries"). Required.
  - price: The sale price in the book currency (e.g., "3.00"). Required.
  - cost: The unit cost of goods (e.g., "0.60"). Required.
  - stock: Initial stock count. Omit for items without stock tracking.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.StringVar(&c.price, "price", "", "Sale price (required)")
	f.StringVar(&c.cost, "cost", "", "Unit cost (required)")
	f.IntVar(&c.stock, "stock", -1, "Initial stock count, omit to disable stock tracking")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" || c.cost == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -price and -cost flags are required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	price, err := daybook.ParseMoney(c.price, book.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	cost, err := daybook.ParseMoney(c.cost, book.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var stock *int
	if c.stock >= 0 {
		stock = &c.stock
	}

	item, err := book.AddItem(c.name, price, cost, stock)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added menu item %q (%s)\n", item.Name, item.ID)
	return subcommands.ExitSuccess
}

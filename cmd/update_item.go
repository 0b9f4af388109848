package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
)

type updateItemCmd struct {
	id         string
	name       string
	price      string
	cost       string
	stock      int
	clearStock bool
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "edit an existing menu item" }
func (*updateItemCmd) Usage() string {
	return `update-item -id <id> [-name <name>] [-price <amount>] [-cost <amount>] [-stock <n> | -no-stock]

  Edits the menu item in place. Only the given flags change; past orders are
  never affected, they keep the prices and costs recorded when they were
  placed.
`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Menu item id (required)")
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.price, "price", "", "New sale price")
	f.StringVar(&c.cost, "cost", "", "New unit cost")
	f.IntVar(&c.stock, "stock", -1, "New stock count")
	f.BoolVar(&c.clearStock, "no-stock", false, "Disable stock tracking for this item")
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var patch daybook.ItemPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.price != "" {
		price, err := daybook.ParseMoney(c.price, book.Currency())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Price = &price
	}
	if c.cost != "" {
		cost, err := daybook.ParseMoney(c.cost, book.Currency())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Cost = &cost
	}
	if c.stock >= 0 {
		patch.Stock = &c.stock
	}
	patch.ClearStock = c.clearStock

	if err := book.UpdateItem(c.id, patch); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated menu item %s\n", c.id)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

type ordersCmd struct {
	head int
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the placed orders, newest first" }
func (*ordersCmd) Usage() string {
	return `orders [-head <n>]

  Lists the day's placed orders with their lines and totals, newest first.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N orders.")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	orders := book.State().Orders
	if c.head > 0 && c.head < len(orders) {
		orders = orders[:c.head]
	}

	printMarkdown(renderer.OrdersMarkdown(orders))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type placeCmd struct {
	note string
}

func (*placeCmd) Name() string     { return "place" }
func (*placeCmd) Synopsis() string { return "place the current cart as an order" }
func (*placeCmd) Usage() string {
	return `place [-note <text>]

  Turns the cart into a placed order and empties the cart. Stock of tracked
  items is decremented; when any line exceeds the remaining stock the whole
  placement fails and nothing changes.
`
}

func (c *placeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "", "Optional note recorded on the order")
}

func (c *placeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	order, err := book.PlaceOrder(c.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Placed order %s (%d lines, %s)\n", order.ID, len(order.Lines), order.Revenue())
	return subcommands.ExitSuccess
}

type voidCmd struct {
	id string
}

func (*voidCmd) Name() string     { return "void" }
func (*voidCmd) Synopsis() string { return "void (refund) a placed order" }
func (*voidCmd) Usage() string {
	return `void -id <order-id>

  Removes a placed order from the ledger. Stock decremented at placement is
  not restored.
`
}

func (c *voidCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Order id (required)")
}

func (c *voidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.VoidOrder(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Voided order %s\n", c.id)
	return subcommands.ExitSuccess
}

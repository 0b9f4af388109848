package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
)

type cartAddCmd struct {
	item string
	qty  int
}

func (*cartAddCmd) Name() string     { return "cart-add" }
func (*cartAddCmd) Synopsis() string { return "add a menu item to the cart" }
func (*cartAddCmd) Usage() string {
	return `cart-add -item <id|name> [-q <quantity>]

  Puts a menu item into the cart, snapshotting its current price and cost so
  later menu edits never change this order. The item is matched by id first,
  then by exact name.
`
}

func (c *cartAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Menu item id or exact name (required)")
	f.IntVar(&c.qty, "q", 1, "Quantity to add")
}

func (c *cartAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		fmt.Fprintln(os.Stderr, "Error: -item flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	id := resolveItem(book, c.item)
	if err := book.AddToCart(id, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d x %s to the cart\n", c.qty, c.item)
	return subcommands.ExitSuccess
}

// resolveItem turns a user reference (id or exact name) into a menu item id.
// Unknown references are passed through so the operation reports the
// not-found error itself.
func resolveItem(book *daybook.Book, ref string) string {
	if book.State().Item(ref) != nil {
		return ref
	}
	if it := book.State().ItemByName(ref); it != nil {
		return it.ID
	}
	return ref
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

// cart subcommands that operate on line indexes as shown by "dbk cart".

type cartCmd struct{}

func (*cartCmd) Name() string     { return "cart" }
func (*cartCmd) Synopsis() string { return "show the pending cart" }
func (*cartCmd) Usage() string {
	return `cart

  Shows the cart lines with their index, snapshotted prices and the running
  total. The cart is never part of the daily summary until placed.
`
}

func (c *cartCmd) SetFlags(f *flag.FlagSet) {}

func (c *cartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CartMarkdown(book.State().Cart, book.Currency()))
	return subcommands.ExitSuccess
}

type cartQtyCmd struct {
	line int
	qty  int
}

func (*cartQtyCmd) Name() string     { return "cart-qty" }
func (*cartQtyCmd) Synopsis() string { return "change the quantity of a cart line" }
func (*cartQtyCmd) Usage() string {
	return `cart-qty -line <index> -q <quantity>

  Sets the quantity of a cart line. Quantities below 1 are rejected; use
  cart-rm to drop the line.
`
}

func (c *cartQtyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.line, "line", -1, "Cart line index (required)")
	f.IntVar(&c.qty, "q", 0, "New quantity (required)")
}

func (c *cartQtyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.line < 0 {
		fmt.Fprintln(os.Stderr, "Error: -line flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.UpdateQuantity(c.line, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cart line %d set to quantity %d\n", c.line, c.qty)
	return subcommands.ExitSuccess
}

type cartRmCmd struct {
	line int
}

func (*cartRmCmd) Name() string     { return "cart-rm" }
func (*cartRmCmd) Synopsis() string { return "remove a line from the cart" }
func (*cartRmCmd) Usage() string {
	return `cart-rm -line <index>

  Removes one line from the cart.
`
}

func (c *cartRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.line, "line", -1, "Cart line index (required)")
}

func (c *cartRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.line < 0 {
		fmt.Fprintln(os.Stderr, "Error: -line flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveFromCart(c.line); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed cart line %d\n", c.line)
	return subcommands.ExitSuccess
}

type cartClearCmd struct{}

func (*cartClearCmd) Name() string     { return "cart-clear" }
func (*cartClearCmd) Synopsis() string { return "empty the cart" }
func (*cartClearCmd) Usage() string {
	return `cart-clear

  Empties the cart without placing an order.
`
}

func (c *cartClearCmd) SetFlags(f *flag.FlagSet) {}

func (c *cartClearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.ClearCart(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Cart cleared")
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeItemCmd struct {
	id string
}

func (*removeItemCmd) Name() string     { return "remove-item" }
func (*removeItemCmd) Synopsis() string { return "delete an item from the menu" }
func (*removeItemCmd) Usage() string {
	return `remove-item -id <id>

  Deletes the item from the menu. Cart lines and placed orders keep the
  snapshotted prices, so history is unaffected.
`
}

func (c *removeItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Menu item id (required)")
}

func (c *removeItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveItem(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed menu item %s\n", c.id)
	return subcommands.ExitSuccess
}

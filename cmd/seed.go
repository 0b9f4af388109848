package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "replace the menu with the bundled sample" }
func (*seedCmd) Usage() string {
	return `seed

  Installs the sample menu (burger, fries, coke) and clears placed orders and
  expenses, giving a known starting point to try the tool.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.SeedSampleMenu(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Seeded sample menu with %d items\n", len(book.State().Menu))
	return subcommands.ExitSuccess
}

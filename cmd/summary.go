package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the daily profit summary" }
func (*summaryCmd) Usage() string {
	return `summary

  Shows revenue, cost of goods sold, gross profit, expenses and net profit
  computed from the day's placed orders and expenses. The pending cart is
  never counted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	s := book.Summary()
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}

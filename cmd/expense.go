package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/daybook"
	"github.com/etnz/daybook/renderer"
	"github.com/google/subcommands"
)

type expenseAddCmd struct {
	desc   string
	amount string
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record a daily expense" }
func (*expenseAddCmd) Usage() string {
	return `expense-add -desc <text> -amount <amount>

  Records an ad-hoc expense for the day (e.g., rent, gas refill). Expenses
  reduce net profit but not gross profit.
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "Expense description (required)")
	f.StringVar(&c.amount, "amount", "", "Expense amount (required)")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.desc == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -desc and -amount flags are required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	amount, err := daybook.ParseMoney(c.amount, book.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	exp, err := book.AddExpense(c.desc, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded expense %q (%s)\n", exp.Description, exp.ID)
	return subcommands.ExitSuccess
}

type expenseRmCmd struct {
	id string
}

func (*expenseRmCmd) Name() string     { return "expense-rm" }
func (*expenseRmCmd) Synopsis() string { return "remove a recorded expense" }
func (*expenseRmCmd) Usage() string {
	return `expense-rm -id <expense-id>

  Removes an expense from the day.
`
}

func (c *expenseRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Expense id (required)")
}

func (c *expenseRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveExpense(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed expense %s\n", c.id)
	return subcommands.ExitSuccess
}

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list the day's expenses" }
func (*expensesCmd) Usage() string {
	return `expenses

  Lists the recorded expenses with their ids.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ExpensesMarkdown(book.State().Expenses))
	return subcommands.ExitSuccess
}

package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/daybook"
	md "github.com/nao1215/markdown"
)

// OrdersMarkdown renders the placed orders, newest first, one section per
// order with its lines and subtotal.
func OrdersMarkdown(orders []daybook.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Orders")
	if len(orders) == 0 {
		doc.PlainText("No orders placed yet.")
		return doc.String()
	}

	for _, o := range orders {
		doc.H2(fmt.Sprintf("%s %s", o.Timestamp.Format("15:04:05"), o.ID))
		if o.Note != "" {
			doc.PlainText(o.Note)
		}
		rows := make([][]string, 0, len(o.Lines))
		for _, l := range o.Lines {
			rows = append(rows, []string{
				l.Name,
				strconv.Itoa(l.Quantity),
				l.UnitPrice.String(),
				l.Revenue().String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Item", "Qty", "Unit Price", "Subtotal"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Order total: %s", o.Revenue()))
	}

	return doc.String()
}

// ExpensesMarkdown renders the expense list.
func ExpensesMarkdown(expenses []daybook.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{e.ID, e.Description, e.Amount.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Description", "Amount"},
		Rows:   rows,
	})

	return doc.String()
}

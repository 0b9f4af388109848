// Package renderer renders daybook reports to markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/daybook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the daily summary report.
func SummaryMarkdown(s *daybook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Summary")
	doc.PlainText(fmt.Sprintf("Placed orders: %d", s.OrderCount))

	table := md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Revenue", s.Revenue.String()},
			{"COGS", s.COGS.String()},
			{"Gross Profit", s.GrossProfit.String()},
			{"Expenses", s.ExpenseTotal.String()},
			{"Net Profit", s.NetProfit.String()},
		},
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/daybook"
	md "github.com/nao1215/markdown"
)

// MenuMarkdown renders the menu catalog.
func MenuMarkdown(items []daybook.MenuItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Menu")
	if len(items) == 0 {
		doc.PlainText("No menu items. Add some, or seed the sample menu.")
		return doc.String()
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		stock := "-"
		if it.Tracked() {
			stock = strconv.Itoa(*it.Stock)
		}
		rows = append(rows, []string{it.ID, it.Name, it.Price.String(), it.Cost.String(), stock})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Price", "Cost", "Stock"},
		Rows:   rows,
	})

	return doc.String()
}

// CartMarkdown renders the pending cart with its running total.
func CartMarkdown(lines []daybook.OrderLine, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cart")
	if len(lines) == 0 {
		doc.PlainText("The cart is empty.")
		return doc.String()
	}

	rows := make([][]string, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, []string{
			strconv.Itoa(i),
			l.Name,
			strconv.Itoa(l.Quantity),
			l.UnitPrice.String(),
			l.Revenue().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Item", "Qty", "Unit Price", "Subtotal"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total: %s", daybook.CartTotal(lines, currency)))

	return doc.String()
}

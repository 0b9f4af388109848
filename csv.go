package daybook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// this file contains the CSV export of the order ledger.
// The output is deterministic: a fixed header, one row per order line in
// ledger order, currency amounts with the currency's number of decimals,
// newline terminated.

var csvHeader = []string{"orderId", "timestamp", "item", "quantity", "unitPrice", "unitCost", "lineRevenue", "lineCogs"}

// ExportOrdersCSV writes the placed orders to 'w' as a CSV table, one row
// per order line. Pure function of its input: it has no side effects on the
// orders.
func ExportOrdersCSV(w io.Writer, orders []Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, o := range orders {
		ts := o.Timestamp.Format(time.RFC3339)
		for _, l := range o.Lines {
			row := []string{
				o.ID,
				ts,
				l.Name,
				strconv.Itoa(l.Quantity),
				l.UnitPrice.StringFixed(),
				l.UnitCost.StringFixed(),
				l.Revenue().StringFixed(),
				l.COGS().StringFixed(),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("cannot write CSV row for order %q: %w", o.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

package daybook

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StateVersion is the schema version written in the persisted envelope.
// Decoding accepts the current version and, for the pre-versioning format,
// an absent version field. Higher versions are rejected so an old binary
// never silently misreads a newer state.
const StateVersion = 1

// EncodeState writes the day state as a single JSON document with a stable
// field order, so that encoding the same state always produces the same
// bytes. The document is newline terminated.
func EncodeState(w io.Writer, s *DayState) error {
	var jw jsonObjectWriter
	jw.Append("version", StateVersion)
	jw.Append("currency", s.Currency)
	jw.Append("menu", nonNil(s.Menu))
	jw.Append("cart", nonNil(s.Cart))
	jw.Append("orders", nonNil(s.Orders))
	jw.Append("expenses", nonNil(s.Expenses))
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal day state: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write day state: %w", err)
	}
	return nil
}

// nonNil keeps empty lists as [] rather than null in the persisted form.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface for MenuItem.
func (it MenuItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("name", it.Name)
	w.Append("price", it.Price.value)
	w.Append("cost", it.Cost.value)
	if it.Stock != nil {
		// zero stock is meaningful, Optional would drop it
		w.Append("stock", *it.Stock)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for OrderLine.
func (l OrderLine) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("item", l.MenuItemID)
	w.Append("name", l.Name)
	w.Append("quantity", l.Quantity)
	w.Append("unitPrice", l.UnitPrice.value)
	w.Append("unitCost", l.UnitCost.value)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Order.
func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("timestamp", o.Timestamp.Format(time.RFC3339Nano))
	w.Optional("note", o.Note)
	w.Append("lines", nonNil(o.Lines))
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount.value)
	w.Append("timestamp", e.Timestamp.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// Intermediate decoding types. Amounts are read as bare decimals and turned
// back into Money in the envelope's currency.

type jItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Cost  decimal.Decimal `json:"cost"`
	Stock *int            `json:"stock"`
}

type jLine struct {
	Item      string          `json:"item"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

type jOrder struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Note      string  `json:"note"`
	Lines     []jLine `json:"lines"`
}

type jExpense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   string          `json:"timestamp"`
}

type jState struct {
	Version  int        `json:"version"`
	Currency string     `json:"currency"`
	Menu     []jItem    `json:"menu"`
	Cart     []jLine    `json:"cart"`
	Orders   []jOrder   `json:"orders"`
	Expenses []jExpense `json:"expenses"`
}

// DecodeState reads a day state previously written by EncodeState.
func DecodeState(r io.Reader) (*DayState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read day state: %w", err)
	}
	var js jState
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("could not parse day state: %w", err)
	}
	// version 0 is the pre-versioning layout, identical otherwise.
	if js.Version > StateVersion {
		return nil, fmt.Errorf("unsupported day state version %d (this build reads up to %d)", js.Version, StateVersion)
	}

	s := NewDayState(js.Currency)
	for _, ji := range js.Menu {
		item := MenuItem{
			ID:    ji.ID,
			Name:  ji.Name,
			Price: M(ji.Price, js.Currency),
			Cost:  M(ji.Cost, js.Currency),
		}
		if ji.Stock != nil {
			v := *ji.Stock
			item.Stock = &v
		}
		s.Menu = append(s.Menu, item)
	}
	lines := func(jls []jLine) []OrderLine {
		ls := make([]OrderLine, 0, len(jls))
		for _, jl := range jls {
			ls = append(ls, OrderLine{
				MenuItemID: jl.Item,
				Name:       jl.Name,
				Quantity:   jl.Quantity,
				UnitPrice:  M(jl.UnitPrice, js.Currency),
				UnitCost:   M(jl.UnitCost, js.Currency),
			})
		}
		return ls
	}
	s.Cart = lines(js.Cart)
	for _, jo := range js.Orders {
		ts, err := time.Parse(time.RFC3339Nano, jo.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp of order %q: %w", jo.ID, err)
		}
		s.Orders = append(s.Orders, Order{ID: jo.ID, Timestamp: ts, Note: jo.Note, Lines: lines(jo.Lines)})
	}
	for _, je := range js.Expenses {
		ts, err := time.Parse(time.RFC3339Nano, je.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp of expense %q: %w", je.ID, err)
		}
		s.Expenses = append(s.Expenses, Expense{
			ID:          je.ID,
			Description: je.Description,
			Amount:      M(je.Amount, js.Currency),
			Timestamp:   ts,
		})
	}
	return s, nil
}

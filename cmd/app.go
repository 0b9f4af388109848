// Package cmd implements the CLI application to manage a restaurant day book.
package cmd

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
	"github.com/spf13/viper"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addItemCmd{}, "menu")
	c.Register(&updateItemCmd{}, "menu")
	c.Register(&removeItemCmd{}, "menu")
	c.Register(&menuCmd{}, "menu")
	c.Register(&seedCmd{}, "menu")

	c.Register(&cartAddCmd{}, "cart")
	c.Register(&cartQtyCmd{}, "cart")
	c.Register(&cartRmCmd{}, "cart")
	c.Register(&cartClearCmd{}, "cart")
	c.Register(&cartCmd{}, "cart")

	c.Register(&placeCmd{}, "orders")
	c.Register(&voidCmd{}, "orders")
	c.Register(&ordersCmd{}, "orders")

	c.Register(&expenseAddCmd{}, "expenses")
	c.Register(&expenseRmCmd{}, "expenses")
	c.Register(&expensesCmd{}, "expenses")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&resetCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data directory (overrides config)")
var defaultCurrency = flag.String("currency", "", "Reporting currency, 3-letter code (overrides config)")

// config reads the optional "daybook" config file and DAYBOOK_* environment
// variables. Flags take precedence over both.
func config() *viper.Viper {
	v := viper.New()
	v.SetDefault("data_dir", "daybook")
	v.SetDefault("currency", "USD")

	v.SetConfigName("daybook")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/daybook")

	v.SetEnvPrefix("daybook")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		log.Printf("warning, could not read config file: %v", err)
	}

	if *dataDir != "" {
		v.Set("data_dir", *dataDir)
	}
	if *defaultCurrency != "" {
		v.Set("currency", *defaultCurrency)
	}
	return v
}

// openBook opens the day book from the configured data directory. On first
// run it starts an empty day state; corrupted state falls back to an empty
// one with a warning rather than crashing.
func openBook() (*daybook.Book, error) {
	v := config()
	cur := v.GetString("currency")
	if err := daybook.ValidateCurrency(cur); err != nil {
		return nil, err
	}

	store, err := daybook.OpenDirStore(v.GetString("data_dir"))
	if err != nil {
		return nil, err
	}

	book, err := daybook.Open(store, cur)
	var pe *daybook.PersistenceError
	if errors.As(err, &pe) {
		log.Printf("warning, day state is unreadable (%v), starting from an empty day", pe)
		return daybook.NewBook(daybook.NewDayState(cur), store), nil
	}
	return book, err
}

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders a markdown report to stdout, through glamour when
// stdout is a terminal, raw otherwise (so output stays pipeable).
func printMarkdown(doc string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

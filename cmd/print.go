package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown string for the terminal and prints
// it to stdout. If rendering fails, the raw markdown is printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printValue renders one parsed value: the type tag, its decimal form, the
// raw bit pattern, and an optional classification.
func printValue(out io.Writer, typ, value, bitsHex, class string) {
	fmt.Fprintf(out, "%s %s\n", typeStyle.Render(typ), value)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("bits:"), bitsHex)
	if class != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("class:"), class)
	}
}

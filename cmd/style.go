package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printHeader writes the stylized emoji banner that opens every report
// command.
func printHeader(w io.Writer, emoji, title, message string, attr color.Attribute) {
	fmt.Fprintf(w, "\n%s %s\n", emoji, color.New(attr, color.Bold).Sprint(title))
	fmt.Fprintf(w, "   %s\n\n", color.New(attr).Sprint(message))
}

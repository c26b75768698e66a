// Package printer writes colored CLI output. Color follows fatih/color's
// terminal detection and is disabled by NO_COLOR.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Out and Err are where messages go; tests swap them.
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr

	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	faint  = color.New(color.Faint)
)

// Success prints a message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Fprintf(Out, "✓ %s", fmt.Sprintf(format, a...))
}

// Info prints a plain message.
func Info(format string, a ...any) {
	fmt.Fprintf(Out, format, a...)
}

// Heading prints a section title in bold cyan followed by a blank line.
func Heading(format string, a ...any) {
	cyan.Fprintf(Out, "%s\n\n", fmt.Sprintf(format, a...))
}

// Dim prints a message in faint text.
func Dim(format string, a ...any) {
	faint.Fprintf(Out, format, a...)
}

// Highlight returns s colored for emphasis inside a line.
func Highlight(s string) string {
	return green.Sprint(s)
}

// Warning prints a warning in yellow to Err.
func Warning(format string, a ...any) {
	yellow.Fprintf(Err, "warning: %s", fmt.Sprintf(format, a...))
}

// Error prints a titled error with an explanation and suggestions to Err,
// and returns a short error for cobra.
func Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(Err, "%s\n", title)

	if explanation != "" {
		fmt.Fprintf(Err, "\n%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintln(Err)
		if len(suggestions) == 1 {
			fmt.Fprintf(Err, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(Err, "Either:\n")
			for i, s := range suggestions {
				fmt.Fprintf(Err, "  %d. %s\n", i+1, s)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

// Package ui - Terminal output
// Plain-text headers and aligned tables for quote reports.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a formatted line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Field prints an aligned label/value pair
func (w *Writer) Field(label, value string) {
	w.Println("  %s %s", w.color(Dim, fmt.Sprintf("%-24s", label+":")), value)
}

// Error prints an error message
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.color(Red, "✗ ")+format, args...)
}

// Table prints rows with right-aligned numeric columns after the
// first, matching column widths to content.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i == 0 {
			b.WriteString(fmt.Sprintf("%-*s", widths[i], h))
		} else {
			b.WriteString(" | " + fmt.Sprintf("%*s", widths[i], h))
		}
	}
	w.Println("%s", w.color(Bold, b.String()))

	total := 0
	for _, width := range widths {
		total += width
	}
	w.Println("%s", strings.Repeat("-", total+3*(len(widths)-1)))

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i == 0 {
				b.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			} else {
				b.WriteString(" | " + fmt.Sprintf("%*s", widths[i], cell))
			}
		}
		w.Println("%s", b.String())
	}
}

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-vector/pkg/calculator"
)

// TerminalRenderer draws the calculator form as an ASCII box
type TerminalRenderer struct {
	out         io.Writer
	title       string
	width       int
	buffer      [][]rune
	row         int
	clearScreen bool
}

// Rows used by the form: title, separator, four fields, blank, heading,
// six operations, blank, result.
const terminalRows = 2 + calculator.FieldCount + 2 + 6 + 2

// NewTerminalRenderer creates a terminal renderer writing to out with the given inner width
func NewTerminalRenderer(out io.Writer, title string, width int) *TerminalRenderer {
	buffer := make([][]rune, terminalRows)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		out:    out,
		title:  title,
		width:  width,
		buffer: buffer,
	}
}

// SetClearScreen makes Present clear the terminal before drawing
func (r *TerminalRenderer) SetClearScreen(clear bool) {
	r.clearScreen = clear
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.row = 0
}

// RenderForm implements Renderer
func (r *TerminalRenderer) RenderForm(view calculator.FormView) {
	r.line(" " + r.title)
	r.line(strings.Repeat("-", r.width))

	for _, field := range view.Fields {
		marker := " "
		if field.Focused {
			marker = ">"
		}
		r.line(fmt.Sprintf("%s %-10s [%s]", marker, field.Name, field.Text))
	}

	r.line("")
	r.line(" Operation:")
	for i, op := range view.Operations {
		marker := " "
		if i == view.Selected {
			marker = "*"
		}
		r.line(fmt.Sprintf(" %s %d. %s", marker, i+1, op))
	}

	r.line("")
	r.line(" Result: " + view.Label)
}

// line writes text into the next buffer row, truncated to the width
func (r *TerminalRenderer) line(text string) {
	if r.row >= len(r.buffer) {
		return
	}
	row := r.buffer[r.row]
	for i, ch := range []rune(text) {
		if i >= len(row) {
			break
		}
		row[i] = ch
	}
	r.row++
}

// Present implements Renderer
func (r *TerminalRenderer) Present() error {
	w := bufio.NewWriter(r.out)

	if r.clearScreen {
		w.WriteString("\033[H\033[2J")
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	w.WriteString(border)
	for y := range r.buffer {
		w.WriteString("|")
		w.WriteString(string(r.buffer[y]))
		w.WriteString("|\n")
	}
	w.WriteString(border)

	return w.Flush()
}

package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-vector/pkg/calculator"
)

const consoleHelp = `Commands:
  x1 <n>, y1 <n>, x2 <n>, y2 <n>   set a vector component
  v1 <x> <y>, v2 <x> <y>           set both components of a vector
  op <1-6|name>                    select an operation
  next, prev                       cycle the operation
  ops                              list operations
  calc (or an empty line)          calculate
  help                             show this help
  quit                             exit`

var fieldCommands = map[string]calculator.Field{
	"x1": calculator.FirstX,
	"y1": calculator.FirstY,
	"x2": calculator.SecondX,
	"y2": calculator.SecondY,
}

// Console drives a Form from line commands and redraws it after each one.
type Console struct {
	form     *calculator.Form
	renderer Renderer
	in       io.Reader
	out      io.Writer
}

// NewConsole creates a console reading commands from in and writing messages to out.
func NewConsole(form *calculator.Form, renderer Renderer, in io.Reader, out io.Writer) *Console {
	return &Console{
		form:     form,
		renderer: renderer,
		in:       in,
		out:      out,
	}
}

// Run draws the form, then executes commands until quit, end of input or ctx is done.
// Lines are read on a separate goroutine so that cancelling ctx stops Run while it waits for input.
func (c *Console) Run(ctx context.Context) error {
	if err := Draw(c.renderer, c.form.View()); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			quit, redraw := c.Execute(ctx, line)
			if quit {
				return nil
			}
			if redraw {
				if err := Draw(c.renderer, c.form.View()); err != nil {
					return err
				}
			}
		}
	}
}

// Execute runs one command line. It reports whether the console should stop
// and whether the form changed.
func (c *Console) Execute(ctx context.Context, line string) (quit, redraw bool) {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd = strings.ToLower(cmd)
	args = strings.TrimSpace(args)

	if field, ok := fieldCommands[cmd]; ok {
		c.form.SetText(field, args)
		c.form.SetFocus(field)
		return false, true
	}

	switch cmd {
	case "", "calc":
		// the label carries both results and error messages
		_, _ = c.form.Submit(ctx)
		return false, true
	case "v1", "v2":
		return false, c.setVector(cmd, args)
	case "op":
		op, err := calculator.ParseOperation(args)
		if err != nil {
			fmt.Fprintf(c.out, "%s\n", calculator.Message(err))
			return false, false
		}
		_ = c.form.SelectOperation(op)
		return false, true
	case "next":
		c.form.NextOperation()
		return false, true
	case "prev":
		c.form.PrevOperation()
		return false, true
	case "ops":
		for i, op := range calculator.Operations() {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, op)
		}
		return false, false
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
		return false, false
	case "quit", "exit":
		return true, false
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", cmd)
		return false, false
	}
}

func (c *Console) setVector(cmd, args string) bool {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		fmt.Fprintf(c.out, "usage: %s <x> <y>\n", cmd)
		return false
	}

	x, y := calculator.FirstX, calculator.FirstY
	if cmd == "v2" {
		x, y = calculator.SecondX, calculator.SecondY
	}
	c.form.SetText(x, parts[0])
	c.form.SetText(y, parts[1])
	return true
}

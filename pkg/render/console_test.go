package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/opd-ai/go-vector/pkg/calculator"
)

func TestConsole_Execute(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		wantLabel  string
		wantOp     calculator.Operation
		wantOutput string
	}{
		{
			name:      "length",
			lines:     []string{"x1 3", "y1 4", "x2 0", "y2 0", "calc"},
			wantLabel: "5",
			wantOp:    calculator.Length,
		},
		{
			name:      "addition_by_index",
			lines:     []string{"v1 3 4", "v2 1 2", "op 2", ""},
			wantLabel: "( 4; 6)",
			wantOp:    calculator.Addition,
		},
		{
			name:      "multiply_by_name",
			lines:     []string{"V1 2 3", "V2 4 5", "op Scalar multiply (2 vectors)", "calc"},
			wantLabel: "( 8; 15)",
			wantOp:    calculator.ComponentMultiply,
		},
		{
			name:      "zero_vector_angle",
			lines:     []string{"v1 0 0", "v2 1 1", "prev", "prev", "calc"},
			wantLabel: "Error: zero vector has no angle",
			wantOp:    calculator.AngleToXAxis,
		},
		{
			name:      "input_error",
			lines:     []string{"v1 abc 1", "v2 1 1", "calc"},
			wantLabel: "Input error: Vector 1 X: component is not a decimal number: \"abc\"",
			wantOp:    calculator.Length,
		},
		{
			name:       "unknown_operation",
			lines:      []string{"op 9"},
			wantOp:     calculator.Length,
			wantOutput: "Error: unknown operation",
		},
		{
			name:       "bad_vector_usage",
			lines:      []string{"v1 1"},
			wantOp:     calculator.Length,
			wantOutput: "usage: v1 <x> <y>",
		},
		{
			name:       "unknown_command",
			lines:      []string{"dot"},
			wantOp:     calculator.Length,
			wantOutput: `unknown command "dot"`,
		},
		{
			name:       "list_operations",
			lines:      []string{"next", "ops"},
			wantOp:     calculator.Addition,
			wantOutput: "4. Scalar multiply (2 vectors)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			form := newTestForm()
			console := NewConsole(form, &recordingRenderer{}, strings.NewReader(""), &out)

			for _, line := range tt.lines {
				if quit, _ := console.Execute(context.Background(), line); quit {
					t.Fatalf("Execute(%q) unexpectedly quit", line)
				}
			}

			if form.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, expected %q", form.Label(), tt.wantLabel)
			}
			if form.Operation() != tt.wantOp {
				t.Errorf("Operation() = %q, expected %q", form.Operation(), tt.wantOp)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output %q should contain %q", out.String(), tt.wantOutput)
			}
		})
	}
}

func TestConsole_Run(t *testing.T) {
	var out bytes.Buffer
	renderer := &recordingRenderer{}
	input := strings.NewReader("v1 3 4\nv2 0 0\ncalc\nhelp\nquit\nx1 99\n")

	form := newTestForm()
	console := NewConsole(form, renderer, input, &out)
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// initial frame plus one per form-changing command
	if len(renderer.frames) != 4 {
		t.Errorf("expected 4 frames, got %d", len(renderer.frames))
	}
	if last := renderer.frames[len(renderer.frames)-1]; last.Label != "5" {
		t.Errorf("last frame label = %q, expected 5", last.Label)
	}
	if form.Text(calculator.FirstX) != "3" {
		t.Error("commands after quit should not run")
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("help output missing: %q", out.String())
	}
}

func TestConsole_Run_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	console := NewConsole(newTestForm(), &recordingRenderer{}, strings.NewReader("calc\n"), &bytes.Buffer{})
	if err := console.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestConsole_Run_StopsWhileWaitingForInput(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	console := NewConsole(newTestForm(), &recordingRenderer{}, reader, &bytes.Buffer{})

	result := make(chan error, 1)
	go func() {
		result <- console.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after the context was cancelled")
	}
}

func TestConsole_Run_ReturnsReadError(t *testing.T) {
	reader, writer := io.Pipe()
	readErr := errors.New("terminal closed")
	writer.CloseWithError(readErr)

	console := NewConsole(newTestForm(), &recordingRenderer{}, reader, &bytes.Buffer{})
	if err := console.Run(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("Run() error = %v, expected %v", err, readErr)
	}
}

// pkg/render/engo/input_test.go
package engo

import (
	"context"
	"testing"

	"github.com/opd-ai/go-vector/pkg/calculator"
)

func typeText(is *InputSystem, text string) {
	for _, r := range text {
		is.Apply(context.Background(), Action{Kind: InsertRune, Rune: r})
	}
}

func newEmptyForm() *calculator.Form {
	form := newTestForm()
	for _, field := range []calculator.Field{calculator.FirstX, calculator.FirstY, calculator.SecondX, calculator.SecondY} {
		form.SetText(field, "")
	}
	return form
}

func TestNewInputSystem(t *testing.T) {
	form := newTestForm()
	is := NewInputSystem(form, nil)

	if is.form != form {
		t.Error("form not set")
	}
	if !is.IsDirty() {
		t.Error("new input system should draw on its first update")
	}
}

func TestInputSystem_Apply_Editing(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		field   calculator.Field
		want    string
	}{
		{
			name:    "insert_runes",
			actions: []Action{{Kind: InsertRune, Rune: '-'}, {Kind: InsertRune, Rune: '2'}, {Kind: InsertRune, Rune: '.'}, {Kind: InsertRune, Rune: '5'}},
			field:   calculator.FirstX,
			want:    "-2.5",
		},
		{
			name:    "backspace_removes_last",
			actions: []Action{{Kind: InsertRune, Rune: '1'}, {Kind: InsertRune, Rune: '2'}, {Kind: Backspace}},
			field:   calculator.FirstX,
			want:    "1",
		},
		{
			name:    "clear_field",
			actions: []Action{{Kind: InsertRune, Rune: '7'}, {Kind: ClearField}},
			field:   calculator.FirstX,
			want:    "",
		},
		{
			name:    "next_field_moves_focus",
			actions: []Action{{Kind: NextField}, {Kind: InsertRune, Rune: '3'}},
			field:   calculator.FirstY,
			want:    "3",
		},
		{
			name:    "prev_field_wraps",
			actions: []Action{{Kind: PrevField}, {Kind: InsertRune, Rune: '9'}},
			field:   calculator.SecondY,
			want:    "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newEmptyForm()
			is := NewInputSystem(form, nil)
			is.dirty = false

			for _, action := range tt.actions {
				is.Apply(context.Background(), action)
			}

			if got := form.Text(tt.field); got != tt.want {
				t.Errorf("field %v = %q, expected %q", tt.field, got, tt.want)
			}
			if !is.IsDirty() {
				t.Error("applying actions should mark the form dirty")
			}
		})
	}
}

func TestInputSystem_Apply_Operations(t *testing.T) {
	form := newTestForm()
	is := NewInputSystem(form, nil)
	ctx := context.Background()

	is.Apply(ctx, Action{Kind: NextOperation})
	if form.Operation() != calculator.Addition {
		t.Errorf("after next: %v, expected %v", form.Operation(), calculator.Addition)
	}

	is.Apply(ctx, Action{Kind: PrevOperation})
	is.Apply(ctx, Action{Kind: PrevOperation})
	if form.Operation() != calculator.AngleToYAxis {
		t.Errorf("after wrapping prev: %v, expected %v", form.Operation(), calculator.AngleToYAxis)
	}
}

func TestInputSystem_Apply_Calculate(t *testing.T) {
	form := newEmptyForm()
	is := NewInputSystem(form, nil)
	ctx := context.Background()

	for _, text := range []string{"3", "4", "0", "0"} {
		typeText(is, text)
		is.Apply(ctx, Action{Kind: NextField})
	}
	is.Apply(ctx, Action{Kind: Calculate})

	if form.Label() != "5" {
		t.Errorf("Label() = %q, expected %q", form.Label(), "5")
	}
	if form.View().Failed {
		t.Error("successful calculation reported as failed")
	}

	form.SetText(calculator.FirstX, "abc")
	is.Apply(ctx, Action{Kind: Calculate})
	if !form.View().Failed {
		t.Error("invalid input should fail")
	}
}

func TestInputSystem_Apply_UnknownKind(t *testing.T) {
	is := NewInputSystem(newTestForm(), nil)
	is.dirty = false

	is.Apply(context.Background(), Action{Kind: ActionKind(99)})

	if is.IsDirty() {
		t.Error("unknown action should not mark the form dirty")
	}
}

func TestKeyBindings_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range keyBindings {
		if seen[b.name] {
			t.Errorf("duplicate binding %q", b.name)
		}
		seen[b.name] = true
		if len(b.keys) == 0 {
			t.Errorf("binding %q has no keys", b.name)
		}
	}
}

package calculator

import (
	"context"
	"unicode/utf8"

	"github.com/opd-ai/go-vector/pkg/event"
	"github.com/opd-ai/go-vector/pkg/validation"
)

// Form is the editable state behind a calculator window: four text fields,
// the focused field, the selected operation and the result label.
// Front ends translate key presses into Form calls and draw its View.
type Form struct {
	session  *Session
	fields   [FieldCount]string
	focus    Field
	selected int
	label    string
	failed   bool
}

// FieldView is the display state of one input field.
type FieldView struct {
	Name    string
	Text    string
	Focused bool
}

// FormView is a snapshot of everything a renderer draws.
type FormView struct {
	Fields     [FieldCount]FieldView
	Operations []Operation
	Selected   int
	Label      string
	Failed     bool
}

// NewForm creates a form bound to session with op selected.
// The fields start with the session's current vectors.
// An invalid op falls back to DefaultOperation.
func NewForm(session *Session, op Operation) *Form {
	if !op.Valid() {
		op = DefaultOperation()
	}

	first, second := session.Vectors()
	return &Form{
		session:  session,
		selected: op.Index(),
		fields: [FieldCount]string{
			FormatScalar(first.X),
			FormatScalar(first.Y),
			FormatScalar(second.X),
			FormatScalar(second.Y),
		},
	}
}

// Session returns the session the form calculates with.
func (f *Form) Session() *Session {
	return f.session
}

// Input returns the current field texts.
func (f *Form) Input() Input {
	return Input{
		FirstX:  f.fields[FirstX],
		FirstY:  f.fields[FirstY],
		SecondX: f.fields[SecondX],
		SecondY: f.fields[SecondY],
	}
}

// Text returns the text of field.
func (f *Form) Text(field Field) string {
	if !validField(field) {
		return ""
	}
	return f.fields[field]
}

// SetText replaces the text of field.
func (f *Form) SetText(field Field, text string) {
	if validField(field) {
		f.fields[field] = text
	}
}

// Focus returns the focused field.
func (f *Form) Focus() Field {
	return f.focus
}

// SetFocus moves the focus to field.
func (f *Form) SetFocus(field Field) {
	if validField(field) {
		f.focus = field
	}
}

// FocusNext moves the focus forward, wrapping after the last field.
func (f *Form) FocusNext() {
	f.focus = (f.focus + 1) % FieldCount
}

// FocusPrev moves the focus backward, wrapping before the first field.
func (f *Form) FocusPrev() {
	f.focus = (f.focus + FieldCount - 1) % FieldCount
}

// InsertRune appends r to the focused field. Input beyond the component limit is dropped.
func (f *Form) InsertRune(r rune) {
	text := f.fields[f.focus]
	if len(text)+utf8.RuneLen(r) > validation.MaxComponentLen {
		return
	}
	f.fields[f.focus] = text + string(r)
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	text := f.fields[f.focus]
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	f.fields[f.focus] = text[:len(text)-size]
}

// ClearField empties the focused field.
func (f *Form) ClearField() {
	f.fields[f.focus] = ""
}

// Operation returns the selected operation.
func (f *Form) Operation() Operation {
	return operations[f.selected]
}

// SelectOperation selects op.
func (f *Form) SelectOperation(op Operation) error {
	index := op.Index()
	if index < 0 {
		return ErrUnknownOperation
	}
	f.setSelected(index)
	return nil
}

// NextOperation selects the following operation, wrapping around.
func (f *Form) NextOperation() {
	f.setSelected((f.selected + 1) % len(operations))
}

// PrevOperation selects the preceding operation, wrapping around.
func (f *Form) PrevOperation() {
	f.setSelected((f.selected + len(operations) - 1) % len(operations))
}

func (f *Form) setSelected(index int) {
	if index == f.selected {
		return
	}
	f.selected = index
	f.session.Bus().Publish(event.NewSelectionEvent(f, operations[index].String(), index))
}

// Submit runs the selected operation on the current fields and stores the
// result text, or the error message, in the label.
func (f *Form) Submit(ctx context.Context) (Result, error) {
	result, err := f.session.Calculate(ctx, f.Input(), f.Operation())
	if err != nil {
		f.label = Message(err)
		f.failed = true
		return Result{}, err
	}
	f.label = result.Text()
	f.failed = false
	return result, nil
}

// Label returns the result label text.
func (f *Form) Label() string {
	return f.label
}

// View returns a snapshot for rendering.
func (f *Form) View() FormView {
	view := FormView{
		Operations: Operations(),
		Selected:   f.selected,
		Label:      f.label,
		Failed:     f.failed,
	}
	for i := range f.fields {
		field := Field(i)
		view.Fields[i] = FieldView{
			Name:    field.String(),
			Text:    f.fields[i],
			Focused: field == f.focus,
		}
	}
	return view
}

func validField(field Field) bool {
	return field >= 0 && int(field) < FieldCount
}

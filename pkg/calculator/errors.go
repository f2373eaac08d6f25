package calculator

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-vector/pkg/vector"
)

// Field identifies one of the four numeric text inputs.
type Field int

const (
	FirstX Field = iota
	FirstY
	SecondX
	SecondY
)

// FieldCount is the number of input fields on the form.
const FieldCount = 4

var fieldNames = [FieldCount]string{"Vector 1 X", "Vector 1 Y", "Vector 2 X", "Vector 2 Y"}

func (f Field) String() string {
	if f < 0 || int(f) >= FieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// InputError reports a field whose text could not be parsed.
type InputError struct {
	Field Field
	Text  string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Message converts a Calculate error into text for the result label.
func Message(err error) string {
	var inputErr *InputError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, vector.ErrZeroVector):
		return "Error: zero vector has no angle"
	case errors.As(err, &inputErr):
		return fmt.Sprintf("Input error: %s: %v", inputErr.Field, inputErr.Err)
	case errors.Is(err, ErrUnknownOperation):
		return "Error: unknown operation"
	default:
		return "Error: " + err.Error()
	}
}

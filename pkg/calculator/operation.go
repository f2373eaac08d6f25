// Package calculator is the interaction layer between a front end and the vector model.
// It owns the session's two vectors, dispatches the six named operations and
// formats their results for display.
package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/go-vector/pkg/validation"
)

// Operation is one of the six operation identifiers shown to the user.
type Operation string

// The operation identifiers, exactly as displayed.
const (
	Length            Operation = "Length (1 vector)"
	Addition          Operation = "Addition (2 vectors)"
	Subtraction       Operation = "Subtraction (2 vectors)"
	ComponentMultiply Operation = "Scalar multiply (2 vectors)"
	AngleToXAxis      Operation = "The angle between 0X (1 vector)"
	AngleToYAxis      Operation = "The angle between 0Y (1 vector)"
)

// ErrUnknownOperation is returned for identifiers outside the operation list.
var ErrUnknownOperation = errors.New("unknown operation")

var operations = []Operation{
	Length,
	Addition,
	Subtraction,
	ComponentMultiply,
	AngleToXAxis,
	AngleToYAxis,
}

// Operations returns the operations in display order.
func Operations() []Operation {
	return append([]Operation(nil), operations...)
}

// DefaultOperation returns the operation selected on startup.
func DefaultOperation() Operation {
	return Length
}

// ParseOperation accepts an exact identifier or a 1-based index into Operations.
func ParseOperation(s string) (Operation, error) {
	s = strings.TrimSpace(s)

	if op := Operation(s); op.Valid() {
		return op, nil
	}

	if index, err := strconv.Atoi(s); err == nil {
		if err := validation.ValidateOperationIndex(index, len(operations)); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnknownOperation, err)
		}
		return operations[index-1], nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Index returns the position of o in Operations, or -1.
func (o Operation) Index() int {
	for i, op := range operations {
		if op == o {
			return i
		}
	}
	return -1
}

// Valid reports whether o is one of the six identifiers.
func (o Operation) Valid() bool {
	return o.Index() >= 0
}

// Operands reports how many input vectors the operation reads.
func (o Operation) Operands() int {
	switch o {
	case Addition, Subtraction, ComponentMultiply:
		return 2
	default:
		return 1
	}
}

func (o Operation) String() string {
	return string(o)
}

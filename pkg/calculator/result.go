package calculator

import (
	"fmt"

	"github.com/opd-ai/go-vector/pkg/vector"
)

// ResultKind tells whether a Result carries a number or a vector.
type ResultKind int

const (
	ScalarResult ResultKind = iota
	VectorResult
)

// Result is the outcome of a successful calculation.
type Result struct {
	Operation Operation
	Kind      ResultKind
	Scalar    float64
	Vector    vector.Vector
}

// Text formats the result for the result label.
func (r Result) Text() string {
	if r.Kind == VectorResult {
		return r.Vector.String()
	}
	return FormatScalar(r.Scalar)
}

// FormatScalar formats a number the same way vector components are formatted.
func FormatScalar(f float64) string {
	return fmt.Sprintf("%v", f)
}

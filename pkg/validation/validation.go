// Package validation parses and sanitizes the numeric text typed into the calculator form.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxComponentLen bounds the raw text of a single vector component.
const MaxComponentLen = 64

// Only plain decimal notation with an optional exponent is accepted.
var validComponentChars = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ValidateComponent validates the raw text of one vector component and returns its value.
func ValidateComponent(text string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("component cannot be empty")
	}

	if len(text) > MaxComponentLen {
		return 0, fmt.Errorf("component too long: %d characters (max %d)", len(text), MaxComponentLen)
	}

	if !utf8.ValidString(text) {
		return 0, fmt.Errorf("component contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("component cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return 0, fmt.Errorf("component contains control characters")
		}
	}

	if !validComponentChars.MatchString(trimmed) {
		return 0, fmt.Errorf("component is not a decimal number: %q", trimmed)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("component out of range: %q", trimmed)
		}
		return 0, fmt.Errorf("component is not a number: %w", err)
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("component must be finite: %q", trimmed)
	}

	return value, nil
}

// ValidateOperationIndex validates a 1-based operation index typed by the user.
func ValidateOperationIndex(index, count int) error {
	if index < 1 || index > count {
		return fmt.Errorf("invalid operation index: %d (must be 1-%d)", index, count)
	}
	return nil
}

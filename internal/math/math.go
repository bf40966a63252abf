package math

import (
	"strconv"
	"strings"
)

// Precision is the number of decimals distances are rounded to.
const Precision = 2

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', Precision, 64)
}

// Round rounds the exact decimal value of f to Precision decimals.
// NOTE : 2.675 is stored as 2.67499.. so it becomes 2.67,
// and exact halves are rounded to even, so 0.125 becomes 0.12
func Round(f float64) float64 {
	r, err := strconv.ParseFloat(Format(f), 64)
	if err != nil {
		return f
	}
	return r
}

// ParseFloat parses a float ignoring surrounding whitespace.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseInt parses an int ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

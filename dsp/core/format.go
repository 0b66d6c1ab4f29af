package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatFloat renders v in the shortest form that parses back to the same
// float64. The decimal separator is always '.', whatever the host locale.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatFloat32 is FormatFloat at float32 precision, so 0.1 renders as
// "0.1" rather than its float64 widening.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// ParseFloat parses text produced by FormatFloat. Surrounding whitespace is
// ignored; a ',' decimal separator is rejected rather than guessed.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", s, err)
	}

	return v, nil
}

package models

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d(_?\d)*(\.(\d(_?\d)*)?)?|\.\d(_?\d)*)([eE][+-]?\d(_?\d)*)?$`)
	specialPattern = regexp.MustCompile(`(?i)^[+-]?(inf|infinity|nan)$`)
)

// ParseNumber reads a real number as typed into a form field.
// Surrounding whitespace, underscores between digits, exponents and the
// inf/infinity/nan spellings are accepted; hexadecimal literals are not.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)

	if specialPattern.MatchString(s) {
		if strings.EqualFold(strings.TrimLeft(s, "+-"), "nan") {
			return math.NaN(), nil
		}
		return strconv.ParseFloat(s, 64)
	}

	if !decimalPattern.MatchString(s) {
		return 0, ErrNotANumber
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		// Overflow saturates to ±Inf rather than rejecting the input.
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, ErrNotANumber
	}
	return value, nil
}

// FormatNumber renders the shortest text that reads back as the same
// value. Integral values keep a trailing ".0" and magnitudes outside
// [1e-4, 1e16) switch to exponent notation.
func FormatNumber(value float64) string {
	if s, ok := formatSpecial(value); ok {
		return s
	}

	sci := strconv.FormatFloat(value, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if value != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatAmount renders value with exactly two decimals.
func FormatAmount(value float64) string {
	if s, ok := formatSpecial(value); ok {
		return s
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatSpecial(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return "nan", true
	case math.IsInf(value, 1):
		return "inf", true
	case math.IsInf(value, -1):
		return "-inf", true
	}
	return "", false
}

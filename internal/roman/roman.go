package roman

import (
	"errors"
	"fmt"
	"strings"

	"romancalc/internal/domain"
)

// Range of integers that have a numeral representation.
const (
	MinValue = 1
	MaxValue = 3999
)

var (
	// ErrOutOfRange is returned by FromInt for values outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("value out of numeral range")
	// ErrInvalidSymbol is returned by ToInt for characters other than I V X L C D M.
	ErrInvalidSymbol = errors.New("invalid numeral symbol")
	// ErrEmpty is returned by ToInt for the empty string.
	ErrEmpty = errors.New("empty numeral")
)

// groups is the greedy table, descending.
var groups = []struct {
	value int
	text  string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"}, {100, "C"},
	{90, "XC"}, {50, "L"}, {40, "XL"}, {10, "X"}, {9, "IX"},
	{5, "V"}, {4, "IV"}, {1, "I"},
}

// ToInt returns the value of s under the subtractive scan: whenever the next
// symbol is worth more than the current one, the pair contributes
// next-current and both are consumed.
func ToInt(s string) (int, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	total := 0
	for i := 0; i < len(s); i++ {
		current := domain.Symbol(s[i]).Value()
		if current == 0 {
			return 0, fmt.Errorf("%w %q at %d", ErrInvalidSymbol, s[i], i)
		}
		if i+1 < len(s) {
			next := domain.Symbol(s[i+1]).Value()
			if next == 0 {
				return 0, fmt.Errorf("%w %q at %d", ErrInvalidSymbol, s[i+1], i+1)
			}
			if next > current {
				total += next - current
				i++
				continue
			}
		}
		total += current
	}
	return total, nil
}

// FromInt returns the canonical numeral for n.
func FromInt(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	var b strings.Builder
	for _, g := range groups {
		for n >= g.value {
			b.WriteString(g.text)
			n -= g.value
		}
	}
	return b.String(), nil
}

// Canonical rewrites s in canonical form, e.g. "IIII" becomes "IV".
func Canonical(s string) (string, error) {
	n, err := ToInt(s)
	if err != nil {
		return "", err
	}
	return FromInt(n)
}

package types

import "unicode"

// Symbol is a single Roman numeral letter.
type Symbol byte

// The seven numeral symbols, in ascending value order.
const (
	SymbolI Symbol = 'I'
	SymbolV Symbol = 'V'
	SymbolX Symbol = 'X'
	SymbolL Symbol = 'L'
	SymbolC Symbol = 'C'
	SymbolD Symbol = 'D'
	SymbolM Symbol = 'M'
)

// Symbols lists every symbol in keypad order.
var Symbols = []Symbol{SymbolI, SymbolV, SymbolX, SymbolL, SymbolC, SymbolD, SymbolM}

// Value returns the integer weight of s, or 0 if s is not a numeral symbol.
func (s Symbol) Value() int {
	switch s {
	case SymbolI:
		return 1
	case SymbolV:
		return 5
	case SymbolX:
		return 10
	case SymbolL:
		return 50
	case SymbolC:
		return 100
	case SymbolD:
		return 500
	case SymbolM:
		return 1000
	}
	return 0
}

// Valid reports whether s is one of the seven numeral symbols.
func (s Symbol) Valid() bool { return s.Value() != 0 }

// String returns the letter.
func (s Symbol) String() string { return string(rune(s)) }

// ParseSymbol maps r (either case) to a Symbol.
func ParseSymbol(r rune) (Symbol, bool) {
	if r > unicode.MaxASCII {
		return 0, false
	}
	s := Symbol(unicode.ToUpper(r))
	return s, s.Valid()
}

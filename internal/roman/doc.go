// Package roman converts between Roman numeral strings and integers.
//
// ToInt is lenient: it applies the left-to-right subtractive scan to any
// sequence of the seven symbols, so non-canonical spellings such as "IIII"
// (4) or "IL" (49) are accepted. FromInt is strict: it only produces the
// canonical spelling and only for values in [MinValue, MaxValue].
//
// For every n in [MinValue, MaxValue], ToInt(FromInt(n)) == n.
package roman

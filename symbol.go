package huffman

import (
	"strconv"
)

// Symbol represents a single character of input text.  Negative symbols are
// not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the symbol as a one-character string.
func (sym Symbol) String() string {
	if sym < 0 {
		return "<invalid>"
	}
	return string(rune(sym))
}

// GoString returns the symbol as a quoted Go rune literal.
func (sym Symbol) GoString() string {
	return strconv.QuoteRune(rune(sym))
}

package huffman

import (
	"strconv"
	"strings"
)

// Code represents a codeword: a sequence of bits written as '0' and '1'
// characters, first bit first.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Valid reports whether every character of this Code is '0' or '1'.  The
// empty Code is valid.
func (hc Code) Valid() bool {
	for i := 0; i < len(hc); i++ {
		if hc[i] != '0' && hc[i] != '1' {
			return false
		}
	}
	return true
}

// Flipped returns the Code with every bit inverted.
func (hc Code) Flipped() Code {
	var sb strings.Builder
	sb.Grow(len(hc))
	for i := 0; i < len(hc); i++ {
		switch hc[i] {
		case '0':
			sb.WriteByte('1')
		case '1':
			sb.WriteByte('0')
		default:
			sb.WriteByte(hc[i])
		}
	}
	return Code(sb.String())
}

// HasPrefix reports whether prefix is a proper prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) < len(hc) && strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

func bitForEdge(right bool, oneOnRight bool) byte {
	if right == oneOnRight {
		return '1'
	}
	return '0'
}

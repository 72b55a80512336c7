package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Decoder implements a table-driven decoder for textual Huffman codes.
//
// The Decoder does not reconstruct a tree.  It matches the input against the
// codes of its CodeTable as strings, so it also accepts tables which are not
// prefix codes, such as tables typed in by hand.
//
type Decoder struct {
	table   CodeTable
	byCode  map[Code]Symbol
	minSize int
	maxSize int
}

// Init initializes this Decoder.  If two symbols share the same Code, the
// one that appears first in the table wins.
func (d *Decoder) Init(table CodeTable) {
	byCode := make(map[Code]Symbol, table.Len())
	for _, te := range table.entries {
		if _, found := byCode[te.Code]; !found {
			byCode[te.Code] = te.Symbol
		}
	}

	minSize, maxSize := codeSizes(table)

	*d = Decoder{
		table:   table,
		byCode:  byCode,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Decode decodes a string of '0' and '1' characters.
//
// The input is scanned left to right.  Characters are appended to a buffer
// until the buffer, trimmed of whitespace, equals some Code.  The buffer is
// then extended one character at a time for as long as it still equals some
// Code, and the symbol of the longest such Code is emitted.  The character
// that broke the match starts the next buffer.
//
// A trailing fragment that never matches any Code is dropped.  So is any
// fragment that fails to match before it reaches the end of the input,
// since the buffer is never reset without a match.  Decode never fails.
//
// The buffer is only compared after a character has been appended to it, so
// the empty input decodes to the empty string even when the table holds the
// empty Code.
//
func (d Decoder) Decode(bits string) string {
	var out strings.Builder
	var buf strings.Builder

	candidate := InvalidSymbol
	n := len(bits)
	i := 0
	for i < n {
		// Seek: grow the buffer until it matches.
		matched := false
		for i < n && !matched {
			buf.WriteByte(bits[i])
			i++
			if sym, found := d.lookup(buf.String()); found {
				matched = true
				candidate = sym
			}
		}

		// Extend: keep the longest match.
		for i < n && matched {
			buf.WriteByte(bits[i])
			i++
			if sym, found := d.lookup(buf.String()); found {
				candidate = sym
				continue
			}
			out.WriteString(candidate.String())
			candidate = InvalidSymbol
			buf.Reset()
			i--
			break
		}
	}
	if candidate != InvalidSymbol {
		out.WriteString(candidate.String())
	}
	return out.String()
}

func (d Decoder) lookup(buf string) (Symbol, bool) {
	sym, found := d.byCode[Code(strings.TrimSpace(buf))]
	return sym, found
}

// Table returns the CodeTable used to initialize this Decoder.
func (d Decoder) Table() CodeTable {
	return d.table
}

// MinSize is the bit length of the shortest code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.byCode))
	for hc := range d.byCode {
		keys = append(keys, hc)
	}
	slices.SortFunc(keys, compareCodes)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %#v\n", hc, d.byCode[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode decodes bits using the given table.
func Decode(bits string, table CodeTable) string {
	var d Decoder
	d.Init(table)
	return d.Decode(bits)
}

func compareCodes(a, b Code) int {
	if a.Size() != b.Size() {
		return a.Size() - b.Size()
	}
	return strings.Compare(string(a), string(b))
}

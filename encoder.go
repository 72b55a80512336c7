package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrUnknownSymbol is wrapped by UnknownSymbolError.
var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError is returned when asked to encode a Symbol that has no
// Code in the table.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset is the index of the symbol in the text, counted in
	// characters.
	Offset int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %#v at offset %d", err.Symbol, err.Offset)
}

// Unwrap returns ErrUnknownSymbol.
func (err *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)

// Encoder implements an encoder for textual Huffman codes.
type Encoder struct {
	hist  Histogram
	tree  Tree
	table CodeTable
	opts  Options
}

// Init initializes this Encoder.  The symbol frequencies of text determine
// the Huffman code, and opts determines the shape of the tree and the bit
// values of the codes.
func (e *Encoder) Init(text string, opts Options) {
	e.InitHistogram(Analyze(text), opts)
}

// InitHistogram is like Init, but takes the symbol frequencies directly.
func (e *Encoder) InitHistogram(hist Histogram, opts Options) {
	tree := BuildTree(hist, opts)
	table := AssignCodes(tree, opts)
	assert.Assertf(table.Len() == hist.Len(), "table has %d entries, histogram has %d", table.Len(), hist.Len())

	*e = Encoder{
		hist:  hist,
		tree:  tree,
		table: table,
		opts:  opts,
	}
}

// Encode returns the Code for a Symbol.  It is a logic error to encode a
// Symbol that did not appear in the text used to initialize this Encoder.
func (e Encoder) Encode(symbol Symbol) Code {
	hc, found := e.table.Lookup(symbol)
	assert.Assertf(found, "unknown symbol %#v", symbol)
	return hc
}

// EncodeString encodes every character of text and concatenates the codes.
// Unlike Encode, it reports an unknown symbol as an *UnknownSymbolError.
func (e Encoder) EncodeString(text string) (string, error) {
	var sb strings.Builder
	offset := 0
	for _, ch := range text {
		hc, found := e.table.Lookup(Symbol(ch))
		if !found {
			return "", &UnknownSymbolError{Symbol: Symbol(ch), Offset: offset}
		}
		sb.WriteString(string(hc))
		offset++
	}
	return sb.String(), nil
}

// Histogram returns the symbol frequencies used to build the code.
func (e Encoder) Histogram() Histogram {
	return e.hist
}

// Tree returns the merge tree used to build the code.
func (e Encoder) Tree() Tree {
	return e.tree
}

// Table returns the code table.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Options returns the options used to build the code.
func (e Encoder) Options() Options {
	return e.opts
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() int {
	minSize, _ := codeSizes(e.table)
	return minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() int {
	_, maxSize := codeSizes(e.table)
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tOptions() = %v\n", e.opts)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for _, te := range e.table.entries {
		fmt.Fprintf(&buf, "\tEncode(%#v) = %s\n", te.Symbol, te.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode builds the Huffman code for text and encodes text with it.
func Encode(text string, opts Options) (CodeTable, string) {
	var e Encoder
	e.Init(text, opts)
	bits, err := e.EncodeString(text)
	assert.Assertf(err == nil, "%v", err)
	return e.Table(), bits
}

func codeSizes(table CodeTable) (minSize int, maxSize int) {
	for i, te := range table.entries {
		size := te.Code.Size()
		if i == 0 {
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return minSize, maxSize
}

package huffman

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrBadTable is wrapped by all errors reporting a malformed CodeTable.
var ErrBadTable = errors.New("invalid code table")

// TableError reports a problem with one entry of a code table.
type TableError struct {
	// Line is the 1-based line number of the entry in the table text, or
	// 0 if the table was not parsed from text.
	Line   int
	Reason string
}

// Error fulfills the error interface.
func (err *TableError) Error() string {
	if err.Line == 0 {
		return fmt.Sprintf("invalid code table: %s", err.Reason)
	}
	return fmt.Sprintf("invalid code table: line %d: %s", err.Line, err.Reason)
}

// Is returns true for ErrBadTable.
func (err *TableError) Is(target error) bool {
	return target == ErrBadTable
}

var _ error = (*TableError)(nil)

// TableEntry associates one Symbol with its Code.
type TableEntry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable is an immutable, ordered mapping from Symbol to Code.
//
// A CodeTable built by AssignCodes is a prefix code (except when it holds a
// single symbol with the empty Code).  A CodeTable built by NewCodeTable or
// ParseTable may hold any codes at all, including duplicates and codes which
// are prefixes of other codes.
//
type CodeTable struct {
	entries []TableEntry
	index   map[Symbol]int
}

// NewCodeTable constructs a CodeTable from a list of entries.  The order of
// the entries is preserved.  Each Symbol may appear at most once, and each
// Code may contain only '0' and '1' characters.
func NewCodeTable(entries ...TableEntry) (CodeTable, error) {
	var b tableBuilder
	for _, te := range entries {
		if err := b.add(te, 0); err != nil {
			return CodeTable{}, err
		}
	}
	return b.table(), nil
}

// ParseTable parses the text format written by CodeTable.String.  Each
// non-blank line holds one entry in the form "<symbol> : <code>".  The line
// is split at the first ':' and both halves are trimmed of whitespace.
//
// A symbol which is itself whitespace is written as that whitespace
// character followed by the usual " : ", so a key which trims to nothing is
// read as its first character.
//
func ParseTable(text string) (CodeTable, error) {
	var b tableBuilder
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rawKey, rawCode, found := strings.Cut(line, ":")
		if !found {
			return CodeTable{}, &TableError{Line: lineNum, Reason: fmt.Sprintf("missing ':' separator in %q", line)}
		}

		key := strings.TrimSpace(rawKey)
		if key == "" && rawKey != "" {
			r, _ := utf8.DecodeRuneInString(rawKey)
			key = string(r)
		}
		if key == "" {
			return CodeTable{}, &TableError{Line: lineNum, Reason: "missing symbol"}
		}
		if utf8.RuneCountInString(key) != 1 {
			return CodeTable{}, &TableError{Line: lineNum, Reason: fmt.Sprintf("symbol %q is not a single character", key)}
		}

		r, _ := utf8.DecodeRuneInString(key)
		te := TableEntry{Symbol: Symbol(r), Code: Code(strings.TrimSpace(rawCode))}
		if err := b.add(te, lineNum); err != nil {
			return CodeTable{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return CodeTable{}, err
	}
	return b.table(), nil
}

// Len returns the number of entries in the table.
func (t CodeTable) Len() int {
	return len(t.entries)
}

// Lookup returns the Code for the given Symbol.
func (t CodeTable) Lookup(sym Symbol) (Code, bool) {
	i, found := t.index[sym]
	if !found {
		return "", false
	}
	return t.entries[i].Code, true
}

// Entries returns a copy of the table's entries, in table order.
func (t CodeTable) Entries() []TableEntry {
	out := make([]TableEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsPrefixFree reports whether no Code in the table is a proper prefix of
// another Code, and no two symbols share a Code.
func (t CodeTable) IsPrefixFree() bool {
	for i, a := range t.entries {
		for j, b := range t.entries {
			if i == j {
				continue
			}
			if a.Code == b.Code || b.Code.HasPrefix(a.Code) {
				return false
			}
		}
	}
	return true
}

// String returns the table in text form, one "<symbol> : <code>" line per
// entry.  The result can be read back with ParseTable, provided no symbol is
// ':' or a line break.
func (t CodeTable) String() string {
	var sb strings.Builder
	for _, te := range t.entries {
		sb.WriteString(te.Symbol.String())
		sb.WriteString(" : ")
		sb.WriteString(string(te.Code))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, te := range t.entries {
		fmt.Fprintf(&buf, "\tLookup(%#v) = %s\n", te.Symbol, te.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON fulfills json.Marshaler.  The table is written as a JSON object
// whose keys appear in table order.
func (t CodeTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, te := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(te.Symbol.String())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(string(te.Code))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON fulfills json.Unmarshaler.  The order of the object's keys
// becomes the table order.
func (t *CodeTable) UnmarshalJSON(raw []byte) error {
	d := json.NewDecoder(bytes.NewReader(raw))

	tok, err := d.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &TableError{Reason: fmt.Sprintf("expected JSON object, got %v", tok)}
	}

	var b tableBuilder
	for d.More() {
		tok, err = d.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value string
		if err := d.Decode(&value); err != nil {
			return err
		}

		if utf8.RuneCountInString(key) != 1 {
			return &TableError{Reason: fmt.Sprintf("symbol %q is not a single character", key)}
		}
		r, _ := utf8.DecodeRuneInString(key)
		if err := b.add(TableEntry{Symbol: Symbol(r), Code: Code(value)}, 0); err != nil {
			return err
		}
	}
	if _, err := d.Token(); err != nil {
		return err
	}

	*t = b.table()
	return nil
}

var (
	_ fmt.Stringer     = CodeTable{}
	_ json.Marshaler   = CodeTable{}
	_ json.Unmarshaler = (*CodeTable)(nil)
)

// type tableBuilder {{{

type tableBuilder struct {
	entries []TableEntry
	index   map[Symbol]int
}

func (b *tableBuilder) add(te TableEntry, lineNum int) error {
	if te.Symbol < 0 || !utf8.ValidRune(rune(te.Symbol)) {
		return &TableError{Line: lineNum, Reason: fmt.Sprintf("invalid symbol %d", int32(te.Symbol))}
	}
	if !te.Code.Valid() {
		return &TableError{Line: lineNum, Reason: fmt.Sprintf("code %s for symbol %#v contains characters other than '0' and '1'", te.Code, te.Symbol)}
	}
	if b.index == nil {
		b.index = make(map[Symbol]int)
	}
	if _, found := b.index[te.Symbol]; found {
		return &TableError{Line: lineNum, Reason: fmt.Sprintf("duplicate symbol %#v", te.Symbol)}
	}
	b.index[te.Symbol] = len(b.entries)
	b.entries = append(b.entries, te)
	return nil
}

func (b *tableBuilder) table() CodeTable {
	return CodeTable{entries: b.entries, index: b.index}
}

// }}}

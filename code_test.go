package huffman

import (
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		hc      Code
		size    int
		valid   bool
		flipped Code
		str     string
	}

	testData := [...]testRow{
		{hc: "", size: 0, valid: true, flipped: "", str: `""`},
		{hc: "0", size: 1, valid: true, flipped: "1", str: `"0"`},
		{hc: "0110", size: 4, valid: true, flipped: "1001", str: `"0110"`},
		{hc: "01a", size: 3, valid: false, flipped: "10a", str: `"01a"`},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			if actual := row.hc.Size(); row.size != actual {
				t.Errorf("Size: expected %d, got %d", row.size, actual)
			}
			if actual := row.hc.Valid(); row.valid != actual {
				t.Errorf("Valid: expected %v, got %v", row.valid, actual)
			}
			if actual := row.hc.Flipped(); row.flipped != actual {
				t.Errorf("Flipped: expected %s, got %s", row.flipped, actual)
			}
			if actual := row.hc.String(); row.str != actual {
				t.Errorf("String: expected %s, got %s", row.str, actual)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	if !Code("0110").HasPrefix("01") {
		t.Errorf("expected \"01\" to be a prefix of \"0110\"")
	}
	if !Code("0110").HasPrefix("") {
		t.Errorf("expected \"\" to be a prefix of \"0110\"")
	}
	if Code("01").HasPrefix("01") {
		t.Errorf("a code is not a proper prefix of itself")
	}
	if Code("01").HasPrefix("0110") {
		t.Errorf("a longer code is not a prefix")
	}
}

func TestSymbol(t *testing.T) {
	if expect, actual := "a", Symbol('a').String(); expect != actual {
		t.Errorf("String: expected %s, got %s", expect, actual)
	}
	if expect, actual := "'a'", Symbol('a').GoString(); expect != actual {
		t.Errorf("GoString: expected %s, got %s", expect, actual)
	}
	if expect, actual := "<invalid>", InvalidSymbol.String(); expect != actual {
		t.Errorf("String: expected %s, got %s", expect, actual)
	}
}

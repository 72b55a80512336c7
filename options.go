package huffman

import (
	"fmt"
)

// Options controls the shape of the tree and the bit values of the codes.
type Options struct {
	// HigherFrequencyOnLeft places the more frequent of each merged pair
	// of nodes on the left.  When false, it is placed on the right.
	HigherFrequencyOnLeft bool

	// OneOnRightEdge emits '0' when descending left and '1' when
	// descending right.  When false, the bits are swapped.
	OneOnRightEdge bool
}

// DefaultOptions returns the options "higher frequency on the left" and
// "mark order 0 - 1".
func DefaultOptions() Options {
	return Options{HigherFrequencyOnLeft: true, OneOnRightEdge: true}
}

// String returns a short human-readable description of the options.
func (opts Options) String() string {
	side := "right"
	if opts.HigherFrequencyOnLeft {
		side = "left"
	}
	order := "1-0"
	if opts.OneOnRightEdge {
		order = "0-1"
	}
	return fmt.Sprintf("(higher frequency on %s, mark order %s)", side, order)
}

var _ fmt.Stringer = Options{}

package huffman

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// FrequencyEntry holds the number of occurrences of one Symbol.
type FrequencyEntry struct {
	Symbol    Symbol
	Count     uint32
	Frequency float64
}

// Histogram is an ordered table of symbol frequencies.  Entries appear in
// the order in which their symbols first occur in the text.  The order is
// significant: it breaks ties when building the tree.
type Histogram struct {
	entries []FrequencyEntry
	index   map[Symbol]int
	total   uint32
}

// Analyze counts the symbols of text.
func Analyze(text string) Histogram {
	var p partialHistogram
	pos := 0
	for _, ch := range text {
		p.add(Symbol(ch), pos)
		pos++
	}
	return mergeHistograms([]partialHistogram{p})
}

// AnalyzeParallel is like Analyze, but splits the text into the given number
// of shards and counts each shard concurrently.  The result is identical to
// Analyze(text).
func AnalyzeParallel(ctx context.Context, text string, shards int) (Histogram, error) {
	runes := []rune(text)
	if shards < 1 {
		shards = 1
	}
	if shards > len(runes) {
		shards = len(runes)
	}
	if shards <= 1 {
		if err := ctx.Err(); err != nil {
			return Histogram{}, err
		}
		return Analyze(text), nil
	}

	partials := make([]partialHistogram, shards)
	shardLen := (len(runes) + shards - 1) / shards

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(shards)
	for s := 0; s < shards; s++ {
		s := s
		begin := s * shardLen
		end := begin + shardLen
		if end > len(runes) {
			end = len(runes)
		}
		g.Go(func() error {
			p := &partials[s]
			for pos := begin; pos < end; pos++ {
				// Check if another worker already failed
				if (pos-begin)&0xfff == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				p.add(Symbol(runes[pos]), pos)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Histogram{}, err
	}
	return mergeHistograms(partials), nil
}

// Len returns the number of distinct symbols.
func (h Histogram) Len() int {
	return len(h.entries)
}

// Total returns the number of symbols counted, i.e. the length of the text
// in characters.
func (h Histogram) Total() uint32 {
	return h.total
}

// Entries returns a copy of the entries in first-occurrence order.
func (h Histogram) Entries() []FrequencyEntry {
	return slices.Clone(h.entries)
}

// Lookup returns the entry for the given Symbol.
func (h Histogram) Lookup(sym Symbol) (FrequencyEntry, bool) {
	i, found := h.index[sym]
	if !found {
		return FrequencyEntry{Symbol: InvalidSymbol}, false
	}
	return h.entries[i], true
}

// Dump writes a programmer-readable debugging dump of the Histogram to the
// given writer.
func (h Histogram) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Histogram{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", h.total)
	for _, fe := range h.entries {
		fmt.Fprintf(&buf, "\tLookup(%#v) = {%d, %.4f}\n", fe.Symbol, fe.Count, fe.Frequency)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type partialHistogram {{{

type partialCount struct {
	symbol Symbol
	count  uint32
	first  int
}

type partialHistogram struct {
	counts []partialCount
	index  map[Symbol]int
}

func (p *partialHistogram) add(sym Symbol, pos int) {
	if p.index == nil {
		p.index = make(map[Symbol]int)
	}
	if i, found := p.index[sym]; found {
		p.counts[i].count++
		return
	}
	p.index[sym] = len(p.counts)
	p.counts = append(p.counts, partialCount{symbol: sym, count: 1, first: pos})
}

func mergeHistograms(partials []partialHistogram) Histogram {
	var merged partialHistogram
	for _, p := range partials {
		for _, pc := range p.counts {
			if i, found := merged.index[pc.symbol]; found {
				merged.counts[i].count += pc.count
				if merged.counts[i].first > pc.first {
					merged.counts[i].first = pc.first
				}
				continue
			}
			if merged.index == nil {
				merged.index = make(map[Symbol]int)
			}
			merged.index[pc.symbol] = len(merged.counts)
			merged.counts = append(merged.counts, pc)
		}
	}

	slices.SortFunc(merged.counts, func(a, b partialCount) int {
		return a.first - b.first
	})

	var total uint32
	for _, pc := range merged.counts {
		total += pc.count
	}

	h := Histogram{
		entries: make([]FrequencyEntry, len(merged.counts)),
		index:   make(map[Symbol]int, len(merged.counts)),
		total:   total,
	}
	for i, pc := range merged.counts {
		h.entries[i] = FrequencyEntry{
			Symbol:    pc.symbol,
			Count:     pc.count,
			Frequency: float64(pc.count) / float64(total),
		}
		h.index[pc.symbol] = i
	}
	return h
}

// }}}

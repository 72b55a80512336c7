package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman merge tree.  It is either a *Leaf or an
// *Internal.
type Node interface {
	// Count is the number of occurrences of all symbols under this node.
	Count() uint32

	// Label is the concatenation of all symbols under this node, from
	// left to right.
	Label() string

	isNode()
}

// Leaf is a Node that holds one Symbol.
type Leaf struct {
	Symbol Symbol
	Weight uint32
}

// Internal is a Node with exactly two children.
type Internal struct {
	Weight uint32
	Text   string
	Left   Node
	Right  Node
}

// Count returns the number of occurrences of the leaf's symbol.
func (n *Leaf) Count() uint32 { return n.Weight }

// Label returns the leaf's symbol as a string.
func (n *Leaf) Label() string { return n.Symbol.String() }

// Count returns the sum of the counts of both children.
func (n *Internal) Count() uint32 { return n.Weight }

// Label returns the concatenated labels of both children.
func (n *Internal) Label() string { return n.Text }

func (*Leaf) isNode() {}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman merge tree.  The zero Tree is empty.
type Tree struct {
	root   Node
	total  uint32
	leaves int
}

// BuildTree builds the merge tree for the given Histogram.
//
// The two nodes with the lowest counts are repeatedly merged into a new
// Internal node, which is then treated as the newest node.  Ties are broken
// in favor of the oldest node: leaves are older than internal nodes, and
// leaves are ordered by their position in the Histogram.
//
func BuildTree(hist Histogram, opts Options) Tree {
	n := hist.Len()
	if n == 0 {
		return Tree{}
	}

	nodes := make([]nodeAndSeq, 0, n)
	for i, fe := range hist.entries {
		nodes = append(nodes, nodeAndSeq{&Leaf{Symbol: fe.Symbol, Weight: fe.Count}, uint32(i)})
	}

	h := nodeHeap{nodes}
	h.Init()

	nextSeq := uint32(n)
	for h.Len() > 1 {
		min1 := heap.Pop(&h).(nodeAndSeq)
		min2 := heap.Pop(&h).(nodeAndSeq)

		left, right := min1.node, min2.node
		if opts.HigherFrequencyOnLeft {
			left, right = right, left
		}

		merged := &Internal{
			Weight: min1.node.Count() + min2.node.Count(),
			Text:   left.Label() + right.Label(),
			Left:   left,
			Right:  right,
		}
		heap.Push(&h, nodeAndSeq{merged, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq)
	assert.Assertf(root.node.Count() == hist.total, "root count %d != histogram total %d", root.node.Count(), hist.total)

	return Tree{
		root:   root.node,
		total:  hist.total,
		leaves: n,
	}
}

// Root returns the root of the tree, or nil if the tree is empty.
func (t Tree) Root() Node {
	return t.root
}

// Leaves returns the number of leaves in the tree.
func (t Tree) Leaves() int {
	return t.leaves
}

// Total returns the count of the root node.
func (t Tree) Total() uint32 {
	return t.total
}

// Frequency returns the relative frequency of the given node, which must be
// part of this tree.
func (t Tree) Frequency(node Node) float64 {
	if t.total == 0 {
		return 0
	}
	return float64(node.Count()) / float64(t.total)
}

// Dump writes the tree to the given writer, one level per line, each node
// as {label, frequency}.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	level := make([]Node, 0, 1)
	if t.root != nil {
		level = append(level, t.root)
	}
	for len(level) != 0 {
		items := make([]string, len(level))
		next := make([]Node, 0, 2*len(level))
		for i, node := range level {
			items[i] = fmt.Sprintf("{%q, %.4f}", node.Label(), t.Frequency(node))
			if in, ok := node.(*Internal); ok {
				next = append(next, in.Left, in.Right)
			}
		}
		fmt.Fprintf(&buf, "\t%s\n", strings.Join(items, " "))
		level = next
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if ac, bc := a.node.Count(), b.node.Count(); ac != bc {
		return ac < bc
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

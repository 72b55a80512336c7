package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// AssignCodes walks the tree depth-first, left child before right child, and
// returns the Code of every leaf.  The entries of the resulting CodeTable
// appear in the order in which the leaves were visited.
//
// Each step to a left child appends '0' and each step to a right child
// appends '1', or the reverse if opts.OneOnRightEdge is false.  A tree with
// a single leaf assigns the empty Code to it.
//
func AssignCodes(t Tree, opts Options) CodeTable {
	var b tableBuilder
	if t.root == nil {
		return b.table()
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// The path holds one bit per stack item below the top, so popping an
	// item also drops the bit that led to it.

	type stackItem struct {
		n *Internal
		x byte
	}

	stack := make([]stackItem, 0, 16)
	path := make([]byte, 0, 16)

	stackPush := func(n *Internal) {
		stack = append(stack, stackItem{n: n, x: 0})
	}

	stackPop := func() {
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]
		if len(path) != 0 {
			path = path[:len(path)-1]
		}
	}

	processChild := func(child Node, right bool) {
		path = append(path, bitForEdge(right, opts.OneOnRightEdge))
		switch n := child.(type) {
		case *Internal:
			stackPush(n)
		case *Leaf:
			err := b.add(TableEntry{Symbol: n.Symbol, Code: Code(path)}, 0)
			assert.Assertf(err == nil, "tree holds symbol %#v more than once", n.Symbol)
			path = path[:len(path)-1]
		}
	}

	switch n := t.root.(type) {
	case *Leaf:
		err := b.add(TableEntry{Symbol: n.Symbol, Code: ""}, 0)
		assert.Assertf(err == nil, "%v", err)
		return b.table()
	case *Internal:
		stackPush(n)
	}

	// And now the tree-walking loop.
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.Left, false)
		case 1:
			processChild(top.n.Right, true)
		case 2:
			stackPop()
		}
	}

	assert.Assertf(len(path) == 0, "path not restored after walk: %q", path)
	return b.table()
}

// Package parser provides the parse tree representation used by the
// structural extractors. The node set is closed: a node is either an
// internal node with at least one child or a leaf. Leaves are
// pre-terminals, a category label over a surface word. Structural
// metrics are plain functions that switch on the two variants; adding a
// metric never touches the node definitions.
package parser

// Node is one node of a parse tree. The interface is sealed: the only
// implementations are *Internal and *Leaf.
type Node interface {
	node()
}

// Internal is a non-terminal node with a category label and an ordered,
// non-empty list of children.
type Internal struct {
	Label    string
	Children []Node
}

// Leaf is a pre-terminal node: a category label and the surface word it
// covers. A bare word parsed outside any pre-terminal group carries the
// word as its label and an empty Word.
type Leaf struct {
	Label string
	Word  string
}

func (*Internal) node() {}
func (*Leaf) node()     {}

// Height returns the height of the tree rooted at n. Leaves are
// pre-terminals with height 1; an internal node is one taller than its
// tallest child.
func Height(n Node) int {
	switch t := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		max := 0
		for _, child := range t.Children {
			if h := Height(child); h > max {
				max = h
			}
		}
		return max + 1
	default:
		return 0
	}
}

// NodeCount returns the total number of nodes in the tree rooted at n.
func NodeCount(n Node) int {
	switch t := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		count := 1
		for _, child := range t.Children {
			count += NodeCount(child)
		}
		return count
	default:
		return 0
	}
}

// MaxBranching returns the largest child count of any internal node in
// the tree rooted at n; a bare leaf has branching factor 0.
func MaxBranching(n Node) int {
	switch t := n.(type) {
	case *Leaf:
		return 0
	case *Internal:
		max := len(t.Children)
		for _, child := range t.Children {
			if b := MaxBranching(child); b > max {
				max = b
			}
		}
		return max
	default:
		return 0
	}
}

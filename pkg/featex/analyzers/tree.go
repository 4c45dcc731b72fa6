package analyzers

import (
	"fmt"

	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/parser"
)

// TreeDepth emits one "depth-<height>" feature per parse tree in the
// document. Documents carry one bracketed tree per line.
type TreeDepth[T Value] struct{}

// NewTreeDepth builds a tree-depth prototype.
func NewTreeDepth[T Value]() *TreeDepth[T] {
	return &TreeDepth[T]{}
}

// Tokenize implements Analyzer. A document whose trees cannot be parsed
// is a per-document error; the batch continues without it.
func (a *TreeDepth[T]) Tokenize(doc *corpus.Document, counts FeatureMap[T]) error {
	trees, err := parser.ReadTrees(doc.Content)
	if err != nil {
		return err
	}
	for _, tree := range trees {
		counts[fmt.Sprintf("depth-%d", parser.Height(tree))] += 1
	}
	return nil
}

// Clone implements Analyzer.
func (a *TreeDepth[T]) Clone() Analyzer[T] {
	c := *a
	return &c
}

// TreeBranch emits one "branch-<k>" feature per parse tree, where k is
// the tree's maximum branching factor.
type TreeBranch[T Value] struct{}

// NewTreeBranch builds a tree-branching prototype.
func NewTreeBranch[T Value]() *TreeBranch[T] {
	return &TreeBranch[T]{}
}

// Tokenize implements Analyzer.
func (a *TreeBranch[T]) Tokenize(doc *corpus.Document, counts FeatureMap[T]) error {
	trees, err := parser.ReadTrees(doc.Content)
	if err != nil {
		return err
	}
	for _, tree := range trees {
		counts[fmt.Sprintf("branch-%d", parser.MaxBranching(tree))] += 1
	}
	return nil
}

// Clone implements Analyzer.
func (a *TreeBranch[T]) Clone() Analyzer[T] {
	c := *a
	return &c
}

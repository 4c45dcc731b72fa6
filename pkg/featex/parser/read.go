package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// ReadTree parses a bracketed tree expression such as
//
//	(S (NP (DT the) (NN dog)) (VP barks))
//
// A group holding a label over exactly one bare word, like (NN dog), is
// a pre-terminal and becomes a single Leaf; every other group is an
// internal node whose first element is the category label. Internal
// nodes without children are rejected: a childless internal node has no
// defined height, so it is a construction-time error rather than a
// traversal concern.
func ReadTree(s string) (Node, error) {
	p := &treeReader{input: []rune(s)}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: trailing input after tree at offset %d", internalerr.ErrMalformedDoc, p.pos)
	}
	return node, nil
}

// ReadTrees parses one tree per non-empty line of s.
func ReadTrees(s string) ([]Node, error) {
	var trees []Node
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tree, err := ReadTree(line)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

type treeReader struct {
	input []rune
	pos   int
}

func (p *treeReader) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *treeReader) parseNode() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("%w: unexpected end of tree", internalerr.ErrMalformedDoc)
	}

	if p.input[p.pos] != '(' {
		label := p.parseWord()
		if label == "" {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", internalerr.ErrMalformedDoc, p.input[p.pos], p.pos)
		}
		return &Leaf{Label: label}, nil
	}

	p.pos++ // consume '('
	p.skipSpace()
	label := p.parseWord()
	if label == "" {
		return nil, fmt.Errorf("%w: internal node missing label at offset %d", internalerr.ErrMalformedDoc, p.pos)
	}

	var children []Node
	bareWords := 0
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("%w: unbalanced parentheses", internalerr.ErrMalformedDoc)
		}
		if p.input[p.pos] == ')' {
			p.pos++
			break
		}
		bare := p.input[p.pos] != '('
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if bare {
			bareWords++
		}
		children = append(children, child)
	}

	if len(children) == 0 {
		return nil, fmt.Errorf("%w: internal node %q has no children", internalerr.ErrMalformedDoc, label)
	}
	if len(children) == 1 && bareWords == 1 {
		// Pre-terminal: the category and its word are one leaf
		return &Leaf{Label: label, Word: children[0].(*Leaf).Label}, nil
	}
	return &Internal{Label: label, Children: children}, nil
}

func (p *treeReader) parseWord() string {
	start := p.pos
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		if r == '(' || r == ')' || unicode.IsSpace(r) {
			break
		}
		p.pos++
	}
	return string(p.input[start:p.pos])
}

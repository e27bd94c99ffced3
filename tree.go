package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyForest is returned by BuildTree when the forest holds no nodes at
// all, i.e. the message had no symbols.  It signals bad caller input, not a
// library fault; retrying with the same input cannot succeed.
var ErrEmptyForest = errors.New("huffman: empty forest")

// BuildTree collapses the forest into a single Huffman tree by repeatedly
// extracting the two lightest nodes and merging them, and returns the root.
// The forest is consumed: it is empty when BuildTree returns.
//
// A forest holding a single leaf returns that leaf directly as the root, so
// a message with exactly one distinct symbol yields a tree with no internal
// nodes.  The codeword derived from such a tree is the empty string; see
// BuildCodeTable.
func BuildTree(f *Forest) (Node, error) {
	if f.Len() == 0 {
		return nil, fmt.Errorf("cannot build a Huffman tree: %w", ErrEmptyForest)
	}
	for f.Len() > 1 {
		t1 := f.PopMin()
		t2 := f.PopMin()
		f.Push(NewInternal(t1, t2))
	}
	return f.PopMin(), nil
}

// CodesForMessage runs the whole pipeline for one message: frequency
// counting, forest construction, tree building, and codeword derivation.
// It fails with ErrEmptyForest when the message is empty.
func CodesForMessage(message []Symbol) (CodeTable, error) {
	root, err := BuildTree(BuildForest(CountFrequencies(message)))
	if err != nil {
		return nil, err
	}
	return BuildCodeTable(root), nil
}

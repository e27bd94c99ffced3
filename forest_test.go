package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildForest_OneLeafPerSymbol(t *testing.T) {
	f := BuildForest(FrequencyTable{'a': 3, 'b': 1, 'c': 4})
	require.Equal(t, 3, f.Len())
}

func TestBuildForest_SkipsZeroCounts(t *testing.T) {
	f := BuildForest(FrequencyTable{'a': 3, 'b': 0, 'c': 1})
	require.Equal(t, 2, f.Len())
}

func TestBuildForest_Empty(t *testing.T) {
	require.Equal(t, 0, BuildForest(FrequencyTable{}).Len())
	require.Equal(t, 0, BuildForest(nil).Len())
}

func TestBuildForest_SingleEntry(t *testing.T) {
	f := BuildForest(FrequencyTable{'x': 7})
	require.Equal(t, 1, f.Len())

	leaf, ok := f.PopMin().(*Leaf)
	require.True(t, ok)
	require.Equal(t, Symbol('x'), leaf.Symbol())
	require.Equal(t, uint64(7), leaf.Weight())
	require.Equal(t, 0, f.Len())
}

func TestForest_PopMinOrder(t *testing.T) {
	f := BuildForest(FrequencyTable{'a': 5, 'b': 2, 'c': 9, 'd': 2})

	var symbols []Symbol
	var weights []uint64
	for f.Len() > 0 {
		leaf := f.PopMin().(*Leaf)
		symbols = append(symbols, leaf.Symbol())
		weights = append(weights, leaf.Weight())
	}

	// 'b' and 'd' tie at weight 2; 'b' was inserted first, so it pops first.
	require.Equal(t, []Symbol{'b', 'd', 'a', 'c'}, symbols)
	require.Equal(t, []uint64{2, 2, 5, 9}, weights)
}

func TestForest_PushMixedNodes(t *testing.T) {
	var f Forest
	f.Push(NewLeaf('a', 4))
	f.Push(NewInternal(NewLeaf('b', 1), NewLeaf('c', 1)))
	f.Push(NewLeaf('d', 2))
	require.Equal(t, 3, f.Len())

	require.Equal(t, uint64(2), f.PopMin().Weight())
	require.Equal(t, uint64(2), f.PopMin().Weight())
	require.Equal(t, uint64(4), f.PopMin().Weight())
}

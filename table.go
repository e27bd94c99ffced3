package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol with a nonzero frequency to its codeword: the
// string of '0' and '1' digits naming the path from the root to the symbol's
// leaf.  Because every codeword ends at a distinct leaf, no codeword is a
// proper prefix of another.
type CodeTable map[Symbol]string

// BuildCodeTable derives the codeword for every leaf under root using a
// pre-order traversal: '0' for each left step, '1' for each right step, left
// before right.  The tree is not modified, and traversing the same tree
// again yields an equal table.
//
// If root is itself a leaf (one distinct symbol in the message), the table
// holds a single empty codeword.  The derivation does not invent a bit for
// this case; callers feeding an actual bit encoder must handle the
// degenerate table themselves.
func BuildCodeTable(root Node) CodeTable {
	assert.Assertf(root != nil, "BuildCodeTable called with a nil root")
	table := make(CodeTable)
	path := make([]byte, 0, 32)
	appendCodes(table, root, path)
	return table
}

// appendCodes walks the subtree at n.  path is a shared append/truncate
// buffer; every recursive call leaves it exactly as it found it.
func appendCodes(table CodeTable, n Node, path []byte) {
	if n == nil {
		return
	}
	switch n := n.(type) {
	case *Leaf:
		table[n.Symbol()] = string(path)
	case *Internal:
		appendCodes(table, n.Left(), append(path, '0'))
		appendCodes(table, n.Right(), append(path, '1'))
	}
}

// Symbols returns the table's symbols in ascending order.
func (t CodeTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// EncodedBits returns the number of bits needed to encode a message with the
// given frequencies using this table, i.e. the sum over all symbols of
// frequency times codeword length.
func (t CodeTable) EncodedBits(freqs FrequencyTable) uint64 {
	var total uint64
	for symbol, code := range t {
		total += freqs[symbol] * uint64(len(code))
	}
	return total
}

// Dump writes a human-readable rendering of the table to the given writer,
// one "'<symbol>' --> <codeword>" line per entry in ascending symbol order.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "%q --> %s\n", rune(symbol), t[symbol])
	}
	return buf.WriteTo(w)
}

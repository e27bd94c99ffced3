package huffman

import (
	"math"

	"golang.org/x/exp/slices"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// FrequencyTable maps each Symbol to the number of times it occurs in a
// message.  A symbol has an entry if and only if its count is nonzero; the
// sum of all counts equals the length of the counted message.
type FrequencyTable map[Symbol]uint64

// CountFrequencies scans a message and returns the occurrence count for each
// distinct Symbol.  An empty or nil message yields an empty table.
func CountFrequencies(message []Symbol) FrequencyTable {
	table := make(FrequencyTable)
	for _, symbol := range message {
		table[symbol]++
	}
	return table
}

// CountBytes is a convenience wrapper for messages where each byte is one
// Symbol.
func CountBytes(message []byte) FrequencyTable {
	table := make(FrequencyTable)
	for _, b := range message {
		table[Symbol(b)]++
	}
	return table
}

// Symbols returns the table's symbols in ascending order.
func (t FrequencyTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Package huffman derives prefix-free binary code tables from symbol
// frequencies using the classic greedy Huffman tree construction.  Symbols
// that occur more often receive shorter codewords, minimizing the expected
// encoded length of the message.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952
//
package huffman

package huffman

// Node is a node in a Huffman tree: either a *Leaf carrying one Symbol, or
// an *Internal merge point owning two subtrees.  The two variants are
// distinct types, so "this node has no symbol" is a fact about the type
// rather than a reserved symbol value.
type Node interface {
	// Weight is the symbol's frequency for a leaf, or the sum of the
	// subtree leaves' frequencies for an internal node.
	Weight() uint64

	isNode()
}

// Leaf is a tree node representing exactly one Symbol.
type Leaf struct {
	weight uint64
	symbol Symbol
}

// NewLeaf constructs a Leaf for a symbol with the given frequency.
func NewLeaf(symbol Symbol, weight uint64) *Leaf {
	return &Leaf{weight: weight, symbol: symbol}
}

// Weight is the frequency of the leaf's symbol.
func (l *Leaf) Weight() uint64 {
	return l.weight
}

// Symbol is the symbol this leaf encodes.
func (l *Leaf) Symbol() Symbol {
	return l.symbol
}

func (l *Leaf) isNode() {}

// Internal is a tree node representing the merge of two subtrees.  It owns
// both children exclusively; its weight is the sum of theirs.
type Internal struct {
	weight uint64
	left   Node
	right  Node
}

// NewInternal constructs an Internal node over two subtrees.
func NewInternal(left, right Node) *Internal {
	return &Internal{
		weight: left.Weight() + right.Weight(),
		left:   left,
		right:  right,
	}
}

// Weight is the sum of the weights of all leaves under this node.
func (n *Internal) Weight() uint64 {
	return n.weight
}

// Left is the subtree reached by appending '0' to the codeword path.
func (n *Internal) Left() Node {
	return n.left
}

// Right is the subtree reached by appending '1' to the codeword path.
func (n *Internal) Right() Node {
	return n.right
}

func (n *Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

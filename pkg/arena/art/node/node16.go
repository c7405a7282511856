package node

import (
	"github.com/arthane/artd/internal/debug"
	"github.com/arthane/artd/pkg/arena"
	"github.com/arthane/artd/pkg/arena/art/simd"
	"github.com/arthane/artd/pkg/xunsafe"
)

// Node16 represents a medium-sized node in an adaptive radix tree, capable of
// storing up to 16 keyed children plus one terminal child. It serves as an
// intermediate node type that balances memory efficiency with lookup
// performance for nodes that have outgrown Node4.
//
// Node16 uses a sorted array representation similar to Node4 but with increased
// capacity, plus a dedicated Zero slot for the terminal child.
//
// SIMD Optimization:
//   - Uses AVX2 instructions for key search operations on AMD64
//   - Falls back to scalar implementation on other architectures
//
// Generic Type Parameter:
//   - T: The type of values stored in leaf nodes of this tree
type Node16[T any] struct {
	// Base embeds the common functionality shared by all node types.
	Base

	// Keys stores the key bytes in ascending order.
	//
	// Only the first NumChildren elements contain valid keys.
	Keys [16]byte

	// Children stores the child node references corresponding to Keys.
	Children [16]Ref[T]

	// Zero is the child reached when a key is exhausted at this node.
	Zero Ref[T]
}

// Ensure Node16 implements the Node interface at compile time.
var _ Node[any] = (*Node16[any])(nil)

// Type returns the node type identifier for Node16.
func (n *Node16[T]) Type() Type { return TypeNode16 }

// Full returns true if the node has reached its maximum capacity of 16 keyed children.
func (n *Node16[T]) Full() bool { return n.NumChildren == 16 }

// Ref returns a reference to this Node16 instance.
func (n *Node16[T]) Ref() Ref[T] { return NewRef[T](TypeNode16, n) }

// Minimum returns the leftmost leaf node in the subtree rooted at this node.
func (n *Node16[T]) Minimum() *Leaf[T] {
	if !n.Zero.Empty() {
		return n.Zero.AsNode().Minimum()
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

// Maximum returns the rightmost leaf node in the subtree rooted at this node.
func (n *Node16[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		if !n.Zero.Empty() {
			return n.Zero.AsNode().Maximum()
		}

		return nil
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

// FindChild returns the child node for the given edge.
//
// The search is SIMD-accelerated on AMD64 for keyed edges.
func (n *Node16[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		if n.Zero.Empty() {
			return nil
		}

		return &n.Zero
	}

	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, byte(b)); i >= 0 {
		return &n.Children[i]
	}

	return nil
}

// AddChild adds a child node to the node while maintaining key ordering.
//
// If b is TerminalEdge, child replaces the terminal child instead, which
// never counts against NumChildren.
func (n *Node16[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.Zero = child.Ref()

		return
	}

	k := byte(b)

	if c := n.FindChild(b); c != nil {
		*c = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node must not be full")

	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, k)
	if i >= 0 {
		copy(n.Keys[i+1:], n.Keys[i:])
		copy(n.Children[i+1:], n.Children[i:])
	} else {
		i = n.NumChildren
	}

	n.Keys[i] = k
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// Grow converts this Node16 to a Node48 when it reaches capacity.
func (n *Node16[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node48[T]{Base: n.Base, Zero: n.Zero})

	copy(newNode.Children[:], n.Children[:n.NumChildren])

	for i := 0; i < n.NumChildren; i++ {
		newNode.Keys[n.Keys[i]] = byte(i + 1)
	}

	return newNode
}

// RemoveChild removes a child node from the node.
func (n *Node16[T]) RemoveChild(b int, child *Ref[T]) {
	if b < 0 {
		if n.Zero == *child {
			n.Zero = 0
		}

		return
	}

	pos := xunsafe.AddrOf(child).Sub(xunsafe.AddrOf(&n.Children[0]))

	debug.Assert(pos < n.NumChildren, "child must be in the node")

	copy(n.Keys[pos:], n.Keys[pos+1:])
	copy(n.Children[pos:], n.Children[pos+1:])

	n.NumChildren--
}

// Shrink shrinks the node to a Node4 if it carries fewer than 3 children in
// total (keyed children plus the terminal child, if any).
func (n *Node16[T]) Shrink(a arena.AllocatorExt) Node[T] {
	total := n.NumChildren
	if !n.Zero.Empty() {
		total++
	}

	if total >= 3 {
		return n
	}

	newNode := arena.New(a, Node4[T]{Base: n.Base, Zero: n.Zero})

	copy(newNode.Keys[:], n.Keys[:n.NumChildren])
	copy(newNode.Children[:], n.Children[:n.NumChildren])

	arena.Free(a, n)

	return newNode
}

// Release frees all memory associated with this Node16 instance.
func (n *Node16[T]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}

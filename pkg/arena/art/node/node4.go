package node

import (
	"github.com/arthane/artd/internal/debug"
	"github.com/arthane/artd/pkg/arena"
	"github.com/arthane/artd/pkg/xunsafe"
)

// Node4 represents the smallest node type in an adaptive radix tree, capable of
// storing up to 4 keyed children plus one terminal child. It is the entry point
// for most tree operations and provides the most memory-efficient storage for
// nodes with few children.
//
// Node4 uses a simple linear array representation where:
// - Keys are stored in ascending order and are searched linearly
// - Children are stored in the same order as their corresponding keys
// - Both arrays have a fixed size of 4 elements
// - Zero holds the child reached when a key is exhausted at this node
//
// This design prioritizes memory efficiency over lookup performance for small
// node counts, making it ideal for sparse trees or tree nodes near the leaves.
//
// Performance Characteristics:
//   - Lookup: O(n) where n ≤ 4 (linear search)
//   - Insertion: O(n) with shifting for sorted order
//   - Growth: Automatic conversion to Node16 when full
//
// Generic Type Parameter:
//   - T: The type of values stored in leaf nodes of this tree
type Node4[T any] struct {
	// Base embeds the common functionality shared by all node types.
	Base

	// Keys stores the key bytes in ascending order.
	//
	// Only the first NumChildren elements contain valid keys, maintained in
	// sorted order for efficient operations.
	Keys [4]byte

	// Children stores the child node references corresponding to Keys.
	//
	// Children[i] corresponds to Keys[i] for all valid indices.
	Children [4]Ref[T]

	// Zero is the child reached when a key is exhausted at this node.
	Zero Ref[T]
}

// Ensure Node4 implements the Node interface at compile time.
var _ Node[any] = (*Node4[any])(nil)

// Type returns the node type identifier for Node4.
func (n *Node4[T]) Type() Type { return TypeNode4 }

// Full returns true if the node has reached its maximum capacity of 4 keyed children.
//
// When this returns true, the node must be grown to a Node16 with Grow before
// a child with a new key byte is added; AddChild does not grow the node.
func (n *Node4[T]) Full() bool { return n.NumChildren == 4 }

// Ref returns a reference to this Node4 instance.
func (n *Node4[T]) Ref() Ref[T] { return NewRef[T](TypeNode4, n) }

// Minimum returns the leftmost leaf node in the subtree rooted at this node.
//
// The terminal child, if present, always sorts before any keyed child.
func (n *Node4[T]) Minimum() *Leaf[T] {
	if !n.Zero.Empty() {
		return n.Zero.AsNode().Minimum()
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

// Maximum returns the rightmost leaf node in the subtree rooted at this node.
func (n *Node4[T]) Maximum() *Leaf[T] {
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
// Parameters:
//   - b: The key byte to search for, or TerminalEdge for the terminal child.
func (n *Node4[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		if n.Zero.Empty() {
			return nil
		}

		return &n.Zero
	}

	k := byte(b)

	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == k {
			return &n.Children[i]
		}
	}

	return nil
}

// AddChild adds a child node to the node while maintaining key ordering.
//
// The method inserts the new key in sorted order by shifting existing keys
// and children to make room. If b is TerminalEdge, child replaces the
// terminal child instead, which never counts against NumChildren.
//
// Precondition: For keyed edges, the node must not be Full() unless b
// already has a child.
func (n *Node4[T]) AddChild(b int, child AsRef[T]) {
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

	var i int

	for ; i < n.NumChildren; i++ {
		if k < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:], n.Keys[i:])
	copy(n.Children[i+1:], n.Children[i:])

	n.Keys[i] = k
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// Grow converts this Node4 to a Node16 when it reaches capacity.
func (n *Node4[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node16[T]{Base: n.Base, Zero: n.Zero})

	copy(newNode.Keys[:], n.Keys[:n.NumChildren])
	copy(newNode.Children[:], n.Children[:n.NumChildren])

	return newNode
}

// RemoveChild removes a child node from the node.
func (n *Node4[T]) RemoveChild(b int, child *Ref[T]) {
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

// Shrink collapses this node into its single remaining child, if any.
//
// A Node4 can be collapsed when it carries exactly one child in total
// (counting the terminal child). If that child is a leaf, it is returned
// directly. If it is an internal node, the node's prefix is folded into
// the child's prefix before the child is returned; no edge byte is folded
// in when the surviving child is the terminal child, since the terminal
// edge consumes no key byte.
func (n *Node4[T]) Shrink(a arena.AllocatorExt) Node[T] {
	hasZero := !n.Zero.Empty()
	total := n.NumChildren
	if hasZero {
		total++
	}

	if total != 1 {
		return n
	}

	var child Ref[T]
	var edge byte
	var foldEdge bool

	if hasZero {
		child = n.Zero
	} else {
		child = n.Children[0]
		edge = n.Keys[0]
		foldEdge = true
	}

	if !child.IsLeaf() {
		c := child.AsNode()

		if foldEdge {
			n.Partial = n.Partial.AppendOne(a, edge)
		}

		if p := c.Prefix(); p.Len() > 0 {
			n.Partial = n.Partial.Append(a, p.Raw()...)
		}

		c.Prefix().Release(a)
		c.SetPrefix(n.Partial)
		child = c.Ref()
	} else {
		n.Partial.Release(a)
	}

	arena.Free(a, n)

	return child.AsNode()
}

// Release releases the node.
func (n *Node4[T]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}

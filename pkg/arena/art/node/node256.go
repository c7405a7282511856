package node

import (
	"github.com/arthane/artd/pkg/arena"
)

// Node256 represents the largest node type in an adaptive radix tree, capable
// of storing up to 256 keyed children (one for each possible byte value) plus
// one terminal child. It is the final destination for nodes that have grown
// beyond the capacity of smaller node types.
//
// Node256 uses a direct array representation where each possible byte value
// (0-255) directly maps to a child reference, giving O(1) lookup at the cost
// of the largest memory footprint among the node types.
//
// Generic Type Parameter:
//   - T: The type of values stored in leaf nodes of this tree
type Node256[T any] struct {
	// Base embeds the common functionality shared by all node types.
	Base

	// Children stores child node references in a direct array mapping.
	//
	// A zero value indicates "no child" for that byte value.
	Children [256]Ref[T]

	// Zero is the child reached when a key is exhausted at this node.
	Zero Ref[T]
}

// Ensure Node256 implements the Node interface at compile time.
var _ Node[any] = (*Node256[any])(nil)

// Type returns the node type identifier for Node256.
func (n *Node256[T]) Type() Type { return TypeNode256 }

// Full returns true if the node has reached its maximum capacity of 256 keyed children.
func (n *Node256[T]) Full() bool { return n.NumChildren == 256 }

// Ref returns a reference to this Node256 instance.
func (n *Node256[T]) Ref() Ref[T] { return NewRef[T](TypeNode256, n) }

// Minimum returns the leftmost leaf node in the subtree rooted at this node.
func (n *Node256[T]) Minimum() *Leaf[T] {
	if !n.Zero.Empty() {
		return n.Zero.AsNode().Minimum()
	}

	for i := 0; i < 256; i++ {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Minimum()
		}
	}

	return nil
}

// Maximum returns the rightmost leaf node in the subtree rooted at this node.
func (n *Node256[T]) Maximum() *Leaf[T] {
	for i := 255; i >= 0; i-- {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Maximum()
		}
	}

	if !n.Zero.Empty() {
		return n.Zero.AsNode().Maximum()
	}

	return nil
}

// FindChild returns the child node for the given edge.
//
// Parameters:
//   - b: The key byte to search for (0-255), or TerminalEdge for the
//     terminal child.
func (n *Node256[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		if n.Zero.Empty() {
			return nil
		}

		return &n.Zero
	}

	k := byte(b)

	if !n.Children[k].Empty() {
		return &n.Children[k]
	}

	return nil
}

// AddChild adds a child node to the node.
//
// If a child with the same edge already exists, it is replaced without
// affecting NumChildren.
func (n *Node256[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.Zero = child.Ref()

		return
	}

	k := byte(b)

	if n.Children[k].Empty() {
		n.NumChildren++
	}

	n.Children[k] = child.Ref()
}

// Grow is a no-op for Node256 as it is the largest node type.
func (n *Node256[T]) Grow(arena.Allocator) Node[T] {
	return n
}

// RemoveChild removes a child node from the node.
func (n *Node256[T]) RemoveChild(b int, child *Ref[T]) {
	if b < 0 {
		if n.Zero == *child {
			n.Zero = 0
		}

		return
	}

	k := byte(b)

	n.Children[k] = 0
	n.NumChildren--
}

// Shrink shrinks the node to a Node48 if it carries fewer than 37 children
// in total (keyed children plus the terminal child, if any).
func (n *Node256[T]) Shrink(a arena.AllocatorExt) Node[T] {
	total := n.NumChildren
	if !n.Zero.Empty() {
		total++
	}

	if total >= 37 {
		return n
	}

	newNode := arena.New(a, Node48[T]{Base: n.Base, Zero: n.Zero})

	var pos byte
	for i := 0; i < 256; i++ {
		if !n.Children[i].Empty() {
			newNode.Children[pos] = n.Children[i]
			newNode.Keys[i] = pos + 1
			pos++
		}
	}

	arena.Free(a, n)

	return newNode
}

// Release frees all memory associated with this Node256 instance.
func (n *Node256[T]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}

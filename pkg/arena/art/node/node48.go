package node

import (
	"github.com/arthane/artd/internal/debug"
	"github.com/arthane/artd/pkg/arena"
	"github.com/arthane/artd/pkg/arena/art/simd"
)

// Node48 represents a node in an adaptive radix tree that can store up to 48
// keyed children plus one terminal child.
//
// Node48 uses a sparse array representation where:
// - Keys[byte] stores the index into the Children array (1-based indexing)
// - Children stores the actual child node references
// - A key byte maps to a child through Keys[byte] -> Children[Keys[byte]-1]
// - Zero holds the child reached when a key is exhausted at this node
//
// Generic Type Parameter:
//   - T: The type of values stored in leaf nodes of this tree
type Node48[T any] struct {
	// Base embeds the common functionality shared by all node types.
	Base

	// Keys maps key bytes to indices in the Children array.
	//
	// A value of 0 indicates "no child" for that key byte; non-zero values
	// are 1-based indices into the Children array.
	Keys [256]byte

	// Children stores the actual child node references.
	//
	// An entry is in use when some Keys value refers to it. RemoveChild can
	// leave unused entries between used ones; AddChild fills them again.
	Children [48]Ref[T]

	// Zero is the child reached when a key is exhausted at this node.
	Zero Ref[T]
}

// Ensure Node48 implements the Node interface at compile time.
var _ Node[any] = (*Node48[any])(nil)

// Type returns the node type identifier for Node48.
func (n *Node48[T]) Type() Type { return TypeNode48 }

// Full returns true if the node has reached its maximum capacity of 48 keyed children.
func (n *Node48[T]) Full() bool { return n.NumChildren == 48 }

// Ref returns a reference to this Node48 instance.
func (n *Node48[T]) Ref() Ref[T] { return NewRef[T](TypeNode48, n) }

// Minimum returns the leftmost leaf node in the subtree rooted at this node.
func (n *Node48[T]) Minimum() *Leaf[T] {
	if !n.Zero.Empty() {
		return n.Zero.AsNode().Minimum()
	}

	if n.NumChildren == 0 {
		return nil
	}

	if i := simd.FindNonZeroKeyIndex(&n.Keys); i >= 0 {
		return n.Children[n.Keys[i]-1].AsNode().Minimum()
	}

	return nil
}

// Maximum returns the rightmost leaf node in the subtree rooted at this node.
func (n *Node48[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		if !n.Zero.Empty() {
			return n.Zero.AsNode().Maximum()
		}

		return nil
	}

	if i := simd.FindLastNonZeroKeyIndex(&n.Keys); i >= 0 {
		return n.Children[n.Keys[i]-1].AsNode().Maximum()
	}

	return nil
}

// FindChild returns the child node for the given edge.
//
// Keys[b] is compared explicitly against the sentinel 0 ("no child"),
// rather than relying on range checks, so a populated slot can never be
// confused with an unused one.
func (n *Node48[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		if n.Zero.Empty() {
			return nil
		}

		return &n.Zero
	}

	if idx := n.Keys[byte(b)]; idx != 0 {
		return &n.Children[idx-1]
	}

	return nil
}

// AddChild adds a child node to the node.
//
// The method finds the first available slot in the Children array and maps
// the key byte to that slot using 1-based indexing, so a key byte of 0 can
// be distinguished from "no child" (also 0). If b is TerminalEdge, child
// replaces the terminal child instead.
func (n *Node48[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.Zero = child.Ref()

		return
	}

	k := byte(b)

	if idx := n.Keys[k]; idx != 0 {
		n.Children[idx-1] = child.Ref()
		return
	}

	debug.Assert(!n.Full(), "node must not be full")

	var i byte
	for ; i < 48; i++ {
		if n.Children[i] == 0 {
			break
		}
	}

	n.Keys[k] = i + 1
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// Grow converts this Node48 to a Node256 when it reaches capacity.
func (n *Node48[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node256[T]{Base: n.Base, Zero: n.Zero})

	for i := 0; i < 256; i++ {
		if n.Keys[i] != 0 {
			newNode.Children[i] = n.Children[n.Keys[i]-1]
		}
	}

	return newNode
}

// RemoveChild removes a child node from the node.
func (n *Node48[T]) RemoveChild(b int, child *Ref[T]) {
	if b < 0 {
		if n.Zero == *child {
			n.Zero = 0
		}

		return
	}

	k := byte(b)

	idx := n.Keys[k]
	if idx == 0 {
		return
	}

	n.Keys[k] = 0
	n.Children[idx-1] = 0
	n.NumChildren--
}

// Shrink shrinks the node to a Node16 if it carries fewer than 12 children
// in total (keyed children plus the terminal child, if any).
func (n *Node48[T]) Shrink(a arena.AllocatorExt) Node[T] {
	total := n.NumChildren
	if !n.Zero.Empty() {
		total++
	}

	if total >= 12 {
		return n
	}

	newNode := arena.New(a, Node16[T]{Base: n.Base, Zero: n.Zero})

	var child byte
	for i := 0; i < 256; i++ {
		if pos := n.Keys[i]; pos != 0 {
			newNode.Keys[child] = byte(i)
			newNode.Children[child] = n.Children[pos-1]
			child++
		}
	}

	arena.Free(a, n)

	return newNode
}

// Release frees all memory associated with this Node48 instance.
func (n *Node48[T]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}

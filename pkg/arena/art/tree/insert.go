package tree

import (
	"github.com/arthane/artd/internal/debug"
	"github.com/arthane/artd/pkg/arena"
	"github.com/arthane/artd/pkg/arena/art/node"
	"github.com/arthane/artd/pkg/arena/slice"
)

// RecursiveInsert inserts leaf into the subtree rooted at ref.
//
// If a leaf with the same key already exists, its value is returned and,
// when replace is true, overwritten in place; the tree keeps exactly one
// leaf per distinct key either way. Otherwise nil is returned and the new
// leaf is spliced into the tree.
func RecursiveInsert[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	if ref.Empty() {
		ref.Replace(leaf)

		return nil
	}

	if ref.IsLeaf() {
		return insertToLeaf(a, ref, leaf, depth, replace)
	}

	return insertToNode(a, ref, leaf, depth, replace)
}

func insertToLeaf[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	curr := ref.AsLeaf()

	debug.Assert(curr != nil, "current node must be a leaf")

	// Keys match: keep one leaf and replace its value per policy.
	if slice.Equal(curr.Key, leaf.Key) {
		old := curr.Value

		if replace {
			curr.Value = leaf.Value
		}

		return &old
	}

	newNode := arena.New(a, node.Node4[T]{})

	if i := LongestCommonPrefix(leaf.Key, curr.Key, depth); i > depth {
		newNode.Partial = leaf.Key.Slice(depth, i)

		depth = i
	}

	addEdge(newNode, leaf.Key, depth, leaf)
	addEdge(newNode, curr.Key, depth, curr)

	ref.Replace(newNode)

	return nil
}

func insertToNode[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	curr := ref.AsNode()

	debug.Assert(curr != nil, "current node must be a node")

	if partial := curr.Prefix(); !partial.Empty() {
		diff := PrefixMismatch(curr, leaf.Key.Raw(), depth)

		if diff < partial.Len() {
			// The stored prefix and the key disagree partway through: split
			// off the common portion into a new intermediate Node4 holding
			// both the old subtree and the new leaf.
			splitNode := arena.New(a, node.Node4[T]{})
			splitNode.Partial = partial.Slice(0, diff)

			splitNode.AddChild(int(partial.CheckedLoad(diff).UnwrapOrDefault()), curr)
			curr.SetPrefix(partial.Slice(diff+1, partial.Len()))

			addEdge(splitNode, leaf.Key, depth+diff, leaf)

			ref.Replace(splitNode)

			return nil
		}

		depth += partial.Len()
	}

	b := node.TerminalEdge
	if depth < leaf.Key.Len() {
		b = int(leaf.Key.CheckedLoad(depth).UnwrapOrDefault())
	}

	if child := curr.FindChild(b); child != nil {
		return RecursiveInsert(a, child, leaf, depth+1, replace)
	}

	addChild(a, b, ref, leaf)

	return nil
}

// addEdge adds child to parent keyed on the byte of key at depth, or as the
// terminal child when depth has reached the end of key.
func addEdge[T any](parent *node.Node4[T], key slice.Slice[byte], depth int, child node.AsRef[T]) {
	b := node.TerminalEdge
	if depth < key.Len() {
		b = int(key.CheckedLoad(depth).UnwrapOrDefault())
	}

	parent.AddChild(b, child)
}

// addChild adds child to curr under edge b, growing curr to the next node
// variant first if it is already full.
func addChild[T any](a arena.Allocator, b int, curr *node.Ref[T], child node.AsRef[T]) {
	n := curr.AsNode()

	if n.Full() && n.FindChild(b) == nil {
		newNode := n.Grow(a)
		newNode.AddChild(b, child)

		curr.Replace(newNode)

		return
	}

	n.AddChild(b, child)
}

package node_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/arthane/artd/pkg/arena"
	. "github.com/arthane/artd/pkg/arena/art/node"
	"github.com/arthane/artd/pkg/arena/slice"
)

func TestLeaf(t *testing.T) {
	Convey("Given a Leaf", t, func() {
		a := &arena.Arena{}

		Convey("When creating a new leaf", func() {
			Convey("With simple key and value", func() {
				leaf := NewLeaf(a, []byte("hello"), 123)

				So(leaf.Type(), ShouldEqual, TypeLeaf)
				So(leaf.Full(), ShouldBeTrue)
				So(leaf.Key.Raw(), ShouldResemble, []byte("hello"))
				So(leaf.Value, ShouldEqual, 123)

				ref := leaf.Ref()
				So(ref.Type(), ShouldEqual, TypeLeaf)
				So(ref.IsLeaf(), ShouldBeTrue)
				So(ref.AsLeaf(), ShouldEqual, leaf)
			})

			Convey("With an empty or nil key", func() {
				empty := NewLeaf(a, []byte{}, 456)
				So(empty.Key.Len(), ShouldEqual, 0)

				nilKeyed := NewLeaf(a, nil, 789)
				So(nilKeyed.Key.Len(), ShouldEqual, 0)
			})

			Convey("With a long key", func() {
				longKey := make([]byte, 1000)
				for i := range longKey {
					longKey[i] = byte(i % 256)
				}

				leaf := NewLeaf(a, longKey, 999)
				So(leaf.Key.Len(), ShouldEqual, 1000)
				So(leaf.Key.Raw(), ShouldResemble, longKey)
			})
		})

		Convey("When checking prefix operations", func() {
			leaf := NewLeaf(a, []byte("hello"), 123)

			So(leaf.Prefix().Raw(), ShouldResemble, []byte("hello"))

			newPrefix := slice.FromString(a, "world")
			leaf.SetPrefix(newPrefix)
			So(leaf.Key.Raw(), ShouldResemble, []byte("world"))
		})

		Convey("When checking minimum and maximum", func() {
			leaf := NewLeaf(a, []byte("hello"), 123)

			So(leaf.Minimum(), ShouldEqual, leaf)
			So(leaf.Maximum(), ShouldEqual, leaf)
		})

		Convey("When checking child operations", func() {
			leaf := NewLeaf(a, []byte("hello"), 123)
			otherLeaf := NewLeaf(a, []byte("world"), 456)
			otherRef := otherLeaf.Ref()

			So(func() { leaf.FindChild(int('h')) }, ShouldPanicWith, "leaf cannot have children")
			So(func() { leaf.AddChild(int('w'), otherLeaf) }, ShouldPanicWith, "leaf cannot have children")
			So(func() { leaf.RemoveChild(int('w'), &otherRef) }, ShouldPanicWith, "leaf cannot have children")
			So(func() { leaf.Grow(a) }, ShouldPanicWith, "leaf cannot have children")
			So(func() { leaf.Shrink(a) }, ShouldPanicWith, "leaf cannot have children")
		})

		Convey("When checking Matches", func() {
			leaf := NewLeaf(a, []byte("hello"), 123)

			So(leaf.Matches([]byte("hello")), ShouldBeTrue)
			So(leaf.Matches([]byte("world")), ShouldBeFalse)
			So(leaf.Matches([]byte("hell")), ShouldBeFalse)
			So(leaf.Matches([]byte("hello world")), ShouldBeFalse)
			So(leaf.Matches(nil), ShouldBeFalse)
			So(leaf.Matches([]byte("Hello")), ShouldBeFalse)

			emptyLeaf := NewLeaf(a, []byte{}, 456)
			So(emptyLeaf.Matches([]byte{}), ShouldBeTrue)
			So(emptyLeaf.Matches([]byte("hello")), ShouldBeFalse)
		})

		Convey("When checking MatchesPrefix", func() {
			leaf := NewLeaf(a, []byte("hello world"), 123)

			So(leaf.MatchesPrefix([]byte("hello")), ShouldBeTrue)
			So(leaf.MatchesPrefix([]byte("hello world")), ShouldBeTrue)
			So(leaf.MatchesPrefix([]byte("hello world!")), ShouldBeFalse)
			So(leaf.MatchesPrefix([]byte("world")), ShouldBeFalse)
			So(leaf.MatchesPrefix(nil), ShouldBeTrue)
		})

		Convey("When releasing the leaf", func() {
			leaf := NewLeaf(a, []byte("hello"), 123)
			leaf.Release(a)
		})
	})
}

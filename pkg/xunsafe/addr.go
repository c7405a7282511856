//go:build go1.20

package xunsafe

import (
	"fmt"
	"unsafe"

	"github.com/arthane/artd/pkg/xunsafe/layout"
)

// Addr is a typed, arithmetic-friendly address: a uintptr that knows the
// size of the T it points at, so Add and Sub scale by layout.Size[T] instead
// of raw bytes. ByteAdd, Padding and RoundUpTo work in raw bytes.
//
// The zero Addr is not a valid pointer; AssertValid panics if called on one.
type Addr[T any] uintptr

// AddrOf returns the address of p.
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// EndOf returns the address one past the last element of s.
func EndOf[T any](s []T) Addr[T] {
	return AddrOf(unsafe.SliceData(s)).Add(len(s))
}

// AssertValid converts a back into a pointer. Panics if a is zero.
func (a Addr[T]) AssertValid() *T {
	if a == 0 {
		panic(fmt.Sprintf("xunsafe: dereferenced a nil Addr[%T]", *new(T)))
	}

	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Add adds n elements worth of offset to a, scaled by the size of T.
func (a Addr[T]) Add(n int) Addr[T] {
	return a + Addr[T](n*layout.Size[T]())
}

// ByteAdd adds n raw bytes of offset to a, unscaled.
func (a Addr[T]) ByteAdd(n int) Addr[T] {
	return a + Addr[T](n)
}

// Sub returns the number of T-sized elements between a and b.
func (a Addr[T]) Sub(b Addr[T]) int {
	return int(a-b) / layout.Size[T]()
}

// Padding returns the number of bytes needed to round a up to align.
func (a Addr[T]) Padding(align int) int {
	return int(layout.Padding(uintptr(a), uintptr(align)))
}

// RoundUpTo rounds a up to the next multiple of align.
func (a Addr[T]) RoundUpTo(align int) Addr[T] {
	return Addr[T](layout.RoundUp(uintptr(a), uintptr(align)))
}

const addrSignBit uintptr = 1 << (unsafe.Sizeof(uintptr(0))*8 - 1)

// SignBit reports whether a's top bit is set.
func (a Addr[T]) SignBit() bool {
	return a&Addr[T](addrSignBit) != 0
}

// SignBitMask returns all-ones if SignBit is set, all-zeros otherwise.
func (a Addr[T]) SignBitMask() Addr[T] {
	if a.SignBit() {
		return ^Addr[T](0)
	}

	return 0
}

// ClearSignBit returns a with its top bit cleared.
func (a Addr[T]) ClearSignBit() Addr[T] {
	return a &^ Addr[T](addrSignBit)
}

// Format implements fmt.Formatter, rendering a as a hex address.
func (a Addr[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		_, _ = fmt.Fprintf(f, "%x", uintptr(a))
	default:
		_, _ = fmt.Fprintf(f, "0x%x", uintptr(a))
	}
}

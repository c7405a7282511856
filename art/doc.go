// Package art provides an in-memory, ordered associative index over
// byte-string keys backed by an Adaptive Radix Tree.
//
// Keys and values are opaque caller-owned byte slices: Insert clones both
// into arena-owned storage, Lookup hands back a zero-copy view into the
// matching leaf's stored value, and Delete hands back the removed value.
// All mutation happens in place; there is no persistence, no concurrency
// coordination beyond what the caller arranges externally, and no
// range-query cursor beyond point lookup and prefix iteration.
package art

package xunsafe

import "unsafe"

type emptyInterface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// AnyData extracts the data word of an interface value, bypassing the
// interface's type information. Used to keep the underlying allocation of
// an arbitrarily-typed value alive without caring what type it is.
func AnyData(v any) unsafe.Pointer {
	return (*emptyInterface)(unsafe.Pointer(&v)).data
}

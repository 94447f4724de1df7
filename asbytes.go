// Package asbytes exposes the memory backing any Go value as a run of
// bytes, without copying.
//
// Of returns a read-only View and MutOf returns a writable []byte. Both
// alias the value's storage directly: the length is SizeOf(v), the bytes
// are whatever the compiler laid out (field values and padding, in host
// byte order), and nothing is checked at runtime.
//
// SAFETY: the caller upholds, for as long as a view is used:
//   - v is non-nil and the value it points to is live.
//   - Either any number of read-only views exist, or exactly one mutable
//     view, never both at once. pkg/borrow can check this at runtime.
//   - Padding bytes are read as found. Their content is not defined.
//   - After writing through MutOf, the bytes form a valid T before *v is
//     used again (see AnyBitPattern).
//
// Violating these is undefined behaviour, not a reported error.
package asbytes

import "unsafe"

// Of returns a read-only view over the storage of *v.
//
// For slice types the view covers the elements of the backing array, for
// string types the string data, for interface types the dynamic value
// they hold; every other type is viewed in place.
func Of[T any](v *T) View {
	p, n := span(v)
	return View{b: unsafe.Slice((*byte)(p), n)}
}

// MutOf returns a writable view over the storage of *v. Writes are
// visible through *v immediately.
//
// The caller must hold exclusive access to *v. String data and the value
// held by an interface must never be written: either may live in
// read-only or shared runtime memory.
func MutOf[T any](v *T) []byte {
	p, n := span(v)
	return unsafe.Slice((*byte)(p), n)
}

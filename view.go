package asbytes

import (
	"bytes"
	"encoding/hex"
	"io"
)

// View is a read-only window over the bytes backing a value. The zero
// View is empty.
type View struct {
	b []byte
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// At returns the i'th byte.
func (v View) At(i int) byte {
	return v.b[i]
}

// Slice returns the sub-view [from, to).
func (v View) Slice(from, to int) View {
	return View{b: v.b[from:to:to]}
}

// Bytes returns the aliased bytes. They must not be modified.
func (v View) Bytes() []byte {
	return v.b
}

// ByteSlice returns a copy of the bytes.
func (v View) ByteSlice() []byte {
	return bytes.Clone(v.b)
}

// AppendTo appends the bytes to dst.
func (v View) AppendTo(dst []byte) []byte {
	return append(dst, v.b...)
}

func (v View) Equal(o View) bool {
	return bytes.Equal(v.b, o.b)
}

func (v View) EqualBytes(b []byte) bool {
	return bytes.Equal(v.b, b)
}

// WriteTo writes the viewed bytes to w with a single Write call.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.b)
	return int64(n), err
}

// String returns the bytes in lowercase hex.
func (v View) String() string {
	return hex.EncodeToString(v.b)
}

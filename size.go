package asbytes

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/rawbytedev/asbytes/internal/common"
)

// sliceHeader mirrors the runtime layout of a slice.
type sliceHeader struct {
	data unsafe.Pointer
	len  int
	cap  int
}

// ifaceWords mirrors the runtime layout of an interface value: a type or
// itab word followed by the data word.
type ifaceWords struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

// span locates the bytes backing *v. Slices and strings are measured by
// their current length, interfaces by their dynamic value, everything
// else by its static size.
func span[T any](v *T) (unsafe.Pointer, uintptr) {
	switch t := reflect.TypeFor[T](); t.Kind() {
	case reflect.Slice:
		h := (*sliceHeader)(unsafe.Pointer(v))
		return h.data, uintptr(h.len) * t.Elem().Size()
	case reflect.String:
		s := *(*string)(unsafe.Pointer(v))
		return unsafe.Pointer(unsafe.StringData(s)), uintptr(len(s))
	case reflect.Interface:
		iv := reflect.ValueOf(v).Elem()
		if iv.IsNil() {
			return nil, 0
		}
		dyn := iv.Elem().Type()
		w := (*ifaceWords)(unsafe.Pointer(v))
		if common.PointerShaped(dyn) {
			// the value is stored in the data word itself
			return unsafe.Pointer(&w.data), dyn.Size()
		}
		return w.data, dyn.Size()
	default:
		return unsafe.Pointer(v), unsafe.Sizeof(*v)
	}
}

// SizeOf returns the number of bytes Of(v) and MutOf(v) cover. It equals
// StaticSize[T]() unless T is a slice, string or interface type.
func SizeOf[T any](v *T) uintptr {
	_, n := span(v)
	return n
}

// StaticSize returns the compile-time size of T.
func StaticSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

var (
	bitsMu    sync.RWMutex
	bitsCache = make(map[reflect.Type]bool)
)

// AnyBitPattern reports whether every pattern of StaticSize[T]() bytes
// is a valid T, so arbitrary writes through MutOf cannot produce an
// invalid value. It is advisory only; MutOf never consults it.
func AnyBitPattern[T any]() bool {
	t := reflect.TypeFor[T]()
	bitsMu.RLock()
	ok, found := bitsCache[t]
	bitsMu.RUnlock()
	if found {
		return ok
	}

	bitsMu.Lock()
	defer bitsMu.Unlock()
	if ok, found := bitsCache[t]; found {
		return ok
	}
	ok = common.AnyBitPattern(t)
	bitsCache[t] = ok
	return ok
}

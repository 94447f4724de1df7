package common

import (
	"encoding/binary"
	"reflect"

	"golang.org/x/sys/cpu"
)

// IsFixedKind reports whether k is a fixed-size numeric or bool kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// AnyBitPattern reports whether every byte pattern of t.Size() bytes is a
// valid value of t.
func AnyBitPattern(t reflect.Type) bool {
	k := t.Kind()
	if IsFixedKind(k) {
		return k != reflect.Bool
	}
	switch k {
	case reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || AnyBitPattern(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !AnyBitPattern(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// pointers, headers and interfaces
		return false
	}
}

// PointerShaped reports whether a value of t is stored directly in the
// data word of an interface rather than behind a pointer.
func PointerShaped(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() == 1 && PointerShaped(t.Elem())
	case reflect.Struct:
		return t.NumField() == 1 && PointerShaped(t.Field(0).Type)
	default:
		return false
	}
}

// ByteOrder is a byte order that can also append.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// NativeOrder is the byte order of the host.
var NativeOrder ByteOrder = nativeOrder()

func nativeOrder() ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

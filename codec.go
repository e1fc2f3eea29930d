package dataview

import (
	"math"
	"strconv"
	"unsafe"
)

// Value enumerates the fixed-width numeric types the codec understands.
// Each member encodes to a statically known number of bytes: 1, 2, 4, 8 or
// 16. int, uint and uintptr follow the target's pointer width.
type Value interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint | uintptr |
		float32 | float64 |
		Int128 | Uint128
}

const (
	intSize     = strconv.IntSize / 8
	uintptrSize = 4 << (^uintptr(0) >> 63)
)

// Size reports the encoded width of T in bytes. Resolved per instantiation,
// never from a value at runtime.
func Size[T Value]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Decode converts the leading Size[T]() bytes of b into a value, in the byte
// order the artifact was built with. It performs no bounds checking of its
// own; the caller must supply at least Size[T]() bytes. Decoding cannot fail:
// every bit pattern is a valid T. Floats are rebuilt from their raw IEEE-754
// bits, so NaN payloads come back untouched.
func Decode[T Value](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *int16:
		*p = int16(byteOrder.Uint16(b))
	case *int32:
		*p = int32(byteOrder.Uint32(b))
	case *int64:
		*p = int64(byteOrder.Uint64(b))
	case *int:
		if intSize == 4 {
			*p = int(int32(byteOrder.Uint32(b)))
		} else {
			*p = int(byteOrder.Uint64(b))
		}
	case *uint8:
		*p = b[0]
	case *uint16:
		*p = byteOrder.Uint16(b)
	case *uint32:
		*p = byteOrder.Uint32(b)
	case *uint64:
		*p = byteOrder.Uint64(b)
	case *uint:
		if intSize == 4 {
			*p = uint(byteOrder.Uint32(b))
		} else {
			*p = uint(byteOrder.Uint64(b))
		}
	case *uintptr:
		if uintptrSize == 4 {
			*p = uintptr(byteOrder.Uint32(b))
		} else {
			*p = uintptr(byteOrder.Uint64(b))
		}
	case *float32:
		*p = math.Float32frombits(byteOrder.Uint32(b))
	case *float64:
		*p = math.Float64frombits(byteOrder.Uint64(b))
	case *Uint128:
		*p = uint128At(b)
	case *Int128:
		*p = uint128At(b).Int128()
	}
	return v
}

// Encode writes v into the leading Size[T]() bytes of b, in the byte order
// the artifact was built with. Same length contract as Decode; bytes past
// the value's width are never touched. Encoding always succeeds.
func Encode[T Value](b []byte, v T) {
	switch p := any(&v).(type) {
	case *int8:
		b[0] = byte(*p)
	case *int16:
		byteOrder.PutUint16(b, uint16(*p))
	case *int32:
		byteOrder.PutUint32(b, uint32(*p))
	case *int64:
		byteOrder.PutUint64(b, uint64(*p))
	case *int:
		if intSize == 4 {
			byteOrder.PutUint32(b, uint32(*p))
		} else {
			byteOrder.PutUint64(b, uint64(*p))
		}
	case *uint8:
		b[0] = *p
	case *uint16:
		byteOrder.PutUint16(b, *p)
	case *uint32:
		byteOrder.PutUint32(b, *p)
	case *uint64:
		byteOrder.PutUint64(b, *p)
	case *uint:
		if intSize == 4 {
			byteOrder.PutUint32(b, uint32(*p))
		} else {
			byteOrder.PutUint64(b, uint64(*p))
		}
	case *uintptr:
		if uintptrSize == 4 {
			byteOrder.PutUint32(b, uint32(*p))
		} else {
			byteOrder.PutUint64(b, uint64(*p))
		}
	case *float32:
		byteOrder.PutUint32(b, math.Float32bits(*p))
	case *float64:
		byteOrder.PutUint64(b, math.Float64bits(*p))
	case *Uint128:
		putUint128At(b, *p)
	case *Int128:
		putUint128At(b, p.Uint128())
	}
}

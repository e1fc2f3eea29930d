//go:build dataview_be

package dataview

import "encoding/binary"

// Big-endian mode. Takes precedence if dataview_native is also set.
var byteOrder = binary.BigEndian

func uint128At(b []byte) Uint128 {
	return Uint128{Hi: byteOrder.Uint64(b), Lo: byteOrder.Uint64(b[8:])}
}

func putUint128At(b []byte, v Uint128) {
	byteOrder.PutUint64(b, v.Hi)
	byteOrder.PutUint64(b[8:], v.Lo)
}

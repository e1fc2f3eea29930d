//go:build !dataview_be && !dataview_native

package dataview

import "encoding/binary"

// Little-endian is the default byte order. The dataview_be and
// dataview_native build tags select the other modes; exactly one variant of
// this file is ever compiled, so the order can never vary within one
// artifact.
var byteOrder = binary.LittleEndian

func uint128At(b []byte) Uint128 {
	return Uint128{Lo: byteOrder.Uint64(b), Hi: byteOrder.Uint64(b[8:])}
}

func putUint128At(b []byte, v Uint128) {
	byteOrder.PutUint64(b, v.Lo)
	byteOrder.PutUint64(b[8:], v.Hi)
}

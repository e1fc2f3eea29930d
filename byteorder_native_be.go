//go:build dataview_native && !dataview_be && (armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64)

package dataview

import "encoding/binary"

// Native mode on a big-endian host: most significant half first.
var byteOrder = binary.NativeEndian

func uint128At(b []byte) Uint128 {
	return Uint128{Hi: byteOrder.Uint64(b), Lo: byteOrder.Uint64(b[8:])}
}

func putUint128At(b []byte, v Uint128) {
	byteOrder.PutUint64(b, v.Hi)
	byteOrder.PutUint64(b[8:], v.Lo)
}

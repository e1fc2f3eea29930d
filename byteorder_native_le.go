//go:build dataview_native && !dataview_be && (386 || amd64 || amd64p32 || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || ppc64le || riscv64 || wasm)

package dataview

import "encoding/binary"

// Native mode on a little-endian host. The 128-bit halves follow the host
// order too: least significant half first.
var byteOrder = binary.NativeEndian

func uint128At(b []byte) Uint128 {
	return Uint128{Lo: byteOrder.Uint64(b), Hi: byteOrder.Uint64(b[8:])}
}

func putUint128At(b []byte, v Uint128) {
	byteOrder.PutUint64(b, v.Lo)
	byteOrder.PutUint64(b[8:], v.Hi)
}

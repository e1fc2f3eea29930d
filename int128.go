package dataview

// Uint128 is an unsigned 128-bit integer held as two 64-bit halves. Go has
// no native 128-bit integer, so the codec treats it as a fixed-width value
// of its own. Lo holds the least significant half.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is the signed counterpart of Uint128. The sign lives in Hi.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Int128 reinterprets the bit pattern of u as a signed 128-bit integer.
func (u Uint128) Int128() Int128 { return Int128{Lo: u.Lo, Hi: int64(u.Hi)} }

// Uint128 reinterprets the bit pattern of i as an unsigned 128-bit integer.
func (i Int128) Uint128() Uint128 { return Uint128{Lo: i.Lo, Hi: uint64(i.Hi)} }

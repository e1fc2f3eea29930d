package dataview

import "unsafe"

// Offset-addressed access, independent of any cursor state.

// ReadAt decodes a T at the given offset in b. It fails with ErrOutOfBounds
// unless the value's full byte range lies inside b; a failed read has no
// side effect. An offset equal to len(b) always fails for any positive
// width.
func ReadAt[T Value](b []byte, offset int) (T, error) {
	if offset < 0 || len(b)-offset < Size[T]() {
		var zero T
		return zero, ErrOutOfBounds
	}
	return Decode[T](b[offset:]), nil
}

// WriteAt encodes v at the given offset in b. Same bound condition as
// ReadAt; on success it overwrites exactly Size[T]() bytes starting at
// offset and touches no other byte.
func WriteAt[T Value](b []byte, offset int, v T) error {
	if offset < 0 || len(b)-offset < Size[T]() {
		return ErrOutOfBounds
	}
	Encode(b[offset:], v)
	return nil
}

// ReadAtUnchecked is ReadAt without the bound check. The caller must
// guarantee 0 <= offset && offset+Size[T]() <= len(b); violating that
// precondition is undefined behavior (an out-of-bounds memory access), not
// a reported error.
func ReadAtUnchecked[T Value](b []byte, offset int) T {
	return Decode[T](unsafeAt(b, offset, Size[T]()))
}

// WriteAtUnchecked is WriteAt without the bound check, under the same
// caller-upheld precondition as ReadAtUnchecked.
func WriteAtUnchecked[T Value](b []byte, offset int, v T) {
	Encode(unsafeAt(b, offset, Size[T]()), v)
}

// unsafeAt builds an n-byte slice at offset without consulting len(b).
// Precondition: 0 <= offset && offset+n <= len(b).
func unsafeAt(b []byte, offset, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), offset)), n)
}

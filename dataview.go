// Package dataview reads and writes fixed-width numeric values in a byte
// buffer, either at explicit offsets or through a sequential cursor.
//
// The byte order is fixed when the artifact is built: little-endian by
// default, big-endian under the dataview_be build tag, host order under
// dataview_native. It is never a per-call or per-instance choice.
//
// Checked operations report exhaustion as ErrOutOfBounds and leave the
// cursor and buffer untouched. The *Unchecked variants skip the bound check
// entirely; their precondition is the caller's obligation and violating it
// is undefined behavior.
package dataview

// View pairs a byte buffer with an advancing offset for incremental parsing
// and serialization. Every successful operation advances the offset by
// exactly the number of bytes consumed or produced; a failed operation moves
// nothing and writes nothing. The buffer never grows.
//
// A View has no internal locking and assumes a single owner; concurrent use
// across goroutines is the caller's responsibility.
type View struct {
	buf    []byte
	offset int
}

// New wraps buf in a cursor positioned at offset 0. The View borrows buf;
// it never copies or reallocates it.
func New(buf []byte) *View {
	return &View{buf: buf}
}

// Offset returns the current cursor position.
func (v *View) Offset() int { return v.offset }

// SetOffset moves the cursor to off, which may lie past the end of the
// buffer. Negative offsets are treated as zero.
func (v *View) SetOffset(off int) { v.offset = max(off, 0) }

// Remaining returns the unread tail of the buffer without moving the
// cursor. It never fails; past the end it returns an empty slice.
func (v *View) Remaining() []byte {
	return v.buf[min(v.offset, len(v.buf)):]
}

// Len returns the number of unread bytes.
func (v *View) Len() int { return len(v.Remaining()) }

// need checks that n more bytes remain and claims them, returning the
// offset they start at. The cursor does not move on failure.
func (v *View) need(n int) (int, error) {
	if n < 0 || len(v.buf)-v.offset < n {
		return 0, ErrOutOfBounds
	}
	off := v.offset
	v.offset += n
	return off, nil
}

// ReadSlice borrows the next n bytes and advances past them. The returned
// slice aliases the buffer.
func (v *View) ReadSlice(n int) ([]byte, error) {
	off, err := v.need(n)
	if err != nil {
		return nil, err
	}
	return v.buf[off : off+n], nil
}

// ReadBytes copies the next n bytes into a fresh slice and advances past
// them.
func (v *View) ReadBytes(n int) ([]byte, error) {
	s, err := v.ReadSlice(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s)
	return out, nil
}

// WriteSlice copies p into the buffer at the cursor and advances past it.
// Fails with ErrOutOfBounds if fewer than len(p) bytes remain, in which
// case no byte is written.
func (v *View) WriteSlice(p []byte) error {
	off, err := v.need(len(p))
	if err != nil {
		return err
	}
	copy(v.buf[off:], p)
	return nil
}

// ReadSliceUnchecked is ReadSlice without the bound check. The caller must
// guarantee n >= 0 and that n bytes remain; violating that precondition is
// undefined behavior.
func (v *View) ReadSliceUnchecked(n int) []byte {
	s := unsafeAt(v.buf, v.offset, n)
	v.offset += n
	return s
}

// ReadBytesUnchecked is ReadBytes without the bound check, under the same
// precondition as ReadSliceUnchecked.
func (v *View) ReadBytesUnchecked(n int) []byte {
	out := make([]byte, n)
	copy(out, v.ReadSliceUnchecked(n))
	return out
}

// Read decodes the next value of type T and advances past it. Fails with
// ErrOutOfBounds if fewer than Size[T]() bytes remain.
//
// Read is a package function rather than a method because Go methods cannot
// introduce type parameters.
func Read[T Value](v *View) (T, error) {
	off, err := v.need(Size[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v.buf[off:]), nil
}

// ReadUnchecked is Read without the bound check, under the undefined
// behavior contract of the other *Unchecked operations.
func ReadUnchecked[T Value](v *View) T {
	return Decode[T](v.ReadSliceUnchecked(Size[T]()))
}

// Write encodes x into the buffer at the cursor and advances past it. Fails
// with ErrOutOfBounds if fewer than Size[T]() bytes of capacity remain, in
// which case no byte is written; the buffer never grows to fit.
func Write[T Value](v *View, x T) error {
	off, err := v.need(Size[T]())
	if err != nil {
		return err
	}
	Encode(v.buf[off:], x)
	return nil
}

// MustRead is Read for callers that treat exhaustion as a programming
// error: it panics with ErrOutOfBounds instead of returning it.
func MustRead[T Value](v *View) T {
	x, err := Read[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// MustWrite is Write with the same panicking convention as MustRead.
func MustWrite[T Value](v *View, x T) {
	if err := Write(v, x); err != nil {
		panic(err)
	}
}

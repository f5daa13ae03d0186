package hmacsha256

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned by NewBounded when the provided data does
// not fit within the declared capacity
var ErrCapacityExceeded = errors.New("data length exceeds declared capacity")

// Bounded is a byte buffer with a declared maximum capacity and a tracked
// used length. It preserves the distinction between the bytes a caller has
// allocated and the bytes that are currently meaningful: Bytes returns only
// the used prefix, so allocated-but-unused bytes can never leak into a tag.
type Bounded struct {
	buf  []byte
	used int
}

// NewBounded allocates a buffer with the given capacity and copies data into
// it. Data that does not fit is rejected outright: a Bounded value is never
// silently truncated, and its unused capacity is never padded with caller
// bytes.
func NewBounded(capacity int, data []byte) (Bounded, error) {
	if capacity < 0 {
		return Bounded{}, fmt.Errorf("invalid capacity %d", capacity)
	}
	if len(data) > capacity {
		return Bounded{}, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, len(data), capacity)
	}
	b := Bounded{buf: make([]byte, capacity)}
	b.used = copy(b.buf, data)
	return b, nil
}

// Bytes returns the used portion of the buffer. The remaining capacity is
// not visible through the returned slice's length.
func (b Bounded) Bytes() []byte {
	return b.buf[:b.used]
}

// Len returns the number of meaningful bytes currently held.
func (b Bounded) Len() int {
	return b.used
}

// Cap returns the declared maximum capacity.
func (b Bounded) Cap() int {
	return len(b.buf)
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package chunk

// Buffer is a caller-owned byte region with a fixed capacity and a current length.
//
// The length never exceeds the capacity. A Buffer must not be used by more than one
// in-flight extraction at a time.
type Buffer struct {
	area []byte
	data int
}

// New allocates a Buffer with the given capacity.
func New(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{area: make([]byte, size)}
}

// Wrap turns an existing byte region into an empty Buffer whose capacity is len(area).
// The Buffer writes directly into area.
func Wrap(area []byte) *Buffer { return &Buffer{area: area} }

// Size returns the capacity of the buffer.
func (b *Buffer) Size() int { return len(b.area) }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return b.data }

// Room returns the number of bytes that can still be appended.
func (b *Buffer) Room() int { return len(b.area) - b.data }

// Bytes returns the held bytes. The slice aliases the buffer area and is only
// valid until the next write.
func (b *Buffer) Bytes() []byte { return b.area[:b.data] }

// String returns a copy of the held bytes as a string.
func (b *Buffer) String() string { return string(b.area[:b.data]) }

// Area returns the whole backing region, including the bytes past Len.
func (b *Buffer) Area() []byte { return b.area }

// Reset sets the length back to zero. The area is not cleared.
func (b *Buffer) Reset() { b.data = 0 }

// SetLen sets the length to n. It reports false and leaves the buffer alone when
// n is negative or larger than the capacity.
func (b *Buffer) SetLen(n int) bool {
	if n < 0 || n > len(b.area) {
		return false
	}
	b.data = n
	return true
}

// Set replaces the contents with p. When p does not fit, nothing is written and
// Set reports false.
func (b *Buffer) Set(p []byte) bool {
	if len(p) > len(b.area) {
		return false
	}
	b.data = copy(b.area, p)
	return true
}

// Append adds p after the held bytes. When p does not fit in the remaining room,
// nothing is written and Append reports false.
func (b *Buffer) Append(p []byte) bool {
	if len(p) > b.Room() {
		return false
	}
	b.data += copy(b.area[b.data:], p)
	return true
}

// AppendString is the string form of [Buffer.Append].
func (b *Buffer) AppendString(s string) bool {
	if len(s) > b.Room() {
		return false
	}
	b.data += copy(b.area[b.data:], s)
	return true
}

// AppendByte adds a single byte when there is room for it.
func (b *Buffer) AppendByte(c byte) bool {
	if b.data >= len(b.area) {
		return false
	}
	b.area[b.data] = c
	b.data++
	return true
}

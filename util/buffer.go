// Copyright (c) 2012, Suryandaru Triandana <syndtr@gmail.com>
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package util

// BitBuffer is an owned, growable byte buffer with bit-level access.
// Bit numbering is LSB0: bit pos lives in byte pos/8 at position pos%8,
// counting from the least-significant bit.
//
// Out-of-range positions grow the buffer on SetBit and read as zero on
// TestBit; callers that size the buffer up front never trigger growth.
// The zero value is an empty buffer ready for use.
type BitBuffer struct {
	buf []byte
}

// NewBitBuffer creates a zero-filled buffer of n bytes.
func NewBitBuffer(n int) *BitBuffer {
	return &BitBuffer{buf: make([]byte, n)}
}

// SetBit sets bit pos to one, growing the buffer if pos lies beyond it.
// Bits are only ever set, never cleared.
func (b *BitBuffer) SetBit(pos uint32) {
	i := int(pos / 8)
	if i >= len(b.buf) {
		b.grow(i + 1)
	}
	b.buf[i] |= 1 << (pos % 8)
}

// TestBit reports whether bit pos is set. Positions beyond the buffer
// read as zero.
func (b *BitBuffer) TestBit(pos uint32) bool {
	i := int(pos / 8)
	if i >= len(b.buf) {
		return false
	}
	return b.buf[i]&(1<<(pos%8)) != 0
}

// AppendByte appends a raw byte after the current end of the buffer.
func (b *BitBuffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// Len returns the buffer length in bytes.
func (b *BitBuffer) Len() int {
	return len(b.buf)
}

// Bytes returns the underlying bytes. The slice is owned by the buffer and
// is valid until the next mutating call.
func (b *BitBuffer) Bytes() []byte {
	return b.buf
}

// Reset resizes the buffer to n zero-filled bytes, reusing the existing
// allocation when it is large enough.
func (b *BitBuffer) Reset(n int) {
	if n <= cap(b.buf) {
		b.buf = b.buf[:n]
		clear(b.buf)
		return
	}
	b.buf = make([]byte, n)
}

func (b *BitBuffer) grow(n int) {
	if n <= cap(b.buf) {
		b.buf = b.buf[:n]
		return
	}
	nb := make([]byte, n)
	copy(nb, b.buf)
	b.buf = nb
}

package ioutil

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Cursor is a seekable reader over an in-memory buffer. It has no
// buffering layer of its own since the whole image is already resident;
// it exists purely to track a read position and to centralize the
// big-endian (COFF header) and little-endian (WE32100 operand) fixed-width
// reads both the container parser and the instruction decoder need.
//
// The buffer must outlive the Cursor; Cursor never copies it.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the wrapped buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Seek moves the cursor to an absolute position. It is an error to seek
// past the end of the buffer; seeking exactly to the end is allowed (an
// immediately following read will fail).
func (c *Cursor) Seek(abs int) error {
	if abs < 0 || abs > len(c.buf) {
		return fmt.Errorf("seek to %d out of range [0,%d]", abs, len(c.buf))
	}
	c.pos = abs
	return nil
}

// ReadExact reads exactly n bytes and advances the position by n. The
// returned slice aliases the underlying buffer; callers that need to
// outlive the next mutation of buf (there are none in this decoder) must
// copy it.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadInto copies exactly len(dst) bytes into dst and advances the
// position by that many bytes. Unlike ReadExact it never aliases the
// underlying buffer, so dst can safely come from a pool: used by the
// fixed-size record readers (section header names, symbol records) that
// scan many identically-shaped records in a loop.
func (c *Cursor) ReadInto(dst []byte) error {
	n := len(dst)
	if c.pos+n > len(c.buf) {
		return io.ErrUnexpectedEOF
	}
	copy(dst, c.buf[c.pos:c.pos+n])
	c.pos += n
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16BE() (uint16, error) {
	b, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32BE() (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Cursor) ReadI16BE() (int16, error) {
	u, err := c.ReadU16BE()
	if err != nil {
		return 0, err
	}
	return int16(u), nil
}

func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

package coff

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

// StringTable holds the long-name overflow area that follows the symbol
// table: a 4-byte length prefix (DataSize, counting itself) followed by
// DataSize-4 bytes of NUL-terminated strings. Offsets recorded elsewhere
// in the container (PrimarySymbol.Offset) are relative to the start of
// this table, i.e. they count the 4-byte length prefix as bytes 0..3.
type StringTable struct {
	data     []byte
	DataSize uint32
}

func readStringTable(c *ioutil.Cursor) (*StringTable, error) {
	sizeBytes, err := c.ReadExact(4)
	if err != nil {
		// No string table at all (truncated right after the symbol table)
		// is not an error: plenty of object files carry an empty one.
		if c.Pos() >= c.Len() {
			return &StringTable{data: []byte{0, 0, 0, 0}, DataSize: 4}, nil
		}
		return nil, errs.Wrap(errs.BadStrings, err)
	}

	size := beUint32(sizeBytes)
	if size < 4 {
		return nil, errs.Wrap(errs.BadStrings, fmt.Errorf("string table size %d smaller than its own length prefix", size))
	}

	rest, err := c.ReadExact(int(size) - 4)
	if err != nil {
		return nil, errs.Wrap(errs.BadStrings, err)
	}

	data := make([]byte, 0, size)
	data = append(data, sizeBytes...)
	data = append(data, rest...)

	return &StringTable{data: data, DataSize: size}, nil
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// NameAt returns the NUL-terminated string starting at offset (relative
// to the table's own start, length prefix included).
func (t *StringTable) NameAt(offset uint32) (string, error) {
	if offset >= uint32(len(t.data)) {
		return "", fmt.Errorf("string offset %d out of range [0,%d)", offset, len(t.data))
	}
	rest := t.data[offset:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return "", fmt.Errorf("unterminated string at offset %d", offset)
	}
	s := rest[:n]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("invalid UTF-8 in string at offset %d", offset)
	}
	return string(s), nil
}

// StringEntry is one NUL-terminated entry in the table, as listed by the
// dumper in offset order.
type StringEntry struct {
	Offset uint32
	Value  string
}

// Entries lists every NUL-terminated string in the table in ascending
// offset order, skipping the 4-byte length prefix. A run of bytes at the
// end that is not itself NUL-terminated is not reported as an entry.
func (t *StringTable) Entries() []StringEntry {
	var entries []StringEntry
	pos := uint32(4)
	for pos < uint32(len(t.data)) {
		rest := t.data[pos:]
		n := bytes.IndexByte(rest, 0)
		if n < 0 {
			break
		}
		entries = append(entries, StringEntry{Offset: pos, Value: string(rest[:n])})
		pos += uint32(n) + 1
	}
	return entries
}

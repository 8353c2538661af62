package coff

import (
	"bytes"

	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

// SectionHeader is the fixed 40-byte on-disk section header.
type SectionHeader struct {
	Name    [8]byte
	Paddr   uint32
	Vaddr   uint32
	Size    uint32
	Scnptr  uint32
	Relptr  uint32
	Lnnoptr uint32
	NReloc  uint16
	NLnno   uint16
	Flags   uint32
}

// NameString trims the NUL-padded Name field to a Go string.
func (h SectionHeader) NameString() string {
	n := bytes.IndexByte(h.Name[:], 0)
	if n < 0 {
		n = len(h.Name)
	}
	return string(h.Name[:n])
}

// RelocationEntry is a single 10-byte relocation table record.
type RelocationEntry struct {
	Vaddr  uint32
	Symndx uint32
	Rtype  uint16
}

// Section is a fully materialized section: its header, its relocation
// table (if any), and its raw data (if any).
type Section struct {
	Header      SectionHeader
	Relocations []RelocationEntry
	Data        []byte
}

func readSectionHeader(c *ioutil.Cursor) (SectionHeader, error) {
	var h SectionHeader

	name := ioutil.GetBuffer(8)
	defer ioutil.ReleaseBuffer(name)
	if err := c.ReadInto(name); err != nil {
		return h, err
	}
	copy(h.Name[:], name)

	var err error
	if h.Paddr, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.Vaddr, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.Size, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.Scnptr, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.Relptr, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.Lnnoptr, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	if h.NReloc, err = c.ReadU16BE(); err != nil {
		return h, err
	}
	if h.NLnno, err = c.ReadU16BE(); err != nil {
		return h, err
	}
	if h.Flags, err = c.ReadU32BE(); err != nil {
		return h, err
	}
	return h, nil
}

func readRelocationEntry(c *ioutil.Cursor) (RelocationEntry, error) {
	var r RelocationEntry
	var err error
	if r.Vaddr, err = c.ReadU32BE(); err != nil {
		return r, err
	}
	if r.Symndx, err = c.ReadU32BE(); err != nil {
		return r, err
	}
	if r.Rtype, err = c.ReadU16BE(); err != nil {
		return r, err
	}
	return r, nil
}

// readSections performs the two-pass read spec'd for section data:
// section-header order on disk is not the same as section-data order, so
// headers are read sequentially first, then each header's relocation table
// and data are fetched by seeking to their own pointers.
func readSections(fh FileHeader, c *ioutil.Cursor) ([]Section, error) {
	headers := make([]SectionHeader, fh.SectionCount)
	for i := range headers {
		h, err := readSectionHeader(c)
		if err != nil {
			return nil, errs.Wrap(errs.BadSections, err)
		}
		headers[i] = h
	}

	sections := make([]Section, len(headers))
	for i, h := range headers {
		sec := Section{Header: h}

		if h.NReloc > 0 {
			if err := c.Seek(int(h.Relptr)); err != nil {
				return nil, errs.Wrap(errs.BadSections, err)
			}
			sec.Relocations = make([]RelocationEntry, h.NReloc)
			for j := range sec.Relocations {
				r, err := readRelocationEntry(c)
				if err != nil {
					return nil, errs.Wrap(errs.BadSections, err)
				}
				sec.Relocations[j] = r
			}
		}

		if h.Size > 0 {
			if err := c.Seek(int(h.Scnptr)); err != nil {
				return nil, errs.Wrap(errs.BadSections, err)
			}
			data, err := c.ReadExact(int(h.Size))
			if err != nil {
				return nil, errs.Wrap(errs.BadSections, err)
			}
			sec.Data = data
		}

		sections[i] = sec
	}

	return sections, nil
}

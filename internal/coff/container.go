package coff

import (
	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

// Container is a fully decoded COFF object file or executable: header,
// optional header (if present), sections with their relocations and raw
// data, the symbol table, and the string table.
type Container struct {
	FileHeader     FileHeader
	OptionalHeader *OptionalHeader
	Sections       []Section
	Symbols        []Symbol
	Strings        *StringTable
}

// Read decodes a complete COFF container from an in-memory image. The
// image is not retained beyond the call except for section data, which
// is sliced directly from buf.
func Read(buf []byte) (*Container, error) {
	c := ioutil.NewCursor(buf)

	fh, err := readFileHeader(c)
	if err != nil {
		return nil, err
	}

	cont := &Container{FileHeader: fh}

	if fh.OptHeaderSize == optionalHeaderSize {
		oh, err := readOptionalHeader(c)
		if err != nil {
			return nil, errs.Wrap(errs.BadOptionalHeader, err)
		}
		cont.OptionalHeader = &oh
	}

	if err := c.Seek(fileHeaderSize + int(fh.OptHeaderSize)); err != nil {
		return nil, errs.Wrap(errs.BadOptionalHeader, err)
	}

	sections, err := readSections(fh, c)
	if err != nil {
		return nil, err
	}
	cont.Sections = sections

	symbols, err := readSymbols(fh, c)
	if err != nil {
		return nil, err
	}
	cont.Symbols = symbols

	strings, err := readStringTable(c)
	if err != nil {
		return nil, err
	}
	cont.Strings = strings

	return cont, nil
}

// Section looks up a section by its trimmed name, e.g. ".text".
func (c *Container) Section(name string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].Header.NameString() == name {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// SectionAt returns the section at the given on-disk index, or an
// *errs.OffsetError if idx is out of range. Used by the driver's -offset
// flag to pick a non-zero starting section for display.
func (c *Container) SectionAt(idx int) (*Section, error) {
	if idx < 0 || idx >= len(c.Sections) {
		return nil, &errs.OffsetError{Index: idx, Count: len(c.Sections)}
	}
	return &c.Sections[idx], nil
}

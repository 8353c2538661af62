// Package dump renders a decoded COFF container and WE32100 instruction
// stream to stable, column-aligned text, including hex+ASCII rows for
// section data.
package dump

import (
	"fmt"
	"io"
	"sort"

	"github.com/sethm/we32dis/internal/coff"
	"github.com/sethm/we32dis/internal/we32100"
)

// FileHeader writes the file header block.
func FileHeader(w io.Writer, fh coff.FileHeader) {
	fmt.Fprintln(w, "File Header:")
	fmt.Fprintf(w, "    Magic Number:  0x%04x (%s)\n", fh.Magic, fh.MagicName())
	fmt.Fprintf(w, "    # Sections:    %d\n", fh.SectionCount)
	fmt.Fprintf(w, "    Date:          %s\n", fh.Time().Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	fmt.Fprintf(w, "    Symbols Ptr:   0x%x\n", fh.SymbolTableOffset)
	fmt.Fprintf(w, "    Symbol Count:  %d\n", fh.SymbolCount)
	fmt.Fprintf(w, "    Opt Hdr Size:  %d\n", fh.OptHeaderSize)
	fmt.Fprintf(w, "    Flags:         0x%04x (%s)\n", uint16(fh.Flags), fh.Summary())
}

// OptionalHeader writes the optional header block, if present.
func OptionalHeader(w io.Writer, oh *coff.OptionalHeader) {
	if oh == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optional Header:")
	fmt.Fprintf(w, "    Magic Number:    0x%04x\n", oh.Magic)
	fmt.Fprintf(w, "    Version Stamp:   0x%04x\n", oh.VersionStamp)
	fmt.Fprintf(w, "    Text Size:       0x%x\n", oh.TextSize)
	fmt.Fprintf(w, "    dsize:           0x%x\n", oh.DSize)
	fmt.Fprintf(w, "    bsize:           0x%x\n", oh.BSize)
	fmt.Fprintf(w, "    Entry Point:     0x%x\n", oh.EntryPoint)
	fmt.Fprintf(w, "    Text Start:      0x%x\n", oh.TextStart)
	fmt.Fprintf(w, "    Data Start:      0x%x\n", oh.DataStart)
}

// Section writes one section's header block, its relocation table (if
// any), and its hex+ASCII data dump (if any).
func Section(w io.Writer, sec coff.Section) {
	h := sec.Header
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Section Header:")
	fmt.Fprintf(w, "    Name:              %s\n", h.NameString())
	fmt.Fprintf(w, "    Phys. Addr:        0x%x\n", h.Paddr)
	fmt.Fprintf(w, "    Virtual Addr:      0x%x\n", h.Vaddr)
	fmt.Fprintf(w, "    Sec. Size:         0x%x\n", h.Size)
	fmt.Fprintf(w, "    Data Offset:       0x%x\n", h.Scnptr)
	fmt.Fprintf(w, "    Rel. Tab. Offset:  0x%x\n", h.Relptr)
	fmt.Fprintf(w, "    Line Num. Offset:  0x%x\n", h.Lnnoptr)
	fmt.Fprintf(w, "    Rel. Tab. Entries: %d\n", h.NReloc)
	fmt.Fprintf(w, "    Line Num. Entries: %d\n", h.NLnno)
	fmt.Fprintf(w, "    Flags:             0x%08x\n", h.Flags)

	if len(sec.Relocations) > 0 {
		fmt.Fprintln(w, "    Relocation Table:")
		fmt.Fprintln(w, "        Num    Vaddr       Symndx  Type")
		fmt.Fprintln(w, "        -----  ----------  ------  ----")
		for i, r := range sec.Relocations {
			fmt.Fprintf(w, "        [%03d]  0x%08x  %6d  %3d\n", i, r.Vaddr, r.Symndx, r.Rtype)
		}
	}

	if len(sec.Data) > 0 {
		fmt.Fprintln(w, "    Section Data")
		hexASCIIDump(w, sec.Data, h.Vaddr)
	}
}

const printableLo, printableHi = 0x20, 0x7f

// hexASCIIDump renders data in 16-byte rows: an 8-digit virtual address
// prefix, hex bytes grouped in two columns of 8, then the ASCII summary.
// The final row pads its hex columns with 16-((len-1) mod 16)-1 blank
// slots when the data doesn't end on a row boundary, so its ASCII summary
// starts in the same column as that of a full row.
func hexASCIIDump(w io.Writer, data []byte, vaddr uint32) {
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		fmt.Fprintf(w, "        %08x:   ", vaddr+uint32(i))

		for j := 0; j < 16; j++ {
			if j < len(row) {
				fmt.Fprintf(w, "%02x ", row[j])
			} else {
				fmt.Fprint(w, "   ")
			}
			if j == 7 {
				fmt.Fprint(w, " ")
			}
		}

		fmt.Fprint(w, " | ")
		for _, b := range row {
			if b >= printableLo && b < printableHi {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, " |")
	}
}

// SymbolTable writes the symbol listing: one row per primary or
// auxiliary entry, in on-disk order.
func SymbolTable(w io.Writer, symbols []coff.Symbol, strings *coff.StringTable) {
	if len(symbols) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Symbol Table:")
	fmt.Fprintln(w, "    Num       Kind  Name             Value      Scnum Type Class      Numaux")
	fmt.Fprintln(w, "    ------    ----  ---------------- ---------- ----- ---- ---------- ------")

	for i, s := range symbols {
		switch s.Kind {
		case coff.SymbolPrimary:
			p := s.Primary
			fmt.Fprintf(w, "    [%4d] %4s  %-16s 0x%08x %5d %04x %-10s %6d\n",
				i, "m", p.Name(strings), p.Value, p.Scnum, p.Type, p.SClass, p.NumAux)
		case coff.SymbolAux:
			name := ""
			if s.Aux.Filename != nil {
				name = s.Aux.Filename.Name
			}
			fmt.Fprintf(w, "    [%4d] %4s  %-16s %10s %5s %4s %-10s %6s\n",
				i, "a", name, "", "", "", "", "")
		}
	}
}

// StringTableBlock writes the string table listing, sorted by ascending
// offset (the underlying entries are already discovered in that order).
func StringTableBlock(w io.Writer, strtab *coff.StringTable) {
	entries := strtab.Entries()
	if len(entries) == 0 {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Offset < entries[j].Offset })

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Strings Table:")
	fmt.Fprintf(w, "    data_size:    %d\n", strtab.DataSize)
	for _, e := range entries {
		fmt.Fprintf(w, "    [0x%08x] %s\n", e.Offset, e.Value)
	}
}

// Instruction writes one decoded instruction line: hex bytes, padded to a
// fixed column, a "|" separator, the mnemonic left-justified to 10
// characters, then comma-joined operand renderings.
func Instruction(w io.Writer, addr uint32, ins *we32100.Instruction) {
	var line string
	if ins.Opcode > 0xff {
		line = fmt.Sprintf("%02x %02x", ins.Opcode>>8, ins.Opcode&0xff)
	} else {
		line = fmt.Sprintf("%02x", ins.Opcode)
	}

	for i := 0; i < ins.OperandCount; i++ {
		for _, b := range ins.Operands[i].Bytes {
			line += fmt.Sprintf(" %02x", b)
		}
	}

	const byteColumnWidth = 30
	if pad := byteColumnWidth - len(line); pad > 0 {
		for i := 0; i < pad; i++ {
			line += " "
		}
	}

	line += fmt.Sprintf(" | %-10s", ins.Name)

	for i := 0; i < ins.OperandCount; i++ {
		line += ins.Operands[i].String()
		if i < ins.OperandCount-1 {
			line += ","
		}
	}

	fmt.Fprintf(w, "%08x:  %s\n", addr, line)
}

// Command we32dis disassembles a WE32100/WE32000 COFF object file or
// executable: it prints the file header, optional header, section
// headers and data, symbol table, string table, and a disassembly of the
// .text section.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sethm/we32dis/internal/coff"
	"github.com/sethm/we32dis/internal/dump"
	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
	"github.com/sethm/we32dis/internal/we32100"
)

func main() {
	// -offset, if non-zero, picks a starting section by index instead of
	// the disassembler's default (the .text section by name). It is never
	// passed into the container or instruction decoder themselves.
	offset := flag.Int("offset", 0, "section index to disassemble instead of .text (reserved, rarely needed)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: we32dis [flags] <file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	path := args[0]
	buf, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("couldn't open %s: %v", path, err)
	}

	cont, err := coff.Read(buf)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		os.Exit(0)
	}

	dump.FileHeader(os.Stdout, cont.FileHeader)
	dump.OptionalHeader(os.Stdout, cont.OptionalHeader)

	for _, sec := range cont.Sections {
		dump.Section(os.Stdout, sec)
	}

	dump.SymbolTable(os.Stdout, cont.Symbols, cont.Strings)
	dump.StringTableBlock(os.Stdout, cont.Strings)

	var text *coff.Section
	if *offset != 0 {
		sec, err := cont.SectionAt(*offset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(0)
		}
		text = sec
	} else if sec, ok := cont.Section(".text"); ok {
		text = sec
	}

	if text == nil || len(text.Data) == 0 {
		return
	}

	disassemble(*text)
}

// disassemble streams instructions out of a .text section until the
// stream is exhausted or a decode error is hit. A parse error mid-stream
// is reported once as a trailer and is not a fatal condition for the
// tool: a bad instruction stream isn't the magic-number mismatch that's
// the only fatal error this tool recognizes.
func disassemble(text coff.Section) {
	fmt.Println()
	fmt.Println("Disassembly of .text:")

	c := ioutil.NewCursor(text.Data)
	d := we32100.NewDecoder()

	for {
		addr := text.Header.Vaddr + uint32(c.Pos())
		start := c.Pos()

		ins, err := d.Decode(c)
		if err != nil {
			if errors.Is(err, errs.ErrIoExhausted) {
				return
			}
			remaining := len(text.Data) - start
			fmt.Printf("%08x:  *** decode error: %v (%d byte(s) undecoded)\n", addr, err, remaining)
			return
		}

		dump.Instruction(os.Stdout, addr, ins)
	}
}

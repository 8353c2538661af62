package coff

import (
	"bytes"
	"encoding/binary"

	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

// StorageClass names a COFF symbol's storage class (n_sclass).
type StorageClass int8

const (
	ClassNull                StorageClass = 0
	ClassEndOfFunction       StorageClass = -1
	ClassAuto                StorageClass = 1
	ClassExternalSym         StorageClass = 2
	ClassStatic              StorageClass = 3
	ClassRegister            StorageClass = 4
	ClassExternalDef         StorageClass = 5
	ClassLabel               StorageClass = 6
	ClassUndefinedLabel      StorageClass = 7
	ClassMemberOfStruct      StorageClass = 8
	ClassFunctionArg         StorageClass = 9
	ClassStructureTag        StorageClass = 10
	ClassMemberOfUnion       StorageClass = 11
	ClassUnionTag            StorageClass = 12
	ClassTypeDefinition      StorageClass = 13
	ClassUninitializedStatic StorageClass = 14
	ClassEnumerationTag      StorageClass = 15
	ClassMemberOfEnumeration StorageClass = 16
	ClassRegisterParameter   StorageClass = 17
	ClassBitField            StorageClass = 18
	ClassBeginEndBlock       StorageClass = 100
	ClassBeginEndFunc        StorageClass = 101
	ClassEndOfStruct         StorageClass = 102
	ClassFilename            StorageClass = 103
	ClassLine                StorageClass = 104
	ClassAlias               StorageClass = 105
	ClassHidden              StorageClass = 106
)

var storageClassNames = map[StorageClass]string{
	ClassEndOfFunction:       "EndOfFunction",
	ClassAuto:                "Auto",
	ClassExternalSym:         "ExternalSym",
	ClassStatic:              "Static",
	ClassRegister:            "Register",
	ClassExternalDef:         "ExternalDef",
	ClassLabel:               "Label",
	ClassUndefinedLabel:      "UndefinedLabel",
	ClassMemberOfStruct:      "MemberOfStruct",
	ClassFunctionArg:         "FunctionArg",
	ClassStructureTag:        "StructureTag",
	ClassMemberOfUnion:       "MemberOfUnion",
	ClassUnionTag:            "UnionTag",
	ClassTypeDefinition:      "TypeDefinition",
	ClassUninitializedStatic: "UninitializedStatic",
	ClassEnumerationTag:      "EnumerationTag",
	ClassMemberOfEnumeration: "MemberOfEnumeration",
	ClassRegisterParameter:   "RegisterParameter",
	ClassBitField:            "BitField",
	ClassBeginEndBlock:       "BeginEndBlock",
	ClassBeginEndFunc:        "BeginEndFunc",
	ClassEndOfStruct:         "EndOfStruct",
	ClassFilename:            "Filename",
	ClassLine:                "Line",
	ClassAlias:               "Alias",
	ClassHidden:              "Hidden",
}

// String renders the storage class's name, or "Null" for any value not
// named in the enumeration.
func (c StorageClass) String() string {
	if name, ok := storageClassNames[c]; ok {
		return name
	}
	return "Null"
}

// classify maps a raw signed byte to its StorageClass, defaulting
// unrecognized values to ClassNull.
func classify(raw int8) StorageClass {
	if _, ok := storageClassNames[StorageClass(raw)]; ok {
		return StorageClass(raw)
	}
	return ClassNull
}

// SymbolKind discriminates the two record shapes a COFF symbol table
// entry can take.
type SymbolKind int

const (
	SymbolPrimary SymbolKind = iota
	SymbolAux
)

// PrimarySymbol is the primary variant of a symbol table entry. The first
// eight bytes of the on-disk record are simultaneously an 8-byte inline
// name and a (zeroes, offset) pair; both views are decoded up front and
// Name picks the right one based on Zeroes.
type PrimarySymbol struct {
	InlineName [8]byte
	Zeroes     uint32
	Offset     uint32
	Value      uint32
	Scnum      int16
	Type       uint16
	SClass     StorageClass
	NumAux     uint8
}

// Name resolves the symbol's name: from the string table when Zeroes == 0,
// otherwise from the inline name field. A string-table lookup failure
// (bad UTF-8, out-of-range offset) renders as "???" — names are advisory,
// per the dumper's error-handling contract.
func (p PrimarySymbol) Name(strings *StringTable) string {
	if p.Zeroes == 0 {
		s, err := strings.NameAt(p.Offset)
		if err != nil {
			return "???"
		}
		return s
	}
	n := bytes.IndexByte(p.InlineName[:], 0)
	if n < 0 {
		n = len(p.InlineName)
	}
	return string(p.InlineName[:n])
}

// AuxFilename is the auxiliary record shape used when the preceding
// primary's storage class is Filename.
type AuxFilename struct {
	Name string
}

// AuxGeneric is the auxiliary record shape used for every storage class
// other than Filename. Like PrimarySymbol, two of its fields are overlaid
// views over the same bytes (Misc as lnno+size or as fsize; FcnAry as
// lnnoptr+endndx or as a 4-element dimension array); both views are
// decoded and the caller picks based on context.
type AuxGeneric struct {
	TagIndex uint32
	Lnno     uint16
	MiscSize uint16
	FSize    uint32
	LnnoPtr  uint32
	EndIndex uint32
	Dimen    [4]uint16
	TVIndex  uint16
}

// AuxSymbol is the auxiliary variant of a symbol table entry.
type AuxSymbol struct {
	ParentClass StorageClass
	Filename    *AuxFilename
	Generic     *AuxGeneric
}

// Symbol is the tagged union of the two symbol table record shapes.
type Symbol struct {
	Kind    SymbolKind
	Primary PrimarySymbol
	Aux     AuxSymbol
}

func decodePrimary(raw []byte) PrimarySymbol {
	var p PrimarySymbol
	copy(p.InlineName[:], raw[0:8])
	p.Zeroes = binary.BigEndian.Uint32(raw[0:4])
	p.Offset = binary.BigEndian.Uint32(raw[4:8])
	p.Value = binary.BigEndian.Uint32(raw[8:12])
	p.Scnum = int16(binary.BigEndian.Uint16(raw[12:14]))
	p.Type = binary.BigEndian.Uint16(raw[14:16])
	p.SClass = classify(int8(raw[16]))
	p.NumAux = raw[17]
	return p
}

func decodeAux(raw []byte, parent StorageClass) AuxSymbol {
	aux := AuxSymbol{ParentClass: parent}

	if parent == ClassFilename {
		n := bytes.IndexByte(raw[0:14], 0)
		if n < 0 {
			n = 14
		}
		aux.Filename = &AuxFilename{Name: string(raw[0:n])}
		return aux
	}

	g := &AuxGeneric{}
	g.TagIndex = binary.BigEndian.Uint32(raw[0:4])
	g.Lnno = binary.BigEndian.Uint16(raw[4:6])
	g.MiscSize = binary.BigEndian.Uint16(raw[6:8])
	g.FSize = binary.BigEndian.Uint32(raw[4:8])
	g.LnnoPtr = binary.BigEndian.Uint32(raw[8:12])
	g.EndIndex = binary.BigEndian.Uint32(raw[12:16])
	for i := 0; i < 4; i++ {
		g.Dimen[i] = binary.BigEndian.Uint16(raw[8+i*2 : 10+i*2])
	}
	g.TVIndex = binary.BigEndian.Uint16(raw[16:18])
	aux.Generic = g

	return aux
}

// readSymbols decodes the symbol table, threading the (is_aux, remaining,
// parent_class) state machine across records: a primary with NumAux > 0
// is followed on disk by exactly NumAux auxiliary records, each
// interpreted according to the primary's storage class.
func readSymbols(fh FileHeader, c *ioutil.Cursor) ([]Symbol, error) {
	if fh.SymbolCount == 0 {
		return nil, nil
	}

	if err := c.Seek(int(fh.SymbolTableOffset)); err != nil {
		return nil, errs.Wrap(errs.BadSymbols, err)
	}

	symbols := make([]Symbol, 0, fh.SymbolCount)

	var isAux bool
	var remaining uint8
	var parentClass StorageClass

	raw := ioutil.GetBuffer(symbolRecordSize)
	defer ioutil.ReleaseBuffer(raw)

	for i := uint32(0); i < fh.SymbolCount; i++ {
		if err := c.ReadInto(raw); err != nil {
			return nil, errs.Wrap(errs.BadSymbols, err)
		}

		if isAux {
			symbols = append(symbols, Symbol{Kind: SymbolAux, Aux: decodeAux(raw, parentClass)})
			remaining--
			if remaining == 0 {
				isAux = false
			}
			continue
		}

		prim := decodePrimary(raw)
		symbols = append(symbols, Symbol{Kind: SymbolPrimary, Primary: prim})

		if prim.NumAux > 0 {
			isAux = true
			remaining = prim.NumAux
			parentClass = prim.SClass
		}
	}

	return symbols, nil
}

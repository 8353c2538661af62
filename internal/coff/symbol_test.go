package coff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sethm/we32dis/internal/ioutil"
)

func buildPrimaryRecord(name [8]byte, value uint32, scnum int16, typ uint16, sclass int8, numAux uint8) []byte {
	buf := make([]byte, 0, symbolRecordSize)
	buf = append(buf, name[:]...)
	buf = putU32BE(buf, value)
	buf = putU16BE(buf, uint16(scnum))
	buf = putU16BE(buf, typ)
	buf = append(buf, byte(sclass), numAux)
	return buf
}

func TestClassify_KnownAndUnknown(t *testing.T) {
	require.Equal(t, ClassExternalSym, classify(2))
	require.Equal(t, ClassHidden, classify(106))
	require.Equal(t, ClassNull, classify(42))
}

func TestStorageClass_String(t *testing.T) {
	require.Equal(t, "ExternalSym", ClassExternalSym.String())
	require.Equal(t, "Null", ClassNull.String())
	require.Equal(t, "Null", StorageClass(42).String())
}

func TestDecodePrimary_InlineName(t *testing.T) {
	var name [8]byte
	copy(name[:], "_main")
	raw := buildPrimaryRecord(name, 0x1000, 1, 0, int8(ClassExternalSym), 0)
	p := decodePrimary(raw)

	require.NotEqual(t, uint32(0), p.Zeroes)
	require.Equal(t, uint32(0x1000), p.Value)
	require.Equal(t, int16(1), p.Scnum)
	require.Equal(t, ClassExternalSym, p.SClass)
	require.Equal(t, "_main", p.Name(&StringTable{data: []byte{0, 0, 0, 0}, DataSize: 4}))
}

func TestDecodePrimary_LongNameViaStringTable(t *testing.T) {
	var name [8]byte
	// zeroes=0, offset=8
	name[0], name[1], name[2], name[3] = 0, 0, 0, 0
	name[4], name[5], name[6], name[7] = 0, 0, 0, 8
	raw := buildPrimaryRecord(name, 0, 1, 0, int8(ClassStatic), 0)
	p := decodePrimary(raw)
	require.Equal(t, uint32(0), p.Zeroes)
	require.Equal(t, uint32(8), p.Offset)

	strtab := &StringTable{data: append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, []byte("longname\x00")...), DataSize: 16}
	require.Equal(t, "longname", p.Name(strtab))
}

func TestReadSymbols_PrimaryWithAuxFilename(t *testing.T) {
	var fname [8]byte
	copy(fname[:], "foo.c")
	primary := buildPrimaryRecord(fname, 0, 0, 0, int8(ClassFilename), 1)

	auxRaw := make([]byte, symbolRecordSize)
	copy(auxRaw, "foo.c\x00\x00\x00")

	buf := append(append([]byte{}, primary...), auxRaw...)
	fh := FileHeader{SymbolTableOffset: 0, SymbolCount: 2}

	symbols, err := readSymbols(fh, ioutil.NewCursor(buf))
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	require.Equal(t, SymbolPrimary, symbols[0].Kind)
	require.Equal(t, ClassFilename, symbols[0].Primary.SClass)
	require.Equal(t, SymbolAux, symbols[1].Kind)
	require.NotNil(t, symbols[1].Aux.Filename)
	require.Equal(t, "foo.c", symbols[1].Aux.Filename.Name)
}

func TestReadSymbols_PrimaryWithAuxGeneric(t *testing.T) {
	var name [8]byte
	copy(name[:], "func")
	primary := buildPrimaryRecord(name, 0x200, 1, 0x20, int8(ClassExternalSym), 1)

	aux := make([]byte, 0, symbolRecordSize)
	aux = putU32BE(aux, 99)    // tagndx
	aux = putU16BE(aux, 42)    // lnno
	aux = putU16BE(aux, 7)     // size
	aux = putU32BE(aux, 0x300) // lnnoptr / dimen[0:2] view
	aux = putU32BE(aux, 0x400) // endndx / dimen[2:4] view
	aux = putU16BE(aux, 0)     // tvindex

	buf := append(append([]byte{}, primary...), aux...)
	fh := FileHeader{SymbolCount: 2}

	symbols, err := readSymbols(fh, ioutil.NewCursor(buf))
	require.NoError(t, err)
	require.Equal(t, SymbolAux, symbols[1].Kind)
	require.NotNil(t, symbols[1].Aux.Generic)
	require.Equal(t, uint32(99), symbols[1].Aux.Generic.TagIndex)
	require.Equal(t, uint16(42), symbols[1].Aux.Generic.Lnno)
}

func TestReadSymbols_ZeroCountReturnsNil(t *testing.T) {
	fh := FileHeader{SymbolCount: 0}
	symbols, err := readSymbols(fh, ioutil.NewCursor(nil))
	require.NoError(t, err)
	require.Nil(t, symbols)
}

func TestReadSymbols_TruncatedErrors(t *testing.T) {
	fh := FileHeader{SymbolCount: 1}
	_, err := readSymbols(fh, ioutil.NewCursor([]byte{1, 2, 3}))
	require.Error(t, err)
}

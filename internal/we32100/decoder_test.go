package we32100

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

func TestDecode_Halt(t *testing.T) {
	c := ioutil.NewCursor([]byte{0x00})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, "halt", ins.Name)
	require.Equal(t, 0, ins.OperandCount)
	require.Equal(t, 1, c.Pos())
}

func TestDecode_ByteImmediateOperand(t *testing.T) {
	// MOVW src, dest; src = positive literal 0x05, dest = byte immediate
	// descriptor 0x6f (m=6, r=15) followed by the immediate byte 0x2a.
	c := ioutil.NewCursor([]byte{0x84, 0x05, 0x6f, 0x2a})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, "MOVW", ins.Name)
	require.Equal(t, 2, ins.OperandCount)
	require.Equal(t, ModePositiveLiteral, ins.Operands[0].Mode)
	require.Equal(t, ModeByteImmediate, ins.Operands[1].Mode)
	require.Equal(t, uint32(42), ins.Operands[1].Embedded)
	require.Equal(t, 4, c.Pos())
}

func TestDecode_ExpandedTypeCarry(t *testing.T) {
	// Operand 0: descriptor 0xE4 (m=14, r=4 -> Word override), recurses
	// into a register descriptor 0x40 (m=4, r=0 -> Register 0).
	// Operand 1: register descriptor 0x41 (m=4, r=1 -> Register 1), which
	// receives etype = Word through the instruction's carry, so its own
	// ExpandedType reads back as Word too.
	c := ioutil.NewCursor([]byte{0x9C, 0xE4, 0x40, 0x41})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, "ADDW2", ins.Name)
	require.NotNil(t, ins.Operands[0].ExpandedType)
	require.Equal(t, DataWord, *ins.Operands[0].ExpandedType)
	require.Equal(t, ModeRegister, ins.Operands[0].Mode)
	require.Equal(t, 0, *ins.Operands[0].Register)
	require.Equal(t, ModeRegister, ins.Operands[1].Mode)
	require.Equal(t, 1, *ins.Operands[1].Register)
	require.NotNil(t, ins.Operands[1].ExpandedType)
	require.Equal(t, DataWord, *ins.Operands[1].ExpandedType)
}

func TestDecode_IllegalDescriptorRegisterCombo(t *testing.T) {
	// SAVE src; descriptor 0x8b = (m=8, r=11) is illegal.
	c := ioutil.NewCursor([]byte{0x10, 0x8b})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestDecode_IllegalExpandedTypeRegister(t *testing.T) {
	// SAVE src; descriptor 0xE1 = (m=14, r=1) is not a legal expanded-type selector.
	c := ioutil.NewCursor([]byte{0x10, 0xE1})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestDecode_UnknownOpcodeIsParseError(t *testing.T) {
	c := ioutil.NewCursor([]byte{0x01})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestDecode_HalfwordOpcode(t *testing.T) {
	c := ioutil.NewCursor([]byte{0x30, 0x09})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, "MVERNO", ins.Name)
	require.Equal(t, uint16(0x3009), ins.Opcode)
}

func TestDecode_UnknownHalfwordOpcodeIsParseError(t *testing.T) {
	c := ioutil.NewCursor([]byte{0x30, 0xff})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestDecode_TruncatedStreamIsIoExhausted(t *testing.T) {
	c := ioutil.NewCursor([]byte{})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrIoExhausted)
}

func TestDecode_TruncatedMidOperandIsIoExhausted(t *testing.T) {
	// MOVW src, dest; src descriptor says Word Immediate (m=4,r=15) but
	// only 2 of the 4 bytes are present.
	c := ioutil.NewCursor([]byte{0x84, 0x4f, 0x01, 0x02})
	d := NewDecoder()
	_, err := d.Decode(c)
	require.ErrorIs(t, err, errs.ErrIoExhausted)
}

// TestDecode_EveryByteOpcodeAdvancesExactly synthesizes a valid encoding
// for every assigned single-byte opcode (register descriptors for Src/Dest
// slots, a type-width literal for Lit slots) and checks the cursor lands
// exactly past the bytes that encoding occupies.
func TestDecode_EveryByteOpcodeAdvancesExactly(t *testing.T) {
	litWidth := func(dt Data) int {
		switch dt {
		case DataByte:
			return 1
		case DataHalf:
			return 2
		case DataWord:
			return 4
		default:
			t.Fatalf("literal slot with data type %v", dt)
			return 0
		}
	}

	for opcode, m := range byteMnemonics {
		if m == nil {
			continue
		}

		stream := []byte{byte(opcode)}
		want := 1
		for _, ot := range m.Ops {
			switch ot {
			case OpLit:
				w := litWidth(m.DType)
				stream = append(stream, make([]byte, w)...)
				want += w
			case OpSrc, OpDest:
				stream = append(stream, 0x41) // register %r1
				want++
			}
		}

		c := ioutil.NewCursor(stream)
		d := NewDecoder()
		ins, err := d.Decode(c)
		require.NoError(t, err, "opcode 0x%02x (%s)", opcode, m.Name)
		require.Equal(t, m.Name, ins.Name)
		require.Equal(t, want, c.Pos(), "opcode 0x%02x (%s)", opcode, m.Name)
	}
}

func TestDecode_EveryHalfwordOpcodeAdvancesByTwo(t *testing.T) {
	for opcode, m := range halfwordMnemonics {
		c := ioutil.NewCursor([]byte{byte(opcode >> 8), byte(opcode)})
		d := NewDecoder()
		ins, err := d.Decode(c)
		require.NoError(t, err, "opcode 0x%04x (%s)", opcode, m.Name)
		require.Equal(t, m.Name, ins.Name)
		require.Equal(t, 0, ins.OperandCount)
		require.Equal(t, 2, c.Pos())
	}
}

func TestDecode_AbsoluteAndAbsoluteDeferred(t *testing.T) {
	// CLRW dest; descriptor 0x7f (m=7,r=15) -> Absolute, reads word.
	c := ioutil.NewCursor([]byte{0x80, 0x7f, 0x78, 0x56, 0x34, 0x12})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, ModeAbsolute, ins.Operands[0].Mode)
	require.Equal(t, uint32(0x12345678), ins.Operands[0].Embedded)

	// Expanded-type deferred absolute: descriptor 0xef (m=14, r=15) reads
	// a further word and yields AbsoluteDeferred directly (no second
	// recursive descriptor byte).
	c2 := ioutil.NewCursor([]byte{0x80, 0xef, 0x01, 0x00, 0x00, 0x00})
	d2 := NewDecoder()
	ins2, err := d2.Decode(c2)
	require.NoError(t, err)
	require.Equal(t, ModeAbsoluteDeferred, ins2.Operands[0].Mode)
	require.Equal(t, uint32(1), ins2.Operands[0].Embedded)
}

func TestDecode_NegativeLiteralRendersSigned(t *testing.T) {
	// CLRW dest; descriptor 0xff (m=15) -> NegativeLiteral.
	c := ioutil.NewCursor([]byte{0x80, 0xff})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, ModeNegativeLiteral, ins.Operands[0].Mode)
	require.Equal(t, "&-1", ins.Operands[0].String())
}

func TestDecode_RegisterAliasRendering(t *testing.T) {
	// CLRW dest; descriptor 0x49 (m=4, r=9) -> Register FP.
	c := ioutil.NewCursor([]byte{0x80, 0x49})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, "%fp", ins.Operands[0].String())
}

func TestDecode_FPAndAPShortOffset(t *testing.T) {
	// CLRW dest; descriptor 0x65 (m=6, r=5) -> FPShortOffset(5).
	c := ioutil.NewCursor([]byte{0x80, 0x65})
	d := NewDecoder()
	ins, err := d.Decode(c)
	require.NoError(t, err)
	require.Equal(t, ModeFPShortOffset, ins.Operands[0].Mode)
	require.Equal(t, "5(%fp)", ins.Operands[0].String())

	// descriptor 0x73 (m=7, r=3) -> APShortOffset(3).
	c2 := ioutil.NewCursor([]byte{0x80, 0x73})
	d2 := NewDecoder()
	ins2, err := d2.Decode(c2)
	require.NoError(t, err)
	require.Equal(t, ModeAPShortOffset, ins2.Operands[0].Mode)
	require.Equal(t, "3(%ap)", ins2.Operands[0].String())
}

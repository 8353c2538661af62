// Package we32100 implements a decoder for the WE32100/WE32000 instruction
// set: a variable-length, little-endian encoding with two opcode planes (a
// 256-entry byte table and a small table of two-byte 0x30-prefixed
// opcodes) and a descriptor-byte operand encoding covering seventeen
// addressing modes.
package we32100

import "fmt"

// AddrMode names one of the decoded addressing modes an Operand can take.
type AddrMode int

const (
	ModeNone AddrMode = iota
	ModeAbsolute
	ModeAbsoluteDeferred
	ModeByteDisplacement
	ModeByteDisplacementDeferred
	ModeHalfwordDisplacement
	ModeHalfwordDisplacementDeferred
	ModeWordDisplacement
	ModeWordDisplacementDeferred
	ModeAPShortOffset
	ModeFPShortOffset
	ModeByteImmediate
	ModeHalfwordImmediate
	ModeWordImmediate
	ModePositiveLiteral
	ModeNegativeLiteral
	ModeRegister
	ModeRegisterDeferred
)

// OpType classifies a mnemonic's operand slot: a raw literal that follows
// the opcode with no descriptor byte, or a descriptor-encoded source or
// destination operand, or an unused slot.
type OpType int

const (
	OpNone OpType = iota
	OpLit
	OpSrc
	OpDest
)

// Data names the width and signedness an operand or literal is decoded
// with.
type Data int

const (
	DataNone Data = iota
	DataByte
	DataHalf
	DataWord
	DataSByte
	DataUHalf
	DataUWord
)

// Register indices, including the named aliases above r8.
const (
	RegFP   = 9
	RegAP   = 10
	RegPSW  = 11
	RegSP   = 12
	RegPCBP = 13
	RegISP  = 14
	RegPC   = 15
)

var registerNames = map[int]string{
	0: "%r0", 1: "%r1", 2: "%r2", 3: "%r3", 4: "%r4", 5: "%r5", 6: "%r6", 7: "%r7", 8: "%r8",
	RegFP: "%fp", RegAP: "%ap", RegPSW: "%psw", RegSP: "%sp", RegPCBP: "%pcbp", RegISP: "%isp", RegPC: "%pc",
}

func registerName(r int) string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return "%??"
}

// Operand is one fully decoded operand: its addressing mode, its declared
// and (if any) expanded-type override, its register (if the mode uses
// one), its embedded immediate/displacement/literal value, and the raw
// bytes consumed while decoding it (used by the disassembly listing).
type Operand struct {
	Mode         AddrMode
	DataType     Data
	ExpandedType *Data
	Register     *int
	Embedded     uint32
	Bytes        []byte
}

func (o *Operand) reset() {
	o.Mode = ModeNone
	o.DataType = DataNone
	o.ExpandedType = nil
	o.Register = nil
	o.Embedded = 0
	o.Bytes = o.Bytes[:0]
}

func (o *Operand) appendByte(b byte) {
	o.Bytes = append(o.Bytes, b)
}

func (o *Operand) appendHalf(h uint16) {
	o.Bytes = append(o.Bytes, byte(h), byte(h>>8))
}

func (o *Operand) appendWord(w uint32) {
	o.Bytes = append(o.Bytes, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
}

// String renders the operand in the disassembler's textual syntax, e.g.
// "&0x2a", "4(%fp)", "*0x100(%r3)".
func (o *Operand) String() string {
	reg := "%??"
	if o.Register != nil {
		reg = registerName(*o.Register)
	}

	switch o.Mode {
	case ModeAbsolute:
		return fmt.Sprintf("$0x%x", o.Embedded)
	case ModeAbsoluteDeferred:
		return fmt.Sprintf("*$0x%x", o.Embedded)
	case ModeByteDisplacement:
		return fmt.Sprintf("%d(%s)", int8(uint8(o.Embedded)), reg)
	case ModeByteDisplacementDeferred:
		return fmt.Sprintf("*%d(%s)", int8(uint8(o.Embedded)), reg)
	case ModeHalfwordDisplacement:
		return fmt.Sprintf("0x%x(%s)", uint16(o.Embedded), reg)
	case ModeHalfwordDisplacementDeferred:
		return fmt.Sprintf("*0x%x(%s)", uint16(o.Embedded), reg)
	case ModeWordDisplacement:
		return fmt.Sprintf("0x%x(%s)", o.Embedded, reg)
	case ModeWordDisplacementDeferred:
		return fmt.Sprintf("*0x%x(%s)", o.Embedded, reg)
	case ModeAPShortOffset:
		return fmt.Sprintf("%d(%%ap)", o.Embedded)
	case ModeFPShortOffset:
		return fmt.Sprintf("%d(%%fp)", o.Embedded)
	case ModeByteImmediate:
		return fmt.Sprintf("&%d", o.Embedded)
	case ModeHalfwordImmediate:
		return fmt.Sprintf("&0x%x", o.Embedded)
	case ModeWordImmediate:
		return fmt.Sprintf("&0x%x", o.Embedded)
	case ModePositiveLiteral:
		return fmt.Sprintf("&%d", o.Embedded)
	case ModeNegativeLiteral:
		return fmt.Sprintf("&%d", int8(uint8(o.Embedded)))
	case ModeRegister:
		return reg
	case ModeRegisterDeferred:
		return fmt.Sprintf("(%s)", reg)
	default:
		return fmt.Sprintf("%d", o.Embedded)
	}
}

package we32100

import (
	"errors"
	"io"

	"github.com/sethm/we32dis/internal/errs"
	"github.com/sethm/we32dis/internal/ioutil"
)

// Instruction is one fully decoded instruction: its opcode, mnemonic
// name, declared data type, and its (up to four) decoded operands.
type Instruction struct {
	Opcode       uint16
	Name         string
	DataType     Data
	OperandCount int
	Operands     [4]Operand
}

// Decoder decodes a stream of WE32100 instructions from a Cursor. It
// reuses its Instruction's Operand slots across calls to Decode, so the
// returned *Instruction is only valid until the next call.
type Decoder struct {
	ir Instruction
}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func ioErr(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.ErrIoExhausted
	}
	return err
}

// decodeLiteralOperand decodes a raw literal immediately following the
// opcode: its width is the instruction's declared data type, and no
// descriptor byte is consumed.
func (d *Decoder) decodeLiteralOperand(c *ioutil.Cursor, index int, m *Mnemonic) error {
	op := &d.ir.Operands[index]
	op.Mode = ModeNone
	op.DataType = DataByte
	op.ExpandedType = nil
	op.Register = nil

	switch m.DType {
	case DataByte:
		b, err := c.ReadU8()
		if err != nil {
			return ioErr(err)
		}
		op.Embedded = uint32(b)
		op.appendByte(b)
	case DataHalf:
		h, err := c.ReadU16LE()
		if err != nil {
			return ioErr(err)
		}
		op.Embedded = uint32(h)
		op.appendHalf(h)
	case DataWord:
		w, err := c.ReadU32LE()
		if err != nil {
			return ioErr(err)
		}
		op.Embedded = w
		op.appendWord(w)
	default:
		return errs.ErrParse
	}

	return nil
}

func dataPtr(d Data) *Data {
	v := d
	return &v
}

// decodeDescriptorOperand decodes a single descriptor byte plus whatever
// trailing immediate or displacement bytes its mode requires. recur is
// true only for the internal self-call made by the m=14 expanded-type
// override, which must not itself recurse into another expanded type.
func (d *Decoder) decodeDescriptorOperand(c *ioutil.Cursor, index int, dtype Data, etype *Data, recur bool) error {
	op := &d.ir.Operands[index]
	op.DataType = dtype
	op.ExpandedType = etype

	descByte, err := c.ReadU8()
	if err != nil {
		return ioErr(err)
	}
	op.appendByte(descByte)

	m := (descByte & 0xf0) >> 4
	r := descByte & 0x0f

	switch m {
	case 0, 1, 2, 3:
		op.Mode = ModePositiveLiteral
		op.Register = nil
		op.Embedded = uint32(descByte)

	case 4:
		if r == 15 {
			w, err := c.ReadU32LE()
			if err != nil {
				return ioErr(err)
			}
			op.Mode = ModeWordImmediate
			op.Register = nil
			op.Embedded = w
			op.appendWord(w)
		} else {
			op.Mode = ModeRegister
			reg := int(r)
			op.Register = &reg
			op.Embedded = 0
		}

	case 5:
		switch r {
		case 15:
			h, err := c.ReadU16LE()
			if err != nil {
				return ioErr(err)
			}
			op.Mode = ModeHalfwordImmediate
			op.Register = nil
			op.Embedded = uint32(h)
			op.appendHalf(h)
		case 11:
			return errs.ErrParse
		default:
			op.Mode = ModeRegisterDeferred
			reg := int(r)
			op.Register = &reg
			op.Embedded = 0
		}

	case 6:
		if r == 15 {
			b, err := c.ReadU8()
			if err != nil {
				return ioErr(err)
			}
			op.Mode = ModeByteImmediate
			op.Register = nil
			op.Embedded = uint32(b)
			op.appendByte(b)
		} else {
			op.Mode = ModeFPShortOffset
			reg := RegFP
			op.Register = &reg
			op.Embedded = uint32(r)
		}

	case 7:
		if r == 15 {
			w, err := c.ReadU32LE()
			if err != nil {
				return ioErr(err)
			}
			op.Mode = ModeAbsolute
			op.Register = nil
			op.Embedded = w
			op.appendWord(w)
		} else {
			op.Mode = ModeAPShortOffset
			reg := RegAP
			op.Register = &reg
			op.Embedded = uint32(r)
		}

	case 8:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU32LE()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeWordDisplacement
		reg := int(r)
		op.Register = &reg
		op.Embedded = disp
		op.appendWord(disp)

	case 9:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU32LE()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeWordDisplacementDeferred
		reg := int(r)
		op.Register = &reg
		op.Embedded = disp
		op.appendWord(disp)

	case 10:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU16LE()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeHalfwordDisplacement
		reg := int(r)
		op.Register = &reg
		op.Embedded = uint32(disp)
		op.appendHalf(disp)

	case 11:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU16LE()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeHalfwordDisplacementDeferred
		reg := int(r)
		op.Register = &reg
		op.Embedded = uint32(disp)
		op.appendHalf(disp)

	case 12:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU8()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeByteDisplacement
		reg := int(r)
		op.Register = &reg
		op.Embedded = uint32(disp)
		op.appendByte(disp)

	case 13:
		if r == 11 {
			return errs.ErrParse
		}
		disp, err := c.ReadU8()
		if err != nil {
			return ioErr(err)
		}
		op.Mode = ModeByteDisplacementDeferred
		reg := int(r)
		op.Register = &reg
		op.Embedded = uint32(disp)
		op.appendByte(disp)

	case 14:
		if recur {
			return errs.ErrParse
		}
		switch r {
		case 0:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataUWord), true)
		case 2:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataUHalf), true)
		case 3:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataByte), true)
		case 4:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataWord), true)
		case 6:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataHalf), true)
		case 7:
			return d.decodeDescriptorOperand(c, index, dtype, dataPtr(DataSByte), true)
		case 15:
			w, err := c.ReadU32LE()
			if err != nil {
				return ioErr(err)
			}
			op.Mode = ModeAbsoluteDeferred
			op.Register = nil
			op.Embedded = w
			op.appendWord(w)
		default:
			return errs.ErrParse
		}

	case 15:
		op.Mode = ModeNegativeLiteral
		op.Register = nil
		op.Embedded = uint32(descByte)

	default:
		return errs.ErrParse
	}

	return nil
}

func (d *Decoder) decodeOperand(c *ioutil.Cursor, index int, m *Mnemonic, ot OpType, etype *Data) error {
	d.ir.Operands[index].reset()

	switch ot {
	case OpLit:
		return d.decodeLiteralOperand(c, index, m)
	case OpSrc, OpDest:
		return d.decodeDescriptorOperand(c, index, m.DType, etype, false)
	case OpNone:
		return nil
	default:
		return errs.ErrParse
	}
}

// Decode decodes the instruction at the cursor's current position and
// returns it. On success the cursor is positioned immediately past the
// last consumed byte. On failure the cursor position is unspecified and
// the stream should be treated as terminated.
func (d *Decoder) Decode(c *ioutil.Cursor) (*Instruction, error) {
	b1, err := c.ReadU8()
	if err != nil {
		return nil, ioErr(err)
	}

	var m *Mnemonic
	if b1 == 0x30 {
		b2, err := c.ReadU8()
		if err != nil {
			return nil, ioErr(err)
		}
		opcode := uint16(b1)<<8 | uint16(b2)
		m = halfwordMnemonics[opcode]
	} else {
		m = byteMnemonics[b1]
	}

	if m == nil {
		return nil, errs.ErrParse
	}

	var etype *Data
	index := 0
	for _, ot := range m.Ops {
		if ot == OpNone {
			break
		}
		if err := d.decodeOperand(c, index, m, ot, etype); err != nil {
			return nil, err
		}
		etype = d.ir.Operands[index].ExpandedType
		index++
	}

	d.ir.Opcode = m.Opcode
	d.ir.Name = m.Name
	d.ir.OperandCount = index
	d.ir.DataType = m.DType

	return &d.ir, nil
}

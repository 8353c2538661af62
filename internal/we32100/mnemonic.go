package we32100

// Mnemonic describes one decodable opcode: its canonical opcode value
// (for the halfword table, the full two-byte value), the data type
// carried by its operands, its printable name, and the shape of its
// operand list.
type Mnemonic struct {
	Opcode uint16
	DType  Data
	Name   string
	Ops    [4]OpType
}

func mn(opcode uint16, dtype Data, name string, ops [4]OpType) *Mnemonic {
	return &Mnemonic{Opcode: opcode, DType: dtype, Name: name, Ops: ops}
}

var none4 = [4]OpType{OpNone, OpNone, OpNone, OpNone}

func ops1(a OpType) [4]OpType          { return [4]OpType{a, OpNone, OpNone, OpNone} }
func ops2(a, b OpType) [4]OpType       { return [4]OpType{a, b, OpNone, OpNone} }
func ops3(a, b, c OpType) [4]OpType    { return [4]OpType{a, b, c, OpNone} }
func ops4(a, b, c, d OpType) [4]OpType { return [4]OpType{a, b, c, d} }

// byteMnemonics is the 256-entry single-byte opcode plane. A nil entry is
// a reserved/unassigned opcode.
var byteMnemonics = [256]*Mnemonic{
	0x00: mn(0x00, DataNone, "halt", none4),
	0x02: mn(0x02, DataWord, "SPOPRD", ops2(OpLit, OpSrc)),
	0x03: mn(0x03, DataWord, "SPOPRD2", ops3(OpLit, OpSrc, OpDest)),
	0x04: mn(0x04, DataWord, "MOVAW", ops2(OpSrc, OpDest)),
	0x06: mn(0x06, DataWord, "SPOPRT", ops2(OpLit, OpSrc)),
	0x07: mn(0x07, DataWord, "SPOPT2", ops3(OpLit, OpSrc, OpDest)),
	0x08: mn(0x08, DataNone, "RET", none4),
	0x0C: mn(0x0C, DataWord, "MOVTRW", ops2(OpSrc, OpDest)),
	0x10: mn(0x10, DataWord, "SAVE", ops1(OpSrc)),
	0x13: mn(0x13, DataWord, "SPOPWD", ops2(OpLit, OpDest)),
	0x14: mn(0x14, DataByte, "EXTOP", none4),
	0x17: mn(0x17, DataWord, "SPOPWT", ops2(OpLit, OpDest)),
	0x18: mn(0x18, DataNone, "RESTORE", ops1(OpSrc)),
	0x1C: mn(0x1C, DataWord, "SWAPWI", ops1(OpDest)),
	0x1E: mn(0x1E, DataHalf, "SWAPHI", ops1(OpDest)),
	0x1F: mn(0x1F, DataByte, "SWAPBI", ops1(OpDest)),
	0x20: mn(0x20, DataWord, "POPW", ops1(OpSrc)),
	0x22: mn(0x22, DataWord, "SPOPRS", ops2(OpLit, OpSrc)),
	0x23: mn(0x23, DataWord, "SPOPS2", ops3(OpLit, OpSrc, OpDest)),
	0x24: mn(0x24, DataWord, "JMP", ops1(OpDest)),
	0x27: mn(0x27, DataNone, "CFLUSH", none4),
	0x28: mn(0x28, DataWord, "TSTW", ops1(OpSrc)),
	0x2A: mn(0x2A, DataHalf, "TSTH", ops1(OpSrc)),
	0x2B: mn(0x2B, DataByte, "TSTB", ops1(OpSrc)),
	0x2C: mn(0x2C, DataWord, "CALL", ops2(OpSrc, OpDest)),
	0x2E: mn(0x2E, DataNone, "BPT", none4),
	0x2F: mn(0x2F, DataNone, "WAIT", none4),
	0x32: mn(0x32, DataWord, "SPOP", ops1(OpLit)),
	0x33: mn(0x33, DataWord, "SPOPWS", ops2(OpLit, OpDest)),
	0x34: mn(0x34, DataWord, "JSB", ops1(OpDest)),
	0x36: mn(0x36, DataHalf, "BSBH", ops1(OpLit)),
	0x37: mn(0x37, DataByte, "BSBB", ops1(OpLit)),
	0x38: mn(0x38, DataWord, "BITW", ops2(OpSrc, OpSrc)),
	0x3A: mn(0x3A, DataHalf, "BITH", ops2(OpSrc, OpSrc)),
	0x3B: mn(0x3B, DataByte, "BITB", ops2(OpSrc, OpSrc)),
	0x3C: mn(0x3C, DataWord, "CMPW", ops2(OpSrc, OpSrc)),
	0x3E: mn(0x3E, DataHalf, "CMPH", ops2(OpSrc, OpSrc)),
	0x3F: mn(0x3F, DataByte, "CMPB", ops2(OpSrc, OpSrc)),
	0x40: mn(0x40, DataNone, "RGEQ", none4),
	0x42: mn(0x42, DataHalf, "BGEH", ops1(OpLit)),
	0x43: mn(0x43, DataByte, "BGEB", ops1(OpLit)),
	0x44: mn(0x44, DataNone, "RGTR", none4),
	0x46: mn(0x46, DataHalf, "BGH", ops1(OpLit)),
	0x47: mn(0x47, DataByte, "BGB", ops1(OpLit)),
	0x48: mn(0x48, DataNone, "RLSS", none4),
	0x4A: mn(0x4A, DataHalf, "BLH", ops1(OpLit)),
	0x4B: mn(0x4B, DataByte, "BLB", ops1(OpLit)),
	0x4C: mn(0x4C, DataNone, "RLEQ", none4),
	0x4E: mn(0x4E, DataHalf, "BLEH", ops1(OpLit)),
	0x4F: mn(0x4F, DataByte, "BLEB", ops1(OpLit)),
	0x50: mn(0x50, DataNone, "RGEQU", none4),
	0x52: mn(0x52, DataHalf, "BGEUH", ops1(OpLit)),
	0x53: mn(0x53, DataByte, "BGEUB", ops1(OpLit)),
	0x54: mn(0x54, DataNone, "RGTRU", none4),
	0x56: mn(0x56, DataHalf, "BGUH", ops1(OpLit)),
	0x57: mn(0x57, DataByte, "BGUB", ops1(OpLit)),
	0x58: mn(0x58, DataNone, "RLSSU", none4),
	0x5A: mn(0x5A, DataHalf, "BLUH", ops1(OpLit)),
	0x5B: mn(0x5B, DataByte, "BLUB", ops1(OpLit)),
	0x5C: mn(0x5C, DataNone, "RLEQU", none4),
	0x5E: mn(0x5E, DataHalf, "BLEUH", ops1(OpLit)),
	0x5F: mn(0x5F, DataByte, "BLEUB", ops1(OpLit)),
	0x60: mn(0x60, DataNone, "RVC", none4),
	0x62: mn(0x62, DataHalf, "BVCH", ops1(OpLit)),
	0x63: mn(0x63, DataByte, "BVCB", ops1(OpLit)),
	0x64: mn(0x64, DataNone, "RNEQU", none4),
	0x66: mn(0x66, DataHalf, "BNEH", ops1(OpLit)),
	0x67: mn(0x67, DataByte, "BNEB", ops1(OpLit)),
	0x68: mn(0x68, DataNone, "RVS", none4),
	0x6A: mn(0x6A, DataHalf, "BVSH", ops1(OpLit)),
	0x6B: mn(0x6B, DataByte, "BVSB", ops1(OpLit)),
	0x6C: mn(0x6C, DataNone, "REQLU", none4),
	0x6E: mn(0x6E, DataHalf, "BEH", ops1(OpLit)),
	0x6F: mn(0x6F, DataByte, "BEB", ops1(OpLit)),
	0x70: mn(0x70, DataNone, "NOP", none4),
	0x72: mn(0x72, DataNone, "NOP3", none4),
	0x73: mn(0x73, DataNone, "NOP2", none4),
	0x74: mn(0x74, DataNone, "RNEQ", none4),
	0x76: mn(0x76, DataHalf, "BNEH", ops1(OpLit)),
	0x77: mn(0x77, DataByte, "BNEB", ops1(OpLit)),
	0x78: mn(0x78, DataNone, "RSB", none4),
	0x7A: mn(0x7A, DataHalf, "BRH", ops1(OpLit)),
	0x7B: mn(0x7B, DataByte, "BRB", ops1(OpLit)),
	0x7C: mn(0x7C, DataNone, "REQL", none4),
	0x7E: mn(0x7E, DataHalf, "BEH", ops1(OpLit)),
	0x7F: mn(0x7F, DataByte, "BEB", ops1(OpLit)),
	0x80: mn(0x80, DataWord, "CLRW", ops1(OpDest)),
	0x82: mn(0x82, DataHalf, "CLRH", ops1(OpDest)),
	0x83: mn(0x83, DataByte, "CLRB", ops1(OpDest)),
	0x84: mn(0x84, DataWord, "MOVW", ops2(OpSrc, OpDest)),
	0x86: mn(0x86, DataHalf, "MOVH", ops2(OpSrc, OpDest)),
	0x87: mn(0x87, DataByte, "MOVB", ops2(OpSrc, OpDest)),
	0x88: mn(0x88, DataWord, "MCOMW", ops2(OpSrc, OpDest)),
	0x8A: mn(0x8A, DataHalf, "MCOMH", ops2(OpSrc, OpDest)),
	0x8B: mn(0x8B, DataByte, "MCOMB", ops2(OpSrc, OpDest)),
	0x8C: mn(0x8C, DataWord, "MNEGW", ops2(OpSrc, OpDest)),
	0x8E: mn(0x8E, DataHalf, "MNEGH", ops2(OpSrc, OpDest)),
	0x8F: mn(0x8F, DataByte, "MNEGB", ops2(OpSrc, OpDest)),
	0x90: mn(0x90, DataWord, "INCW", ops1(OpDest)),
	0x92: mn(0x92, DataHalf, "INCH", ops1(OpDest)),
	0x93: mn(0x93, DataByte, "INCB", ops1(OpDest)),
	0x94: mn(0x94, DataWord, "DECW", ops1(OpDest)),
	0x96: mn(0x96, DataHalf, "DECH", ops1(OpDest)),
	0x97: mn(0x97, DataByte, "DECB", ops1(OpDest)),
	0x9C: mn(0x9C, DataWord, "ADDW2", ops2(OpSrc, OpDest)),
	0x9E: mn(0x9E, DataHalf, "ADDH2", ops2(OpSrc, OpDest)),
	0x9F: mn(0x9F, DataByte, "ADDB2", ops2(OpSrc, OpDest)),
	0xA0: mn(0xA0, DataWord, "PUSHW", ops1(OpSrc)),
	0xA4: mn(0xA4, DataWord, "MODW2", ops2(OpSrc, OpDest)),
	0xA6: mn(0xA6, DataHalf, "MODH2", ops2(OpSrc, OpDest)),
	0xA7: mn(0xA7, DataByte, "MODB2", ops2(OpSrc, OpDest)),
	0xA8: mn(0xA8, DataWord, "MULW2", ops2(OpSrc, OpDest)),
	0xAA: mn(0xAA, DataHalf, "MULH2", ops2(OpSrc, OpDest)),
	0xAB: mn(0xAB, DataByte, "MULB2", ops2(OpSrc, OpDest)),
	0xAC: mn(0xAC, DataWord, "DIVW2", ops2(OpSrc, OpDest)),
	0xAE: mn(0xAE, DataHalf, "DIVH2", ops2(OpSrc, OpDest)),
	0xAF: mn(0xAF, DataByte, "DIVB2", ops2(OpSrc, OpDest)),
	0xB0: mn(0xB0, DataWord, "ORW2", ops2(OpSrc, OpDest)),
	0xB2: mn(0xB2, DataHalf, "ORH2", ops2(OpSrc, OpDest)),
	0xB3: mn(0xB3, DataByte, "ORB2", ops2(OpSrc, OpDest)),
	0xB4: mn(0xB4, DataWord, "XORW2", ops2(OpSrc, OpDest)),
	0xB6: mn(0xB6, DataHalf, "XORH2", ops2(OpSrc, OpDest)),
	0xB7: mn(0xB7, DataByte, "XORB2", ops2(OpSrc, OpDest)),
	0xB8: mn(0xB8, DataWord, "ANDW2", ops2(OpSrc, OpDest)),
	0xBA: mn(0xBA, DataHalf, "ANDH2", ops2(OpSrc, OpDest)),
	0xBB: mn(0xBB, DataByte, "ANDB2", ops2(OpSrc, OpDest)),
	0xBC: mn(0xBC, DataWord, "SUBW2", ops2(OpSrc, OpDest)),
	0xBE: mn(0xBE, DataHalf, "SUBH2", ops2(OpSrc, OpDest)),
	0xBF: mn(0xBF, DataByte, "SUBB2", ops2(OpSrc, OpDest)),
	0xC0: mn(0xC0, DataWord, "ALSW3", ops3(OpSrc, OpSrc, OpDest)),
	0xC4: mn(0xC4, DataWord, "ARSW3", ops3(OpSrc, OpSrc, OpDest)),
	0xC6: mn(0xC6, DataHalf, "ARSH3", ops3(OpSrc, OpSrc, OpDest)),
	0xC7: mn(0xC7, DataByte, "ARSB3", ops3(OpSrc, OpSrc, OpDest)),
	0xC8: mn(0xC8, DataWord, "INSFW", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xCA: mn(0xCA, DataHalf, "INSFH", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xCB: mn(0xCB, DataByte, "INSFB", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xCC: mn(0xCC, DataWord, "EXTFW", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xCE: mn(0xCE, DataHalf, "EXTFH", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xCF: mn(0xCF, DataByte, "EXTFB", ops4(OpSrc, OpSrc, OpSrc, OpDest)),
	0xD0: mn(0xD0, DataWord, "LLSW3", ops3(OpSrc, OpSrc, OpDest)),
	0xD2: mn(0xD2, DataHalf, "LLSH3", ops3(OpSrc, OpSrc, OpDest)),
	0xD3: mn(0xD3, DataByte, "LLSB3", ops3(OpSrc, OpSrc, OpDest)),
	0xD4: mn(0xD4, DataWord, "LRSW3", ops3(OpSrc, OpSrc, OpDest)),
	0xD8: mn(0xD8, DataWord, "ROTW", ops3(OpSrc, OpSrc, OpDest)),
	0xDC: mn(0xDC, DataWord, "ADDW3", ops3(OpSrc, OpSrc, OpDest)),
	0xDE: mn(0xDE, DataHalf, "ADDH3", ops3(OpSrc, OpSrc, OpDest)),
	0xDF: mn(0xDF, DataByte, "ADDB3", ops3(OpSrc, OpSrc, OpDest)),
	0xE0: mn(0xE0, DataWord, "PUSHAW", ops1(OpSrc)),
	0xE4: mn(0xE4, DataWord, "MODW3", ops3(OpSrc, OpSrc, OpDest)),
	0xE6: mn(0xE6, DataHalf, "MODH3", ops3(OpSrc, OpSrc, OpDest)),
	0xE7: mn(0xE7, DataByte, "MODB3", ops3(OpSrc, OpSrc, OpDest)),
	0xE8: mn(0xE8, DataWord, "MULW3", ops3(OpSrc, OpSrc, OpDest)),
	0xEA: mn(0xEA, DataHalf, "MULH3", ops3(OpSrc, OpSrc, OpDest)),
	0xEB: mn(0xEB, DataByte, "MULB3", ops3(OpSrc, OpSrc, OpDest)),
	0xEC: mn(0xEC, DataWord, "DIVW3", ops3(OpSrc, OpSrc, OpDest)),
	0xEE: mn(0xEE, DataHalf, "DIVH3", ops3(OpSrc, OpSrc, OpDest)),
	0xEF: mn(0xEF, DataByte, "DIVB3", ops3(OpSrc, OpSrc, OpDest)),
	0xF0: mn(0xF0, DataWord, "ORW3", ops3(OpSrc, OpSrc, OpDest)),
	0xF2: mn(0xF2, DataHalf, "ORH3", ops3(OpSrc, OpSrc, OpDest)),
	0xF3: mn(0xF3, DataByte, "ORB3", ops3(OpSrc, OpSrc, OpDest)),
	0xF4: mn(0xF4, DataWord, "XORW3", ops3(OpSrc, OpSrc, OpDest)),
	0xF6: mn(0xF6, DataHalf, "XORH3", ops3(OpSrc, OpSrc, OpDest)),
	0xF7: mn(0xF7, DataByte, "XORB3", ops3(OpSrc, OpSrc, OpDest)),
	0xF8: mn(0xF8, DataWord, "ANDW3", ops3(OpSrc, OpSrc, OpDest)),
	0xFA: mn(0xFA, DataHalf, "ANDH3", ops3(OpSrc, OpSrc, OpDest)),
	0xFB: mn(0xFB, DataByte, "ANDB3", ops3(OpSrc, OpSrc, OpDest)),
	0xFC: mn(0xFC, DataWord, "SUBW3", ops3(OpSrc, OpSrc, OpDest)),
	0xFE: mn(0xFE, DataHalf, "SUBH3", ops3(OpSrc, OpSrc, OpDest)),
	0xFF: mn(0xFF, DataByte, "SUBB3", ops3(OpSrc, OpSrc, OpDest)),
}

// halfwordMnemonics is the small plane of two-byte opcodes prefixed by
// 0x30. None of these take descriptor-encoded operands, only the system
// instructions that exist in both the original and an early "undocumented
// opcode" errata list: MOVBLW and STREND are carried here unverified
// against any data sheet.
var halfwordMnemonics = map[uint16]*Mnemonic{
	0x3009: mn(0x3009, DataNone, "MVERNO", none4),
	0x300d: mn(0x300d, DataNone, "ENBVJMP", none4),
	0x3013: mn(0x3013, DataNone, "DISVJMP", none4),
	0x3019: mn(0x3019, DataNone, "MOVBLW", none4), // undocumented, per errata
	0x301f: mn(0x301f, DataNone, "STREND", none4), // undocumented, per errata
	0x302f: mn(0x302f, DataNone, "INTACK", none4),
	0x303f: mn(0x303f, DataNone, "STRCPY", none4),
	0x3045: mn(0x3045, DataNone, "RETG", none4),
	0x3061: mn(0x3061, DataNone, "GATE", none4),
	0x30ac: mn(0x30ac, DataNone, "CALLPS", none4),
	0x30c8: mn(0x30c8, DataNone, "RETPS", none4),
}

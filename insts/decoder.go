package insts

// Decoder decodes MIPS32 instruction words. It holds no
// state today; the constructor exists so callers can later add a decode
// cache or statistics without breaking the API.
type Decoder struct{}

// NewDecoder creates a MIPS32 decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode splits a 32-bit instruction word into an Instruction. Anything
// outside the recognized set decodes as OpUnknown/CategoryUnknown, which
// the renamer treats as a completing no-op so unrecognized instructions
// never stall the pipeline.
func (d *Decoder) Decode(word uint32) *Instruction {
	opcode := uint8((word >> 26) & 0x3F)
	rs := uint8((word >> 21) & 0x1F)
	rt := uint8((word >> 16) & 0x1F)
	rd := uint8((word >> 11) & 0x1F)
	funct := uint8(word & 0x3F)
	imm16 := uint16(word & 0xFFFF)
	imm26 := word & 0x3FFFFFF

	inst := &Instruction{
		Word:  word,
		Rs:    rs,
		Rt:    rt,
		Rd:    rd,
		Imm16: SignExtend16(imm16),
		Imm26: imm26,
		Dest:  DestNone,
	}

	switch opcode {
	case 0x00:
		d.decodeRType(inst, funct)
	case 0x02:
		inst.Op, inst.Category = OpJ, CategoryJump
	case 0x03:
		inst.Op, inst.Category = OpJAL, CategoryJumpLink
		inst.Dest = 31
	case 0x04:
		inst.Op, inst.Category = OpBEQ, CategoryBranch
		inst.UsesRs, inst.UsesRt = true, true
	case 0x05:
		inst.Op, inst.Category = OpBNE, CategoryBranch
		inst.UsesRs, inst.UsesRt = true, true
	case 0x08:
		inst.Op, inst.Category = OpADDI, CategoryALUImm
		inst.UsesRs, inst.Dest = true, rt
	case 0x09:
		inst.Op, inst.Category = OpADDIU, CategoryALUImm
		inst.UsesRs, inst.Dest = true, rt
	case 0x0C:
		inst.Op, inst.Category = OpANDI, CategoryALUImm
		inst.UsesRs, inst.Dest = true, rt
	case 0x0D:
		inst.Op, inst.Category = OpORI, CategoryALUImm
		inst.UsesRs, inst.Dest = true, rt
	case 0x20:
		inst.Op, inst.Category, inst.IsMem = OpLB, CategoryLoad, true
		inst.UsesRs, inst.Dest = true, rt
	case 0x21:
		inst.Op, inst.Category, inst.IsMem = OpLH, CategoryLoad, true
		inst.UsesRs, inst.Dest = true, rt
	case 0x23:
		inst.Op, inst.Category, inst.IsMem = OpLW, CategoryLoad, true
		inst.UsesRs, inst.Dest = true, rt
	case 0x28:
		inst.Op, inst.Category, inst.IsMem = OpSB, CategoryStore, true
		inst.UsesRs, inst.UsesRt = true, true
	case 0x29:
		inst.Op, inst.Category, inst.IsMem = OpSH, CategoryStore, true
		inst.UsesRs, inst.UsesRt = true, true
	case 0x2B:
		inst.Op, inst.Category, inst.IsMem = OpSW, CategoryStore, true
		inst.UsesRs, inst.UsesRt = true, true
	default:
		inst.Op, inst.Category = OpUnknown, CategoryUnknown
	}

	return inst
}

func (d *Decoder) decodeRType(inst *Instruction, funct uint8) {
	switch funct {
	case 0x08:
		inst.Op, inst.Category = OpJR, CategoryJumpReg
		inst.UsesRs = true
	case 0x0C:
		inst.Op, inst.Category = OpSyscall, CategorySyscall
	case 0x20:
		inst.Op, inst.Category = OpADD, CategoryALU
		inst.UsesRs, inst.UsesRt, inst.Dest = true, true, inst.Rd
	case 0x21:
		inst.Op, inst.Category = OpADDU, CategoryALU
		inst.UsesRs, inst.UsesRt, inst.Dest = true, true, inst.Rd
	case 0x22:
		inst.Op, inst.Category = OpSUB, CategoryALU
		inst.UsesRs, inst.UsesRt, inst.Dest = true, true, inst.Rd
	case 0x24:
		inst.Op, inst.Category = OpAND, CategoryALU
		inst.UsesRs, inst.UsesRt, inst.Dest = true, true, inst.Rd
	case 0x25:
		inst.Op, inst.Category = OpOR, CategoryALU
		inst.UsesRs, inst.UsesRt, inst.Dest = true, true, inst.Rd
	default:
		inst.Op, inst.Category = OpUnknown, CategoryUnknown
	}
}

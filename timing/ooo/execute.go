package ooo

import "github.com/archsim/tomasulo32/insts"

// execute computes a dispatched micro-op's result. Loads and stores take
// effect here directly against the core's memory. The Core holds no
// data-memory Port, so load and store latency is not modeled.
//
// Every category ends by marking its ROB entry ready and broadcasting the
// result, even categories with no destination register (branches, stores,
// jr, syscall) — harmless, since no reservation station slot can hold a
// pending reference to a producer that was never given a RAT entry.
func (c *Core) execute(tag RobTag, op *MicroOp) {
	inst := op.Inst

	switch inst.Category {
	case insts.CategoryALU:
		c.complete(tag, aluCompute(inst.Op, op.Src1.Value, op.Src2.Value))

	case insts.CategoryALUImm:
		c.complete(tag, aluImmCompute(inst.Op, op.Src1.Value, inst.Imm16))

	case insts.CategoryLoad:
		addr := op.Src1.Value + signedOffset(inst.Imm16)
		c.complete(tag, c.loadValue(inst.Op, addr))

	case insts.CategoryStore:
		addr := op.Src1.Value + signedOffset(inst.Imm16)
		c.storeValue(inst.Op, addr, op.Src2.Value)
		c.complete(tag, 0)

	case insts.CategoryBranch:
		if branchTaken(inst.Op, op.Src1.Value, op.Src2.Value) {
			c.requestSquash(op.PC + 4 + signedOffset(inst.Imm16)*4)
		}
		c.complete(tag, 0)

	case insts.CategoryJump:
		c.requestSquash(jumpTarget(op.PC, inst.Imm26))
		c.complete(tag, 0)

	case insts.CategoryJumpLink:
		c.requestSquash(jumpTarget(op.PC, inst.Imm26))
		c.complete(tag, op.PC+4)

	case insts.CategoryJumpReg:
		c.requestSquash(op.Src1.Value)
		c.complete(tag, 0)

	default: // CategorySyscall, CategoryUnknown
		c.complete(tag, 0)
	}
}

// complete marks tag's ROB entry as having produced value and broadcasts
// it on the common data bus.
func (c *Core) complete(tag RobTag, value uint32) {
	op := c.rob.get(tag)
	op.Ready = true
	op.Value = value
	c.rs.broadcast(tag, value)
}

func (c *Core) requestSquash(target uint32) {
	c.squashPending = true
	c.squashTarget = target
}

func signedOffset(imm16 int32) uint32 { return uint32(imm16) }

func jumpTarget(pc uint32, imm26 uint32) uint32 {
	return (pc & 0xF0000000) | (imm26 << 2)
}

func aluCompute(op insts.Op, rs, rt uint32) uint32 {
	switch op {
	case insts.OpADD, insts.OpADDU:
		return rs + rt
	case insts.OpSUB:
		return rs - rt
	case insts.OpAND:
		return rs & rt
	case insts.OpOR:
		return rs | rt
	default:
		return 0
	}
}

func aluImmCompute(op insts.Op, rs uint32, imm16 int32) uint32 {
	switch op {
	case insts.OpADDI, insts.OpADDIU:
		return rs + uint32(imm16)
	case insts.OpANDI:
		return rs & zeroExtend16(imm16)
	case insts.OpORI:
		return rs | zeroExtend16(imm16)
	default:
		return 0
	}
}

// zeroExtend16 recovers the raw 16-bit immediate field from its sign-
// extended int32 form and zero-extends it, the encoding andi/ori use.
func zeroExtend16(imm16 int32) uint32 {
	return uint32(uint16(imm16))
}

func branchTaken(op insts.Op, rs, rt uint32) bool {
	switch op {
	case insts.OpBEQ:
		return rs == rt
	case insts.OpBNE:
		return rs != rt
	default:
		return false
	}
}

func (c *Core) loadValue(op insts.Op, addr uint32) uint32 {
	switch op {
	case insts.OpLW:
		return c.mem.Read32(addr)
	case insts.OpLH:
		b := c.mem.ReadWord(addr, 2)
		return uint32(int32(int16(uint16(b[0]) | uint16(b[1])<<8)))
	case insts.OpLB:
		return uint32(int32(int8(c.mem.Read8(addr))))
	default:
		return 0
	}
}

func (c *Core) storeValue(op insts.Op, addr uint32, value uint32) {
	switch op {
	case insts.OpSW:
		c.mem.Write32(addr, value)
	case insts.OpSH:
		c.mem.WriteWord(addr, []byte{byte(value), byte(value >> 8)})
	case insts.OpSB:
		c.mem.Write8(addr, byte(value))
	}
}

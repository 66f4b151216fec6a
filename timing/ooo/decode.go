package ooo

// decode runs before fetch and after issue in a tick's reverse stage
// order. It only produces work when the fetch buffer holds an instruction
// AND the I-memory port reports that instruction's word is ready.
//
// A full reservation station for the dispatched instruction's class is a
// full Decode stall: no ROB entry is allocated and the fetch buffer stays
// occupied, so the same instruction is retried next tick rather than
// lost.
//
// A squash latched earlier this same tick stalls Decode outright:
// anything in the fetch buffer is wrong-path and will be discarded by
// recovery at the top of the next tick.
func (c *Core) decode() {
	if c.squashPending {
		return
	}
	if c.fetchBuf == nil {
		return
	}
	if !c.imem.CanRecv() {
		return
	}

	resp := c.imem.Recv()
	word := wordFromBytes(resp.Data)
	inst := c.decoder.Decode(word)

	class := classOf(inst.Category)
	idx, ok := c.rs.freeSlot(class)
	if !ok {
		return
	}
	if c.rob.full() {
		return
	}

	op := newMicroOp(c.fetchBuf.pc, word, inst)
	op.Src1 = c.readOperand(inst.Rs, inst.UsesRs)
	op.Src2 = c.readOperand(inst.Rt, inst.UsesRt)

	tag := c.rob.alloc(op)
	c.rs.dispatch(class, idx, tag, op)

	if inst.HasDest() && inst.Dest != 0 {
		c.rat.rename(inst.Dest, tag)
	}

	c.fetchBuf = nil
}

// readOperand resolves a source register at rename time. A register the
// instruction doesn't read is wrapped as a ready zero so ALU/LS execution
// never has to special-case an absent operand.
//
// When the RAT's producer has executed but not yet retired, the value
// must come from its ROB entry, not the register file — the register file
// isn't updated until Commit, so reading it here would observe a stale
// value.
func (c *Core) readOperand(reg uint8, used bool) Operand {
	if !used {
		return ReadyOperand(0)
	}
	if tag, pending := c.rat.lookup(reg); pending {
		producer := c.rob.get(tag)
		if producer.Ready {
			return ReadyOperand(producer.Value)
		}
		return PendingOperand(tag)
	}
	return ReadyOperand(c.regs.ReadReg(reg))
}

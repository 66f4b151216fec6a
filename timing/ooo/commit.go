package ooo

import "github.com/archsim/tomasulo32/insts"

// commit runs first in a tick's reverse stage order, observing the prior
// tick's Execute results. It retires at most one instruction per cycle:
// the oldest ROB entry, and only once that entry's result is ready.
func (c *Core) commit() {
	if c.rob.empty() {
		return
	}

	tag := c.rob.headTag()
	op := c.rob.get(tag)
	if !op.Ready {
		return
	}

	if op.Inst.Category == insts.CategorySyscall {
		result := c.syscallHandler.Handle(c.regs)
		if result.Exited {
			c.exited = true
			c.exitStatus = result.ExitStatus
		}
	}

	if op.Dest != insts.DestNone {
		c.regs.WriteReg(op.Dest, op.Value)
		c.rat.clearIfOwner(op.Dest, tag)
	}

	c.rob.retire()
	c.instructionCompleted = true
}

package ooo

// issue runs after commit and before decode in a tick's reverse stage
// order. It scans each reservation station class independently for the
// first slot whose operands have both resolved, and hands at most one per
// class to a functional unit this cycle — up to one ALU op and one LS op
// executing in the same tick.
func (c *Core) issue() {
	c.issueClass(FUClassALU)
	c.issueClass(FUClassLS)
}

func (c *Core) issueClass(class FUClass) {
	idx, ok := c.rs.readySlot(class)
	if !ok {
		return
	}
	slot := c.rs.slots[class][idx]
	c.rs.remove(class, idx)
	c.execute(slot.tag, slot.op)
}

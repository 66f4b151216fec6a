package ooo

// recovery discards every in-flight micro-op and resets the PC to the
// squash target, run at the very start of a tick whenever the previous
// tick's Execute set the squash latch. Commit, Issue and
// Decode then observe an empty pipeline this same cycle, and Fetch uses
// the corrected PC to start refilling it — recovery and the first fetch
// of the redirected stream happen in the same tick.
func (c *Core) recovery() {
	c.fetchBuf = nil
	c.pc = c.squashTarget
	c.rob.reset()
	c.rat.reset()
	c.rs.reset()
	c.imem.Reset()
}

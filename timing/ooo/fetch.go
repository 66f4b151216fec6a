package ooo

// fetchEntry is the core's one-deep fetch buffer: the PC a request was
// issued for, and its sequential next-PC. Decode reads only pc; control
// transfers redirect through the squash latch, not through npc.
type fetchEntry struct {
	pc  uint32
	npc uint32
}

// fetch runs last in a tick's reverse stage order, after every stage that
// might free up room has already acted this cycle. It stalls whenever the
// ROB is full or the fetch buffer is already occupied, and otherwise
// issues one I-memory request and advances the PC speculatively. There is
// no branch prediction; control transfers redirect via squash.
//
// A squash latched earlier this same tick (Execute runs before Fetch)
// suppresses the request entirely: the PC is about to be redirected, so a
// fetch for the wrong-path PC would only create a stale response for
// recovery to drain.
func (c *Core) fetch() {
	if c.squashPending {
		return
	}
	if c.rob.full() {
		return
	}
	if c.fetchBuf != nil {
		return
	}
	if !c.imem.CanSend() {
		return
	}

	req := memRequest(c.pc, 4)
	c.imem.Send(req)
	c.fetchBuf = &fetchEntry{pc: c.pc, npc: c.pc + 4}
	c.pc += 4
}

package ooo

// rat is the register alias table: for each of the 32 architectural
// registers, either "architectural" (its value lives in the register
// file) or "pending on this ROB slot" (the most recent instruction to
// target it hasn't retired yet). Register 0 is never entered here — the
// renamer treats any destination of 0 as architecturally inert and leaves
// readers of $0 pointed at the register file.
type rat struct {
	mapped [32]bool
	tag    [32]RobTag
}

func newRAT() *rat {
	return &rat{}
}

// lookup returns the producing tag for reg, if any instruction targeting
// it is still in flight.
func (r *rat) lookup(reg uint8) (RobTag, bool) {
	if reg == 0 {
		return 0, false
	}
	if r.mapped[reg] {
		return r.tag[reg], true
	}
	return 0, false
}

// rename points reg at tag, the newly dispatched producer. Called only
// when reg != 0.
func (r *rat) rename(reg uint8, tag RobTag) {
	r.mapped[reg] = true
	r.tag[reg] = tag
}

// clearIfOwner reverts reg to architectural status, but only if tag is
// still the entry that owns it — a later instruction may have already
// remapped reg to a newer producer, in which case this retirement must
// not clobber that newer mapping.
func (r *rat) clearIfOwner(reg uint8, tag RobTag) {
	if reg == 0 {
		return
	}
	if r.mapped[reg] && r.tag[reg] == tag {
		r.mapped[reg] = false
	}
}

// reset clears every mapping, used by squash recovery.
func (r *rat) reset() {
	for i := range r.mapped {
		r.mapped[i] = false
	}
}

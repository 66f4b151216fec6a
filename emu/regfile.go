// Package emu provides the architectural state shared by every stage of the
// Tomasulo core: the register file and the byte-addressable memory.
package emu

// RegFile is the MIPS32 architectural register file: 32 general-purpose
// registers, each 32 bits wide. Register 0 is hardwired to zero.
type RegFile struct {
	R [32]uint32
}

// ReadReg reads a register value. Register 0 always reads as 0.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	if reg == 0 {
		return 0
	}
	return r.R[reg&0x1F]
}

// WriteReg writes a value to a register. Writes to register 0 are
// silently discarded; it always reads as zero.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	if reg == 0 {
		return
	}
	r.R[reg&0x1F] = value
}

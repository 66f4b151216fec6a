package ooo

import "github.com/archsim/tomasulo32/insts"

// FUClass is the functional-unit class a micro-op dispatches to. Each
// class has its own reservation station array.
type FUClass uint8

const (
	FUClassALU FUClass = iota
	FUClassLS
)

// classOf returns the reservation station class an instruction's category
// dispatches to. Branches, jumps and syscalls ride the ALU class; they
// carry no memory access and there is no third class to give them.
func classOf(category insts.Category) FUClass {
	if category == insts.CategoryLoad || category == insts.CategoryStore {
		return FUClassLS
	}
	return FUClassALU
}

// MicroOp is the single mutable record a dispatched instruction is
// represented by from rename through retirement. The ROB entry and its
// reservation station slot hold the same *MicroOp pointer, so a common
// data bus broadcast that resolves Src1/Src2 is visible from both places
// at once — there is exactly one copy of an in-flight instruction's
// state, never two that could drift.
type MicroOp struct {
	PC    uint32
	Word  uint32
	Inst  *insts.Instruction
	Class FUClass

	Src1, Src2 Operand

	// Dest is the architectural destination register, or insts.DestNone.
	// Register 0 is a legal but inert destination: WriteReg discards the
	// write and rename never points RAT[0] at this slot, so committing
	// such a micro-op is a no-op beyond vacating its ROB slot.
	Dest uint8

	Ready bool
	Value uint32
}

// newMicroOp builds the record Decode dispatches, before source operands
// are resolved against the register file or the RAT.
func newMicroOp(pc uint32, word uint32, inst *insts.Instruction) *MicroOp {
	return &MicroOp{
		PC:    pc,
		Word:  word,
		Inst:  inst,
		Class: classOf(inst.Category),
		Dest:  inst.Dest,
	}
}

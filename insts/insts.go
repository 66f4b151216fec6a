// Package insts provides MIPS32 instruction definitions and decoding for
// the subset of the ISA the out-of-order core executes.
package insts

// Op identifies a decoded MIPS32 mnemonic.
type Op uint8

// Mnemonics this core recognizes. OpUnknown covers every encoding outside
// the recognized set and decodes as a completing NOP.
const (
	OpUnknown Op = iota
	OpADD
	OpADDU
	OpSUB
	OpAND
	OpOR
	OpADDI
	OpADDIU
	OpANDI
	OpORI
	OpLW
	OpLH
	OpLB
	OpSW
	OpSH
	OpSB
	OpBEQ
	OpBNE
	OpJ
	OpJAL
	OpJR
	OpSyscall
)

// Category groups opcodes by the functional-unit class that executes them
// and by how the renamer wires destinations and source operands.
type Category uint8

const (
	CategoryALU Category = iota
	CategoryALUImm
	CategoryLoad
	CategoryStore
	CategoryBranch
	CategoryJump
	CategoryJumpLink
	CategoryJumpReg
	CategorySyscall
	CategoryUnknown
)

// Instruction is the decoded, immutable (post-decode) view of one
// instruction word. The renamer copies the fields it needs into a
// micro-op; Instruction itself is never mutated.
type Instruction struct {
	Op       Op
	Category Category
	Word     uint32

	Rs, Rt, Rd uint8

	// Imm16 is the sign-extended 16-bit immediate (addi/addiu/lw/sw/beq/bne).
	Imm16 int32
	// Imm26 is the raw 26-bit jump target field (j/jal).
	Imm26 uint32

	// IsMem is true for loads and stores, selecting the LS reservation
	// station class.
	IsMem bool

	// UsesRs / UsesRt record which source registers this instruction
	// reads.
	UsesRs, UsesRt bool

	// Dest is the destination architectural register, or DestNone when the
	// instruction writes nothing (branches, stores, syscall).
	Dest uint8
}

// DestNone marks an instruction with no destination register. This is
// distinct from register 0 (which is a legal, if useless, destination);
// Instruction.HasDest tells the two apart.
const DestNone uint8 = 0xFF

// HasDest reports whether this instruction writes an architectural
// register.
func (i *Instruction) HasDest() bool {
	return i.Dest != DestNone
}

// SignExtend16 sign-extends a 16-bit immediate to int32, the helper the
// decoder uses to fill Instruction.Imm16 for branch offsets and addi/lw/sw
// addressing.
func SignExtend16(v uint16) int32 {
	return int32(int16(v))
}

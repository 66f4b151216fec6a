// Package ooo implements the Tomasulo-style out-of-order core: reorder
// buffer, register alias table, per-class reservation stations, and the
// commit/issue/decode/fetch stages a single external Tick drives in
// reverse pipeline order.
package ooo

import (
	"fmt"

	"github.com/archsim/tomasulo32/emu"
	"github.com/archsim/tomasulo32/insts"
	"github.com/archsim/tomasulo32/timing/port"
)

// Core is the top-level out-of-order processor. It holds only capability
// references to its memory collaborators: regs and mem are the
// architectural state Execute and Commit read/write directly, while imem
// is the asynchronous Port Fetch and Decode negotiate through.
type Core struct {
	regs *emu.RegFile
	mem  *emu.Memory
	imem port.Port

	decoder *insts.Decoder
	rob     *rob
	rat     *rat
	rs      *stations

	syscallHandler emu.SyscallHandler

	pc       uint32
	fetchBuf *fetchEntry

	squashPending bool
	squashTarget  uint32

	instructionCompleted bool
	exited               bool
	exitStatus           uint32
}

// Option configures a Core at construction time.
type Option func(*Core)

// WithIMemPort overrides the default zero-latency SimplePort with a
// caller-supplied I-memory Port — typically timing/cache.Port, wired up in
// front of the same emu.Memory.
func WithIMemPort(p port.Port) Option {
	return func(c *Core) { c.imem = p }
}

// WithSyscallHandler overrides the default exit-only syscall handler.
func WithSyscallHandler(h emu.SyscallHandler) Option {
	return func(c *Core) { c.syscallHandler = h }
}

// WithEntryPoint sets the initial program counter. Default 0.
func WithEntryPoint(pc uint32) Option {
	return func(c *Core) { c.pc = pc }
}

// NewCore builds a Core over the given register file and memory, sized
// per config (DefaultCoreConfig if nil).
func NewCore(regs *emu.RegFile, mem *emu.Memory, config *CoreConfig, opts ...Option) *Core {
	if config == nil {
		config = DefaultCoreConfig()
	}

	c := &Core{
		regs:    regs,
		mem:     mem,
		decoder: insts.NewDecoder(),
		rob:     newROB(config.RobSize),
		rat:     newRAT(),
		rs:      newStations(config.RsSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.imem == nil {
		c.imem = port.NewSimplePort(mem, config.IMemLatency)
	}
	if c.syscallHandler == nil {
		c.syscallHandler = emu.NewDefaultSyscallHandler()
	}

	return c
}

// Tick advances the core by exactly one cycle. Stages run in reverse
// pipeline order — commit, issue, decode, fetch — so each stage observes
// the state its downstream neighbor left at the end of the *previous*
// tick, the way pipeline latches would separate them in hardware.
func (c *Core) Tick() {
	c.instructionCompleted = false

	c.imem.Tick()

	if c.squashPending {
		c.recovery()
		c.squashPending = false
	}

	if c.exited {
		return
	}

	c.commit()
	c.issue()
	c.decode()
	c.fetch()
}

// ExitStatus reports whether the program has retired an exit syscall, and
// if so, the status it exited with.
func (c *Core) ExitStatus() (status uint32, exited bool) {
	return c.exitStatus, c.exited
}

// InstructionCompleted reports whether Commit retired an instruction
// during the most recent Tick.
func (c *Core) InstructionCompleted() bool {
	return c.instructionCompleted
}

// ROIFlag reports whether the core is inside a region of interest. This
// core never delimits one, so it always reads false; the accessor exists
// so a driver written against a richer core's region-of-interest signal
// still compiles against this one.
func (c *Core) ROIFlag() bool {
	return false
}

// PC returns the current program counter.
func (c *Core) PC() uint32 {
	return c.pc
}

// String renders a one-line trace of the core's visible state:
// "OOO: PC=<pc> ROB=[head->tail]".
func (c *Core) String() string {
	return fmt.Sprintf("OOO: PC=%#010x ROB=[%d->%d]", c.pc, c.rob.head, c.rob.tail)
}

func memRequest(addr uint32, size int) port.Request {
	return port.Request{Op: port.OpRead, Addr: addr, Size: size}
}

func wordFromBytes(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

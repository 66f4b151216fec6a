package ooo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsim/tomasulo32/emu"
	"github.com/archsim/tomasulo32/timing/cache"
	"github.com/archsim/tomasulo32/timing/ooo"
	"github.com/archsim/tomasulo32/timing/port"
)

// loadProgram writes words sequentially into memory starting at base,
// one 32-bit instruction per address.
func loadProgram(mem *emu.Memory, base uint32, words []uint32) {
	for i, w := range words {
		mem.Write32(base+uint32(i*4), w)
	}
}

// runToExit ticks core until it reports an exit syscall retired, up to
// maxTicks, and fails the test if it never does — every scenario below is
// sized to retire well within that bound.
func runToExit(core *ooo.Core, maxTicks int) {
	for i := 0; i < maxTicks; i++ {
		core.Tick()
		if _, exited := core.ExitStatus(); exited {
			return
		}
	}
	Fail("core did not exit within the tick budget")
}

var _ = Describe("Core", func() {
	var (
		regs *emu.RegFile
		mem  *emu.Memory
	)

	BeforeEach(func() {
		regs = &emu.RegFile{}
		mem = emu.NewMemory()
	})

	Describe("NewCore", func() {
		It("builds a core over the given register file and memory", func() {
			core := ooo.NewCore(regs, mem, nil)
			Expect(core).NotTo(BeNil())
			Expect(core.PC()).To(Equal(uint32(0)))
		})
	})

	Describe("Tick", func() {
		It("register-zero immutability: a write to $0 is discarded", func() {
			loadProgram(mem, 0, []uint32{
				addi(0, 0, 7),
				addi(regV0, 0, 10),
				addi(regA0, 0, 0),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, exited := core.ExitStatus()
			Expect(exited).To(BeTrue())
			Expect(status).To(Equal(uint32(0)))
			Expect(regs.ReadReg(0)).To(Equal(uint32(0)))
		})

		It("resolves a RAW hazard through RAT rename", func() {
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 5),
				addi(9, 8, 7), // 12, depends on the still in-flight addi above
				addi(regA0, 9, 0),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(12)))
		})

		It("squashes the branch shadow on a taken branch", func() {
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 1),
				beq(8, 8, 2), // always taken, skips the next two instructions
				addi(8, 0, 99),
				addi(8, 0, 99),
				addi(9, 0, 42),
				addi(regA0, 9, 0),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(42)))
			Expect(regs.ReadReg(8)).To(Equal(uint32(1)))
		})

		It("redirects fetch to a direct jump's target", func() {
			const base = 0x04000000
			loadProgram(mem, base, []uint32{jInst(base + 8)})
			loadProgram(mem, base+8, []uint32{
				addi(regA0, 0, 7),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil, ooo.WithEntryPoint(base))

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(7)))
		})

		It("forwards a load's result to a dependent add", func() {
			mem.Write32(0x40, 10)
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 0x40),
				lw(1, 8, 0),
				addi(9, 1, 1),
				addi(regA0, 9, 0),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(11)))
		})

		It("observes a store through a later load to the same address", func() {
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 99),
				addi(9, 0, 0x200),
				sw(8, 9, 0),
				lw(10, 9, 0),
				addi(regA0, 10, 0),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(99)))
		})

		It("treats an unrecognized instruction as a completing NOP", func() {
			loadProgram(mem, 0, []uint32{
				0xFC000000, // opcode 0x3F: not a recognized instruction
				addi(regA0, 0, 5),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			runToExit(core, 64)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(5)))
		})

		It("reports InstructionCompleted only on the tick a retirement happens", func() {
			loadProgram(mem, 0, []uint32{
				addi(regV0, 0, 10),
				addi(regA0, 0, 3),
				syscallInst(),
			})
			core := ooo.NewCore(regs, mem, nil)

			completions := 0
			for i := 0; i < 32; i++ {
				core.Tick()
				if core.InstructionCompleted() {
					completions++
				}
				if _, exited := core.ExitStatus(); exited {
					break
				}
			}

			Expect(completions).To(Equal(3))
		})

		It("tolerates a multi-tick instruction memory latency", func() {
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 5),
				addi(9, 8, 7),
				addi(regA0, 9, 0),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			imem := port.NewSimplePort(mem, 3)
			core := ooo.NewCore(regs, mem, nil, ooo.WithIMemPort(imem))

			runToExit(core, 128)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(12)))
		})

		It("runs against the cache-backed instruction port", func() {
			loadProgram(mem, 0, []uint32{
				addi(8, 0, 1),
				beq(8, 8, 2),
				addi(8, 0, 99),
				addi(8, 0, 99),
				addi(regA0, 0, 42),
				addi(regV0, 0, 10),
				syscallInst(),
			})
			icache := cache.New(cache.DefaultL1Config(), mem)
			core := ooo.NewCore(regs, mem, nil,
				ooo.WithIMemPort(cache.NewPort(icache)))

			runToExit(core, 256)

			status, _ := core.ExitStatus()
			Expect(status).To(Equal(uint32(42)))
			Expect(icache.Stats().Hits).To(BeNumerically(">", uint64(0)))
		})

		It("never raises the ROI flag", func() {
			core := ooo.NewCore(regs, mem, nil)
			Expect(core.ROIFlag()).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("renders a one-line trace with PC and ROB bounds", func() {
			core := ooo.NewCore(regs, mem, nil)
			Expect(core.String()).To(ContainSubstring("OOO:"))
			Expect(core.String()).To(ContainSubstring("PC="))
			Expect(core.String()).To(ContainSubstring("ROB="))
		})
	})
})

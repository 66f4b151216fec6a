package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsim/tomasulo32/emu"
)

var _ = Describe("DefaultSyscallHandler", func() {
	var (
		rf      *emu.RegFile
		handler *emu.DefaultSyscallHandler
	)

	BeforeEach(func() {
		rf = &emu.RegFile{}
		handler = emu.NewDefaultSyscallHandler()
	})

	It("exits with $a0's value when $v0 is 10", func() {
		rf.WriteReg(emu.RegV0, emu.SyscallExit)
		rf.WriteReg(emu.RegA0, 7)

		result := handler.Handle(rf)
		Expect(result.Exited).To(BeTrue())
		Expect(result.ExitStatus).To(Equal(uint32(7)))
	})

	It("treats any other $v0 value as a no-op", func() {
		rf.WriteReg(emu.RegV0, 4)

		result := handler.Handle(rf)
		Expect(result.Exited).To(BeFalse())
	})
})

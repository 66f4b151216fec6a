package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsim/tomasulo32/emu"
)

var _ = Describe("Memory", func() {
	var mem *emu.Memory

	BeforeEach(func() {
		mem = emu.NewMemory()
	})

	It("reads unwritten bytes as zero", func() {
		Expect(mem.Read8(0x1000)).To(Equal(byte(0)))
	})

	It("reads back a written byte", func() {
		mem.Write8(0x1000, 0x42)
		Expect(mem.Read8(0x1000)).To(Equal(byte(0x42)))
	})

	It("round-trips a 32-bit word in little-endian order", func() {
		mem.Write32(0x04000000, 0x11223344)
		b := mem.ReadWord(0x04000000, 4)
		Expect(b).To(Equal([]byte{0x44, 0x33, 0x22, 0x11}))
		Expect(mem.Read32(0x04000000)).To(Equal(uint32(0x11223344)))
	})

	It("supports sparse addresses far apart", func() {
		mem.Write32(0x04000000, 1)
		mem.Write32(0x10000000, 2)
		Expect(mem.Read32(0x04000000)).To(Equal(uint32(1)))
		Expect(mem.Read32(0x10000000)).To(Equal(uint32(2)))
	})

	It("writes a partial word without disturbing neighboring bytes", func() {
		mem.Write32(0x2000, 0xffffffff)
		mem.WriteWord(0x2000, []byte{0x00, 0x00})
		Expect(mem.Read32(0x2000)).To(Equal(uint32(0xffff0000)))
	})
})

package emu

// Memory is a sparse, byte-addressable memory backing both the direct
// reads/writes Execute performs for loads and stores and the Port-based
// collaborators in timing/cache. It is a flat map rather than a fixed
// array: programs plant code and data at arbitrary addresses (e.g.
// 0x04000000, 0x10000000) without needing a multi-megabyte backing array.
type Memory struct {
	bytes map[uint32]byte
}

// NewMemory creates an empty memory image; every unwritten byte reads as 0.
func NewMemory() *Memory {
	return &Memory{bytes: make(map[uint32]byte)}
}

// Read8 reads a single byte.
func (m *Memory) Read8(addr uint32) byte {
	return m.bytes[addr]
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint32, b byte) {
	if b == 0 {
		delete(m.bytes, addr)
		return
	}
	m.bytes[addr] = b
}

// ReadWord assembles size bytes starting at addr in little-endian order,
// the same byte order instruction words and load/store data use.
func (m *Memory) ReadWord(addr uint32, size int) []byte {
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		out[i] = m.Read8(addr + uint32(i))
	}
	return out
}

// WriteWord stores data (little-endian) at addr.
func (m *Memory) WriteWord(addr uint32, data []byte) {
	for i, b := range data {
		m.Write8(addr+uint32(i), b)
	}
}

// Read32 reads a little-endian 32-bit word. Used by lw.
func (m *Memory) Read32(addr uint32) uint32 {
	b := m.ReadWord(addr, 4)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Write32 writes a little-endian 32-bit word. Used by sw.
func (m *Memory) Write32(addr uint32, v uint32) {
	m.WriteWord(addr, []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

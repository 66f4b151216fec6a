// Package cache provides the production implementation of timing/port.Port:
// a set-associative cache backed by Akita's cache directory, sitting in
// front of an emu.Memory backing store. The Tomasulo core only ever sees
// the port.Port interface, never this type, so swapping it for
// timing/port.SimplePort changes nothing about core correctness, only
// request/response latency.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/archsim/tomasulo32/emu"
)

// Config holds cache geometry and latency parameters.
type Config struct {
	Size          int
	Associativity int
	BlockSize     int
	HitLatency    uint64
	MissLatency   uint64
}

// DefaultL1Config returns a small, fast L1-shaped configuration suitable
// for the short programs this core runs.
func DefaultL1Config() Config {
	return Config{
		Size:          4 * 1024,
		Associativity: 4,
		BlockSize:     16,
		HitLatency:    1,
		MissLatency:   6,
	}
}

// Statistics reports cache activity, useful for a driver's line-trace or
// end-of-run summary.
type Statistics struct {
	Reads     uint64
	Writes    uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a set-associative cache over byte-addressed memory, using
// Akita's directory for tag/LRU bookkeeping, with 32-bit MIPS addresses
// and an emu.Memory backing store.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	dataStore [][]byte
	stats     Statistics
	backing   *emu.Memory
}

// New creates a cache of the given configuration backed by memory.
func New(config Config, memory *emu.Memory) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)
	totalBlocks := numSets * config.Associativity

	dataStore := make([][]byte, totalBlocks)
	for i := range dataStore {
		dataStore[i] = make([]byte, config.BlockSize)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		dataStore: dataStore,
		backing:   memory,
	}
}

// Stats returns a snapshot of cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

func (c *Cache) blockAddr(addr uint32) uint64 {
	bs := uint64(c.config.BlockSize)
	return (uint64(addr) / bs) * bs
}

// access looks up addr, fetching from the backing store on a miss, and
// returns the block plus its latency and whether it was a hit.
func (c *Cache) access(addr uint32) (block *akitacache.Block, latency uint64, hit bool) {
	blockAddr := c.blockAddr(addr)

	block = c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		return block, c.config.HitLatency, true
	}

	c.stats.Misses++
	victim := c.directory.FindVictim(blockAddr)
	victimData := c.dataStore[c.blockIndex(victim)]

	if victim.IsValid {
		c.stats.Evictions++
		if victim.IsDirty {
			c.backing.WriteWord(uint32(victim.Tag), victimData)
		}
	}

	fresh := c.backing.ReadWord(uint32(blockAddr), c.config.BlockSize)
	copy(victimData, fresh)

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)

	return victim, c.config.MissLatency, false
}

// Read performs a cache-mediated read of size bytes at addr.
func (c *Cache) Read(addr uint32, size int) (data []byte, latency uint64) {
	c.stats.Reads++
	block, latency, _ := c.access(addr)
	offset := addr - uint32(block.Tag)
	blockData := c.dataStore[c.blockIndex(block)]
	return append([]byte(nil), blockData[offset:offset+uint32(size)]...), latency
}

// Write performs a cache-mediated, write-allocate write of data at addr.
func (c *Cache) Write(addr uint32, data []byte) (latency uint64) {
	c.stats.Writes++
	block, latency, _ := c.access(addr)
	offset := addr - uint32(block.Tag)
	blockData := c.dataStore[c.blockIndex(block)]
	copy(blockData[offset:], data)
	block.IsDirty = true
	return latency
}

// Reset invalidates every line without writeback.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}

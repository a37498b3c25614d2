package listing

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Statistics holds decoded block cache statistics.
type Statistics struct {
	Reads     uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// blockFiller decodes the block starting at blockAddr into lines.
type blockFiller func(blockAddr uint64, lines []Line)

// AccessResult contains the result of a cache access.
type AccessResult struct {
	// Hit indicates whether the line was already decoded.
	Hit bool
	// Line is the decoded line at the requested address.
	Line Line
	// Evicted is true if a valid block made room for the new one.
	Evicted bool
	// EvictedAddr is the address of the evicted block.
	EvictedAddr uint64
}

// Cache keeps decoded blocks of instruction words in a set-associative
// directory with LRU replacement.
type Cache struct {
	blockWords    int
	blockSize     int
	associativity int

	directory *akitacache.DirectoryImpl

	// indexed by setID*associativity + wayID
	lineStore [][]Line

	stats Statistics
}

// NewCache creates a cache holding numBlocks blocks of blockWords words.
func NewCache(numBlocks, associativity, blockWords int) *Cache {
	numSets := numBlocks / associativity
	blockSize := blockWords * 4

	lineStore := make([][]Line, numSets*associativity)
	for i := range lineStore {
		lineStore[i] = make([]Line, blockWords)
	}

	return &Cache{
		blockWords:    blockWords,
		blockSize:     blockSize,
		associativity: associativity,
		directory: akitacache.NewDirectory(
			numSets,
			associativity,
			blockSize,
			akitacache.NewLRUVictimFinder(),
		),
		lineStore: lineStore,
	}
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.associativity + block.WayID
}

func (c *Cache) blockAddr(addr uint64) uint64 {
	return addr / uint64(c.blockSize) * uint64(c.blockSize)
}

// Read returns the decoded line at addr, calling fill to decode the
// enclosing block on a miss. addr must be word aligned.
func (c *Cache) Read(addr uint64, fill blockFiller) AccessResult {
	c.stats.Reads++

	blockAddr := c.blockAddr(addr)
	slot := int(addr-blockAddr) / 4

	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		return AccessResult{
			Hit:  true,
			Line: c.lineStore[c.blockIndex(block)][slot],
		}
	}

	c.stats.Misses++
	result := AccessResult{}

	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		lines := make([]Line, c.blockWords)
		fill(blockAddr, lines)
		result.Line = lines[slot]
		return result
	}
	lines := c.lineStore[c.blockIndex(victim)]

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = victim.Tag
	}

	clear(lines)
	fill(blockAddr, lines)

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)

	result.Line = lines[slot]
	return result
}

// Invalidate drops the block holding addr, e.g. after the debugger wrote
// to code memory.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
		clear(c.lineStore[c.blockIndex(block)])
	}
}

// Reset drops every block and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	for _, lines := range c.lineStore {
		clear(lines)
	}
	c.stats = Statistics{}
}

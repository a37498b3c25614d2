package listing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/listing"
)

var _ = Describe("Cache", func() {
	var (
		c     *listing.Cache
		fills []uint64
		fill  func(blockAddr uint64, lines []listing.Line)
	)

	BeforeEach(func() {
		// 4 blocks, 2-way, 4 words per block: 2 sets of 16-byte blocks
		c = listing.NewCache(4, 2, 4)
		fills = nil
		fill = func(blockAddr uint64, lines []listing.Line) {
			fills = append(fills, blockAddr)
			for i := range lines {
				lines[i] = listing.Line{Addr: blockAddr + uint64(4*i), Word: uint32(i)}
			}
		}
	})

	It("should miss on a cold cache", func() {
		result := c.Read(0x104, fill)

		Expect(result.Hit).To(BeFalse())
		Expect(result.Line.Addr).To(Equal(uint64(0x104)))
		Expect(result.Line.Word).To(Equal(uint32(1)))
		Expect(fills).To(Equal([]uint64{0x100}))
	})

	It("should hit on other words of the same block", func() {
		c.Read(0x100, fill)
		result := c.Read(0x10C, fill)

		Expect(result.Hit).To(BeTrue())
		Expect(result.Line.Addr).To(Equal(uint64(0x10C)))
		Expect(fills).To(HaveLen(1))

		stats := c.Stats()
		Expect(stats.Reads).To(Equal(uint64(2)))
		Expect(stats.Hits).To(Equal(uint64(1)))
		Expect(stats.Misses).To(Equal(uint64(1)))
	})

	It("should evict the least recently used block of a set", func() {
		// 0x00, 0x20 and 0x40 all map to set 0
		c.Read(0x00, fill)
		c.Read(0x20, fill)
		c.Read(0x00, fill)

		result := c.Read(0x40, fill)
		Expect(result.Evicted).To(BeTrue())
		Expect(result.EvictedAddr).To(Equal(uint64(0x20)))

		Expect(c.Read(0x00, fill).Hit).To(BeTrue())
		Expect(c.Read(0x20, fill).Hit).To(BeFalse())
		Expect(c.Stats().Evictions).To(Equal(uint64(2)))
	})

	It("should not evict across sets", func() {
		c.Read(0x00, fill)
		c.Read(0x10, fill)
		c.Read(0x30, fill)

		Expect(c.Read(0x00, fill).Hit).To(BeTrue())
		Expect(c.Stats().Evictions).To(BeZero())
	})

	It("should invalidate a block", func() {
		c.Read(0x100, fill)
		c.Invalidate(0x108)

		Expect(c.Read(0x100, fill).Hit).To(BeFalse())
		Expect(fills).To(Equal([]uint64{0x100, 0x100}))
	})

	It("should reset", func() {
		c.Read(0x100, fill)
		c.Reset()

		Expect(c.Stats()).To(Equal(listing.Statistics{}))
		Expect(c.Read(0x100, fill).Hit).To(BeFalse())
	})
})

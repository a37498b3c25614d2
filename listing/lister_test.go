package listing_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sarchlab/a64dis/insts"
	"github.com/sarchlab/a64dis/listing"
	"github.com/sarchlab/a64dis/loader"
)

var _ = Describe("Lister", func() {
	var (
		img    *loader.Image
		lister *listing.Lister
		hook   *test.Hook
	)

	BeforeEach(func() {
		img = loader.FromWords(0x1000, []uint32{
			0xA9BF7BFD, // stp x29, x30, [sp, #-16]!
			0x94000003, // bl 0x1010
			0xA8C17BFD, // ldp x29, x30, [sp], #16
			0xD65F03C0, // ret
			0x9100A820, // add x0, x1, #0x2a
			0x54FFFFE0, // b.eq 0x1010
			0xFFFFFFFF, // unallocated
			0xD65F03C0, // ret
		})

		var logger *logrus.Logger
		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		symbols := map[uint64]string{0x1000: "main", 0x1010: "helper"}

		var err error
		lister, err = listing.New(img, nil,
			listing.WithLogger(logger),
			listing.WithSymbols(func(addr uint64) (string, bool) {
				name, ok := symbols[addr]
				return name, ok
			}),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject an invalid config", func() {
		config := listing.DefaultConfig()
		config.BlockWords = 3

		_, err := listing.New(img, config)
		Expect(err).To(HaveOccurred())
	})

	Describe("Disassemble", func() {
		It("should decode consecutive words", func() {
			lines, err := lister.Disassemble(0x1000, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(8))

			Expect(lines[0].Addr).To(Equal(uint64(0x1000)))
			Expect(lines[0].Inst.Text).To(Equal("stp x29, x30, [sp, #-16]!"))
			Expect(lines[3].Inst.Text).To(Equal("ret"))
			Expect(lines[4].Word).To(Equal(uint32(0x9100A820)))
			Expect(lines[4].Inst.Text).To(Equal("add x0, x1, #0x2a"))
		})

		It("should classify branches", func() {
			lines, err := lister.Disassemble(0x1004, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(lines[0].Flow).To(Equal(insts.FlowCall))
			Expect(lines[0].HasTarget).To(BeTrue())
			Expect(lines[0].Target).To(Equal(uint64(0x1010)))

			line, err := lister.At(0x1014)
			Expect(err).NotTo(HaveOccurred())
			Expect(line.Inst.Text).To(Equal("b.eq 0x1010"))
			Expect(line.Flow).To(Equal(insts.FlowCondBranch))
			Expect(line.Target).To(Equal(uint64(0x1010)))
		})

		It("should keep undecodable words in the listing", func() {
			line, err := lister.At(0x1018)
			Expect(err).NotTo(HaveOccurred())

			Expect(line.Mapped()).To(BeTrue())
			Expect(line.Decoded()).To(BeFalse())
			Expect(errors.Is(line.Err, insts.ErrUnallocated)).To(BeTrue())
			Expect(line.Inst.Text).To(Equal(".inst 0xffffffff"))
		})

		It("should log undecodable words", func() {
			_, err := lister.Disassemble(0x1000, 8)
			Expect(err).NotTo(HaveOccurred())

			Expect(hook.Entries).To(HaveLen(1))
			entry := hook.LastEntry()
			Expect(entry.Level).To(Equal(logrus.DebugLevel))
			Expect(entry.Data).To(HaveKeyWithValue("addr", "0x1018"))
			Expect(entry.Data).To(HaveKeyWithValue("word", "0xffffffff"))
		})

		It("should mark unmapped words", func() {
			lines, err := lister.Disassemble(0x101C, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(lines[0].Mapped()).To(BeTrue())
			Expect(lines[1].Mapped()).To(BeFalse())
			Expect(errors.Is(lines[1].Err, loader.ErrUnmapped)).To(BeTrue())
		})

		It("should reject misaligned addresses", func() {
			_, err := lister.Disassemble(0x1002, 1)
			Expect(errors.Is(err, listing.ErrMisaligned)).To(BeTrue())

			_, err = lister.At(0x1001)
			Expect(errors.Is(err, listing.ErrMisaligned)).To(BeTrue())
		})

		It("should bound the number of lines", func() {
			_, err := lister.Disassemble(0x1000, listing.DefaultConfig().MaxLines+1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Range", func() {
		It("should cover a half-open range", func() {
			lines, err := lister.Range(0x1000, 0x1010)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(4))
			Expect(lines[3].Addr).To(Equal(uint64(0x100C)))
		})

		It("should reject an inverted range", func() {
			_, err := lister.Range(0x1010, 0x1000)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Caching", func() {
		It("should decode a block once", func() {
			_, err := lister.Disassemble(0x1000, 8)
			Expect(err).NotTo(HaveOccurred())
			_, err = lister.Disassemble(0x1000, 8)
			Expect(err).NotTo(HaveOccurred())

			stats := lister.Stats()
			Expect(stats.Misses).To(Equal(uint64(1)))
			Expect(stats.Hits).To(Equal(uint64(15)))
			Expect(hook.Entries).To(HaveLen(1))
		})

		It("should decode again after invalidation", func() {
			_, err := lister.At(0x1000)
			Expect(err).NotTo(HaveOccurred())

			lister.Invalidate(0x1004)
			_, err = lister.At(0x1000)
			Expect(err).NotTo(HaveOccurred())

			Expect(lister.Stats().Misses).To(Equal(uint64(2)))
		})
	})

	Describe("Format", func() {
		It("should label symbols and branch targets", func() {
			lines, err := lister.Disassemble(0x1000, 2)
			Expect(err).NotTo(HaveOccurred())

			out := lister.Format(lines)
			Expect(out).To(ContainSubstring("0000000000001000 <main>:\n"))
			Expect(out).To(ContainSubstring("    1000:\ta9bf7bfd \tstp x29, x30, [sp, #-16]!\n"))
			Expect(out).To(ContainSubstring("    1004:\t94000003 \tbl 0x1010 <helper>\n"))
		})

		It("should show unmapped words", func() {
			lines, err := lister.Disassemble(0x1020, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(lister.Format(lines)).To(Equal("    1020:\t<unmapped>\n"))
		})
	})

	Describe("Summarize", func() {
		It("should classify a listing", func() {
			lines, err := lister.Disassemble(0x1000, 9)
			Expect(err).NotTo(HaveOccurred())

			s := listing.Summarize(lines)
			Expect(s.Lines).To(Equal(9))
			Expect(s.Unmapped).To(Equal(1))
			Expect(s.Undecodable).To(Equal([]uint64{0x1018}))
			Expect(s.Groups).To(Equal(map[insts.Group]int{
				insts.GroupLoadStore: 2,
				insts.GroupBranchSys: 4,
				insts.GroupDPImm:     1,
			}))
			Expect(s.Flows[insts.FlowReturn]).To(Equal(2))
			Expect(s.Flows[insts.FlowNone]).To(Equal(3))
			Expect(s.Targets).To(Equal([]uint64{0x1010}))
			Expect(s.Calls).To(Equal([]uint64{0x1010}))

			outside, ok := s.InRange(0x1000, 0x1020)
			Expect(ok).To(BeTrue())
			Expect(outside).To(BeEmpty())

			outside, ok = s.InRange(0x1000, 0x1008)
			Expect(ok).To(BeFalse())
			Expect(outside).To(Equal([]uint64{0x1010}))
		})
	})
})

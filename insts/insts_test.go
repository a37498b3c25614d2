package insts_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/insts"
)

var _ = Describe("Bit utilities", func() {
	It("should extract inclusive bit ranges", func() {
		// RET: Rn is bits [9:5]
		Expect(insts.Bits(0xD65F03C0, 5, 9)).To(Equal(uint32(30)))
		Expect(insts.Bits(0xD65F03C0, 0, 31)).To(Equal(uint32(0xD65F03C0)))
		Expect(insts.Bit(0x80000000, 31)).To(Equal(uint32(1)))
	})

	It("should sign extend", func() {
		Expect(insts.SignExtend(0x1FF, 9)).To(Equal(int64(-1)))
		Expect(insts.SignExtend(0x0FF, 9)).To(Equal(int64(255)))
		Expect(insts.SignExtend(0x40000, 19)).To(Equal(int64(-0x40000)))
	})

	It("should replicate and count", func() {
		Expect(insts.Replicate(0b01, 2, 4)).To(Equal(uint64(0x55)))
		Expect(insts.Ones(64)).To(Equal(^uint64(0)))
		Expect(insts.HighestSetBit(0x10, 8)).To(Equal(4))
		Expect(insts.HighestSetBit(0, 8)).To(Equal(-1))
		Expect(insts.LowestSetBit(0, 8)).To(Equal(8))
		Expect(insts.BitCount(0xFF)).To(Equal(8))
	})

	Describe("DecodeBitMasks", func() {
		It("should decode a single bit", func() {
			wmask, _, err := insts.DecodeBitMasks(1, 0, 0, true, 64)
			Expect(err).NotTo(HaveOccurred())
			Expect(wmask).To(Equal(uint64(1)))
		})

		It("should replicate small elements", func() {
			// N=0, imms=111100: 2-bit elements with one bit set
			wmask, _, err := insts.DecodeBitMasks(0, 0x3C, 0, true, 64)
			Expect(err).NotTo(HaveOccurred())
			Expect(wmask).To(Equal(uint64(0x5555555555555555)))
		})

		It("should reject the all-ones element", func() {
			_, _, err := insts.DecodeBitMasks(1, 0x3F, 0, true, 64)
			Expect(err).To(HaveOccurred())
		})

		It("should reject elements wider than the register", func() {
			_, _, err := insts.DecodeBitMasks(1, 0, 0, true, 32)
			Expect(err).To(HaveOccurred())
		})
	})

	It("should expand FP immediates", func() {
		Expect(insts.VFPExpandImm(0x70)).To(Equal(1.0))
		Expect(insts.VFPExpandImm(0x00)).To(Equal(2.0))
		Expect(insts.VFPExpandImm(0xF0)).To(Equal(-1.0))
		Expect(insts.VFPExpandImm(0x60)).To(Equal(0.5))
	})

	It("should expand SIMD modified immediates", func() {
		Expect(insts.AdvSIMDExpandImm(0, 0b0010, 0x01)).To(Equal(uint64(0x0000010000000100)))
		Expect(insts.AdvSIMDExpandImm(1, 0b1110, 0x81)).To(Equal(uint64(0xFF000000000000FF)))
	})
})

var _ = Describe("Registers", func() {
	It("should name index 31 by context", func() {
		Expect(insts.RegisterName(insts.TableGPR, 31, 64, true)).To(Equal("xzr"))
		Expect(insts.RegisterName(insts.TableGPR, 31, 64, false)).To(Equal("sp"))
		Expect(insts.RegisterName(insts.TableGPR, 31, 32, true)).To(Equal("wzr"))
		Expect(insts.RegisterName(insts.TableGPR, 31, 32, false)).To(Equal("wsp"))
	})

	It("should name scalar SIMD&FP registers by width", func() {
		Expect(insts.RegisterName(insts.TableFP, 7, 8, false)).To(Equal("b7"))
		Expect(insts.RegisterName(insts.TableFP, 7, 128, false)).To(Equal("q7"))
	})

	It("should render vector elements", func() {
		r := insts.Register{
			Table:       insts.TableVector,
			Index:       2,
			Vector:      true,
			Arrangement: insts.ArrS,
			Lane:        3,
			Indexed:     true,
		}
		Expect(r.String()).To(Equal("v2.s[3]"))
	})

	It("should panic on an out of range index", func() {
		Expect(func() {
			insts.RegisterName(insts.TableGPR, 32, 64, true)
		}).To(Panic())
	})
})

var _ = Describe("Condition codes", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should render all sixteen suffixes on B.cond", func() {
		names := []string{
			"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
			"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
		}
		for c, name := range names {
			// B.cond with imm19=0
			inst, err := decoder.Decode(0x54000000|uint32(c), 0x1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Cond).To(Equal(insts.Cond(c)))
			Expect(inst.Text).To(Equal(fmt.Sprintf("b.%s 0x1000", name)))
		}
	})

	It("should invert", func() {
		Expect(insts.CondEQ.Invert()).To(Equal(insts.CondNE))
		Expect(insts.CondGE.Invert()).To(Equal(insts.CondLT))
	})
})

var _ = Describe("Control flow", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should classify calls with their targets", func() {
		inst, _ := decoder.Decode(0x94000010, 0x1000)

		Expect(inst.Flow()).To(Equal(insts.FlowCall))
		target, ok := inst.BranchTarget()
		Expect(ok).To(BeTrue())
		Expect(target).To(Equal(uint64(0x1040)))
	})

	It("should classify conditional branches", func() {
		inst, _ := decoder.Decode(0x54000040, 0x2000)

		Expect(inst.Flow()).To(Equal(insts.FlowCondBranch))
		target, ok := inst.BranchTarget()
		Expect(ok).To(BeTrue())
		Expect(target).To(Equal(uint64(0x2008)))
	})

	It("should classify returns without a target", func() {
		inst, _ := decoder.Decode(0xD65F03C0, 0)

		Expect(inst.Flow()).To(Equal(insts.FlowReturn))
		_, ok := inst.BranchTarget()
		Expect(ok).To(BeFalse())
	})

	It("should not give ADR a branch target", func() {
		inst, _ := decoder.Decode(0x10000020, 0x1000)

		Expect(inst.Flow()).To(Equal(insts.FlowNone))
		_, ok := inst.BranchTarget()
		Expect(ok).To(BeFalse())
	})

	It("should classify exceptions", func() {
		inst, _ := decoder.Decode(0xD4000001, 0)
		Expect(inst.Flow()).To(Equal(insts.FlowException))
		Expect(inst.Flow().String()).To(Equal("exception"))
	})
})

var _ = Describe("Decode properties", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should be deterministic", func() {
		words := []uint32{0x9100A820, 0xA9BF7BFD, 0x4EA28420, 0xFFFFFFFF}
		for _, word := range words {
			first, err1 := decoder.Decode(word, 0x400)
			second, err2 := decoder.Decode(word, 0x400)

			Expect(second).To(Equal(first))
			Expect(errors.Is(err1, insts.ErrUnallocated)).To(Equal(errors.Is(err2, insts.ErrUnallocated)))
		}
	})

	It("should handle any word without panicking", func() {
		rng := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 200000; i++ {
			word := rng.Uint32()
			inst, err := decoder.Decode(word, 0x10000)

			Expect(inst).NotTo(BeNil())
			Expect(inst.Text).NotTo(BeEmpty())
			if err != nil {
				Expect(errors.Is(err, insts.ErrUnallocated)).To(BeTrue())
				Expect(inst.Op).To(Equal(insts.OpUndefined))
				Expect(inst.Text).To(Equal(fmt.Sprintf(".inst 0x%08x", word)))
			} else {
				Expect(inst.Op).NotTo(Equal(insts.OpUndefined))
			}
		}
	})

	It("should decode a word the same way with and without fields", func() {
		plain := insts.NewDecoder(insts.WithFields(false))
		rng := rand.New(rand.NewPCG(3, 4))
		for i := 0; i < 50000; i++ {
			word := rng.Uint32()
			if i%2 == 1 {
				// bits [27:25] = 111 selects the SIMD&FP tables
				word |= 0x0E000000
			}

			first, err1 := decoder.Decode(word, 0x10000)
			second, err2 := decoder.Decode(word, 0x10000)
			other, err3 := plain.Decode(word, 0x10000)

			Expect(err2 == nil).To(Equal(err1 == nil), "word 0x%08x", word)
			Expect(err3 == nil).To(Equal(err1 == nil), "word 0x%08x", word)
			for _, inst := range []*insts.Instruction{second, other} {
				Expect(inst.Text).To(Equal(first.Text), "word 0x%08x", word)
				Expect(inst.Mnemonic()).To(Equal(first.Mnemonic()))
				Expect(inst.Op).To(Equal(first.Op))
				Expect(cmp.Diff(first.Operands, inst.Operands)).To(BeEmpty(), "word 0x%08x", word)
			}
			Expect(second.Fields).To(Equal(first.Fields))
			Expect(other.Fields).To(BeEmpty())
		}
	})

	Describe("Alias exclusivity", func() {
		rng := rand.New(rand.NewPCG(5, 6))

		// sample fills the bits outside mask with random values.
		sample := func(mask, value uint32) uint32 {
			return rng.Uint32()&^mask | value
		}

		// ORR (shifted register): sf | 01 | 01010 | shift | 0 | Rm | imm6 | Rn | Rd
		It("should never show ORR from ZR without a shift as ORR", func() {
			for i := 0; i < 20000; i++ {
				// N=0, shift=0, imm6=0, Rn=31
				word := sample(0x7FE0FFE0, 0x2A0003E0)
				inst, err := decoder.Decode(word, 0)

				Expect(err).NotTo(HaveOccurred(), "word 0x%08x", word)
				Expect(inst.Op).To(Equal(insts.OpMOV), "word 0x%08x", word)
				Expect(inst.Mnemonic()).NotTo(Equal("orr"))
			}
		})

		// SUBS (shifted register): sf | 11 | 01011 | shift | 0 | Rm | imm6 | Rn | Rd
		It("should never show SUBS to ZR as SUBS", func() {
			for i := 0; i < 20000; i++ {
				// shift bit 23 and imm6 bit 5 clear keep the word allocated
				word := sample(0x7FA0801F, 0x6B00001F)
				inst, err := decoder.Decode(word, 0)

				Expect(err).NotTo(HaveOccurred(), "word 0x%08x", word)
				Expect(inst.Op).To(Equal(insts.OpCMP), "word 0x%08x", word)
				Expect(inst.Mnemonic()).NotTo(Equal("subs"))
			}
		})

		// CSINC: sf | 0 | 0 | 11010100 | Rm | cond | 01 | Rn | Rd
		It("should never show CSINC with equal sources as CSINC", func() {
			for i := 0; i < 20000; i++ {
				word := sample(0x7FE00C00, 0x1A800400)
				rn := insts.Bits(word, 5, 9)
				word = word&^(0x1F<<16) | rn<<16
				if insts.Bits(word, 13, 15) == 0b111 {
					// AL and NV keep CSINC
					word &^= 1 << 13
				}
				inst, err := decoder.Decode(word, 0)

				Expect(err).NotTo(HaveOccurred(), "word 0x%08x", word)
				Expect(inst.Op).To(BeElementOf(insts.OpCINC, insts.OpCSET), "word 0x%08x", word)
				Expect(inst.Mnemonic()).NotTo(Equal("csinc"))
			}
		})
	})

	It("should mark the text with the mnemonic of the instruction", func() {
		inst, err := decoder.Decode(0xF8627820, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic()).To(Equal("ldr"))
		Expect(inst.Op.String()).To(Equal("ldr"))
	})

	It("should be safe for concurrent use", func() {
		words := []uint32{0x9100A820, 0xAA0103E0, 0x1E222820, 0x4E212820}
		want := make([]string, len(words))
		for i, word := range words {
			inst, _ := decoder.Decode(word, 0)
			want[i] = inst.Text
		}

		var wg sync.WaitGroup
		results := make([][]string, 8)
		for g := range results {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for _, word := range words {
					inst, _ := decoder.Decode(word, 0)
					results[g] = append(results[g], inst.Text)
				}
			}(g)
		}
		wg.Wait()

		for _, got := range results {
			Expect(got).To(Equal(want))
		}
	})

	It("should release instructions", func() {
		inst, _ := decoder.Decode(0x9100A820, 0)
		insts.Release(inst)

		Expect(*inst).To(BeZero())
		Expect(func() { insts.Release(nil) }).NotTo(Panic())
	})
})

package insts_test

import (
	"testing"

	"github.com/sarchlab/a64dis/insts"
)

// encodeADDImm encodes ADD Xd, Xn, #imm (64-bit).
func encodeADDImm(rd, rn uint8, imm uint16) uint32 {
	// sf=1, op=0, S=0, 100010, sh=0, imm12, Rn, Rd
	return (1 << 31) | (0b100010 << 23) | (uint32(imm&0xFFF) << 10) |
		(uint32(rn) << 5) | uint32(rd)
}

// encodeBCond encodes B.cond with a signed offset in instructions.
func encodeBCond(offsetInsts int32, cond uint8) uint32 {
	imm19 := uint32(offsetInsts) & 0x7FFFF
	return (0x54 << 24) | (imm19 << 5) | uint32(cond&0xF)
}

func benchmarkDecode(b *testing.B, words []uint32, opts ...insts.Option) {
	d := insts.NewDecoder(opts...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		word := words[i%len(words)]
		inst, _ := d.Decode(word, uint64(4*i))
		insts.Release(inst)
	}
}

func BenchmarkDecodeALU(b *testing.B) {
	words := []uint32{
		encodeADDImm(0, 1, 42),
		encodeADDImm(2, 3, 7),
		encodeBCond(-2, 1),
	}
	benchmarkDecode(b, words)
}

func BenchmarkDecodeALUNoFields(b *testing.B) {
	words := []uint32{
		encodeADDImm(0, 1, 42),
		encodeADDImm(2, 3, 7),
		encodeBCond(-2, 1),
	}
	benchmarkDecode(b, words, insts.WithFields(false))
}

func BenchmarkDecodeMixed(b *testing.B) {
	benchmarkDecode(b, []uint32{
		0xA9BF7BFD, // stp x29, x30, [sp, #-16]!
		0xF9400420, // ldr x0, [x1, #8]
		0x1E222820, // fadd s0, s1, s2
		0x4EA28420, // add v0.4s, v1.4s, v2.4s
		0x4E284820, // aese v0.16b, v1.16b
		0xFFFFFFFF, // unallocated
	})
}

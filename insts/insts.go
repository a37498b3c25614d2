// Package insts provides AArch64 instruction decoding for disassembly.
//
// This package turns a raw 32-bit A64 instruction word and its address into
// a structured record: the instruction group, an instruction identifier,
// an optional condition code, the encoding fields that were extracted,
// typed operands and the rendered disassembly text. It covers:
//   - Data Processing (Immediate): ADR, add/sub, logical, move wide,
//     bitfield and extract
//   - Branches, exception generation and system instructions
//   - Loads and stores, including pairs, exclusives, LSE atomics and
//     Advanced SIMD structure loads
//   - Data Processing (Register)
//   - Scalar floating point and Advanced SIMD
//
// Preferred disassembly (aliases such as MOV, CMP or UBFX) is applied the
// way the architecture reference describes it. Encodings the architecture
// leaves unallocated are rejected with ErrUnallocated.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0x91000420, 0x1000) // add x0, x1, #0x1
//	if err != nil {
//		// inst still carries a ".inst 0x..." fallback record
//	}
//	fmt.Println(inst.Text)
//
// A Decoder holds no mutable state and may be shared between goroutines.
package insts

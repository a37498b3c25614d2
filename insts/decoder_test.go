package insts_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	decode := func(word uint32, pc uint64) *insts.Instruction {
		inst, err := decoder.Decode(word, pc)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, inst).NotTo(BeNil())
		return inst
	}

	text := func(word uint32) string {
		return decode(word, 0).Text
	}

	Describe("Data Processing (Immediate)", func() {
		// ADD X0, X1, #42    -> 0x9100A820
		// Encoding: sf=1, op=0, S=0, 100010, sh=0, imm12=42, Rn=1, Rd=0
		It("should decode ADD X0, X1, #42", func() {
			inst := decode(0x9100A820, 0)

			Expect(inst.Group).To(Equal(insts.GroupDPImm))
			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Text).To(Equal("add x0, x1, #0x2a"))

			imm12, ok := inst.Field("imm12")
			Expect(ok).To(BeTrue())
			Expect(imm12).To(Equal(uint32(42)))
			rn, _ := inst.Field("Rn")
			Expect(rn).To(Equal(uint32(1)))
		})

		// ADD X0, X1, #1 -> 0x91000420
		It("should decode ADD X0, X1, #1", func() {
			Expect(text(0x91000420)).To(Equal("add x0, x1, #0x1"))
		})

		// ADD X0, X1, #1, LSL #12 -> 0x91400420
		// Encoding: sh=1, imm12=1
		It("should keep the shift of a shifted immediate", func() {
			inst := decode(0x91400420, 0)

			Expect(inst.Text).To(Equal("add x0, x1, #0x1, lsl #12"))
			Expect(inst.Operands).To(HaveLen(4))
			Expect(inst.Operands[3]).To(Equal(insts.Shift{Kind: insts.ShiftLSL, Amount: 12}))
		})

		// MOV X0, SP -> 0x910003E0 (ADD X0, SP, #0)
		It("should show ADD #0 with SP as MOV", func() {
			inst := decode(0x910003E0, 0)

			Expect(inst.Op).To(Equal(insts.OpMOV))
			Expect(inst.Text).To(Equal("mov x0, sp"))
		})

		// CMP X1, #1 -> 0xF100043F (SUBS XZR, X1, #1)
		It("should show SUBS to XZR as CMP", func() {
			Expect(text(0xF100043F)).To(Equal("cmp x1, #0x1"))
		})

		// MOVZ X0, #42 -> 0xD2800540
		It("should show MOVZ as MOV", func() {
			Expect(text(0xD2800540)).To(Equal("mov x0, #0x2a"))
		})

		// LSR X0, X1, #4 -> 0xD344FC20 (UBFM X0, X1, #4, #63)
		It("should show UBFM as LSR", func() {
			Expect(text(0xD344FC20)).To(Equal("lsr x0, x1, #4"))
		})

		// LSL X0, X1, #4 -> 0xD37CEC20 (UBFM X0, X1, #60, #59)
		It("should show UBFM as LSL", func() {
			Expect(text(0xD37CEC20)).To(Equal("lsl x0, x1, #4"))
		})

		// ADR X0, .+4 -> 0x10000020
		// Encoding: op=0, immlo=0, immhi=1
		It("should resolve ADR against the PC", func() {
			inst := decode(0x10000020, 0x1000)

			Expect(inst.Text).To(Equal("adr x0, 0x1004"))
		})

		// ADRP X0, #0 -> 0x90000000
		It("should resolve ADRP against the page of the PC", func() {
			Expect(decode(0x90000000, 0x1234).Text).To(Equal("adrp x0, 0x1000"))
		})
	})

	Describe("Branches, Exception Generating and System", func() {
		// RET -> 0xD65F03C0
		It("should decode RET", func() {
			inst := decode(0xD65F03C0, 0)

			Expect(inst.Group).To(Equal(insts.GroupBranchSys))
			Expect(inst.Op).To(Equal(insts.OpRET))
			Expect(inst.Text).To(Equal("ret"))
		})

		// B . -> 0x14000000 at 0x1000
		It("should decode B to its own address", func() {
			Expect(decode(0x14000000, 0x1000).Text).To(Equal("b 0x1000"))
		})

		// BL .+0x40 -> 0x94000010 at 0x1000
		It("should decode BL", func() {
			Expect(decode(0x94000010, 0x1000).Text).To(Equal("bl 0x1040"))
		})

		// B.EQ .+8 -> 0x54000040 at 0x2000
		It("should append the condition to B.cond", func() {
			inst := decode(0x54000040, 0x2000)

			Expect(inst.HasCond).To(BeTrue())
			Expect(inst.Cond).To(Equal(insts.CondEQ))
			Expect(inst.Mnemonic()).To(Equal("b.eq"))
			Expect(inst.Text).To(Equal("b.eq 0x2008"))
		})

		// NOP -> 0xD503201F
		It("should decode NOP", func() {
			Expect(text(0xD503201F)).To(Equal("nop"))
		})

		// SVC #0 -> 0xD4000001
		It("should decode SVC", func() {
			Expect(text(0xD4000001)).To(Equal("svc #0x0"))
		})

		// MRS X0, SP_EL0 -> 0xD5384100
		// Encoding: L=1, o0=1, op1=0, CRn=4, CRm=1, op2=0
		It("should name system registers", func() {
			Expect(text(0xD5384100)).To(Equal("mrs x0, sp_el0"))
		})

		// DC CGVADP, X17 -> 0xD50B7D71
		// Encoding: L=0, op1=3, CRn=7, CRm=13, op2=3, Rt=17
		It("should show tag cache maintenance as DC", func() {
			inst := decode(0xD50B7D71, 0)

			Expect(inst.Op).To(Equal(insts.OpDC))
			Expect(inst.Text).To(Equal("dc cgvadp, x17"))
		})
	})

	Describe("Loads and Stores", func() {
		// STP X29, X30, [SP, #-16]! -> 0xA9BF7BFD
		It("should decode a pre-indexed pair", func() {
			inst := decode(0xA9BF7BFD, 0)
			offset := int64(-16)

			Expect(inst.Group).To(Equal(insts.GroupLoadStore))
			Expect(inst.AddrMode).To(Equal(insts.AddrModePreIndex))
			Expect(inst.Text).To(Equal("stp x29, x30, [sp, #-16]!"))
			Expect(cmp.Diff([]insts.Operand{
				insts.Register{Table: insts.TableGPR, Index: 29, Width: 64, PreferZR: true},
				insts.Register{Table: insts.TableGPR, Index: 30, Width: 64, PreferZR: true},
				insts.Register{Table: insts.TableGPR, Index: 31, Width: 64},
				insts.Immediate{Kind: insts.ImmSigned, Value: uint64(offset)},
			}, inst.Operands)).To(BeEmpty())
		})

		// LDP X29, X30, [SP], #16 -> 0xA8C17BFD
		It("should decode a post-indexed pair", func() {
			inst := decode(0xA8C17BFD, 0)

			Expect(inst.AddrMode).To(Equal(insts.AddrModePostIndex))
			Expect(inst.Text).To(Equal("ldp x29, x30, [sp], #16"))
		})

		// LDUR X0, [X1, #-8] -> 0xF85F8020
		It("should decode unscaled offsets", func() {
			Expect(text(0xF85F8020)).To(Equal("ldur x0, [x1, #-8]"))
		})

		// STR X0, [X1, #8]! -> 0xF8008C20
		It("should decode pre-indexed single registers", func() {
			Expect(text(0xF8008C20)).To(Equal("str x0, [x1, #8]!"))
		})

		// LDR X0, [X1], #8 -> 0xF8408420
		It("should decode post-indexed single registers", func() {
			Expect(text(0xF8408420)).To(Equal("ldr x0, [x1], #8"))
		})

		// LDRSW X0, [X1, #4] -> 0xB9800420
		It("should scale unsigned offsets", func() {
			Expect(text(0xB9800420)).To(Equal("ldrsw x0, [x1, #4]"))
		})

		// LDR Q0, [X1, #32] -> 0x3DC00820
		It("should decode SIMD&FP registers", func() {
			Expect(text(0x3DC00820)).To(Equal("ldr q0, [x1, #32]"))
		})

		// PRFM PLDL1KEEP, [X0] -> 0xF9800000
		It("should name prefetch operations", func() {
			Expect(text(0xF9800000)).To(Equal("prfm pldl1keep, [x0]"))
		})

		// LDR X0, [X1, X2, LSL #3] -> 0xF8627820
		It("should decode shifted register offsets", func() {
			Expect(text(0xF8627820)).To(Equal("ldr x0, [x1, x2, lsl #3]"))
		})

		// LDR W0, [X1, W2, SXTW] -> 0xB862C820
		It("should decode extended register offsets", func() {
			Expect(text(0xB862C820)).To(Equal("ldr w0, [x1, w2, sxtw]"))
		})

		// LDR X0, .+8 -> 0x58000040 at 0x1000
		It("should resolve literal loads against the PC", func() {
			Expect(decode(0x58000040, 0x1000).Text).To(Equal("ldr x0, 0x1008"))
		})

		// LDXR X0, [X1] -> 0xC85F7C20
		It("should decode exclusive loads", func() {
			Expect(text(0xC85F7C20)).To(Equal("ldxr x0, [x1]"))
		})

		// STLXR W2, X0, [X1] -> 0xC802FC20
		It("should decode exclusive stores with a status register", func() {
			Expect(text(0xC802FC20)).To(Equal("stlxr w2, x0, [x1]"))
		})

		// CAS X0, X1, [X2] -> 0xC8A07C41
		It("should decode compare and swap", func() {
			Expect(text(0xC8A07C41)).To(Equal("cas x0, x1, [x2]"))
		})

		// LDADD W1, W2, [X3] -> 0xB8210062
		It("should decode atomic memory operations", func() {
			Expect(text(0xB8210062)).To(Equal("ldadd w1, w2, [x3]"))
		})

		// STADD W1, [X3] -> 0xB821007F (LDADD W1, WZR, [X3])
		It("should show LDADD to WZR as STADD", func() {
			Expect(text(0xB821007F)).To(Equal("stadd w1, [x3]"))
		})

		// LD1 {V0.16B}, [X0] -> 0x4C407000
		It("should decode SIMD structure loads", func() {
			Expect(text(0x4C407000)).To(Equal("ld1 {v0.16b}, [x0]"))
		})

		// 0x4C607000 is LD1 {V0.16B}, [X0] with bit 21 set, which the
		// no-offset multiple structure class leaves unallocated.
		It("should reject multiple structure loads with bit 21 set", func() {
			for _, word := range []uint32{0x4C607000, 0x0C60610B, 0x0C20669E} {
				inst, err := decoder.Decode(word, 0)

				Expect(err).To(MatchError(insts.ErrUnallocated), "word 0x%08x", word)
				var decodeErr *insts.DecodeError
				Expect(err).To(BeAssignableToTypeOf(decodeErr))
				Expect(inst.Op).To(Equal(insts.OpUndefined))
			}
		})
	})

	Describe("Data Processing (Register)", func() {
		// MOV X0, X1 -> 0xAA0103E0 (ORR X0, XZR, X1)
		It("should show ORR from XZR as MOV", func() {
			inst := decode(0xAA0103E0, 0)

			Expect(inst.Group).To(Equal(insts.GroupDPReg))
			Expect(inst.Op).To(Equal(insts.OpMOV))
			Expect(inst.Text).To(Equal("mov x0, x1"))
		})

		// SUB X0, X1, X2, LSL #3 -> 0xCB020C20
		It("should keep non-zero shifts", func() {
			Expect(text(0xCB020C20)).To(Equal("sub x0, x1, x2, lsl #3"))
		})

		// CMP X1, X2 -> 0xEB02003F
		It("should show SUBS to XZR as CMP", func() {
			Expect(text(0xEB02003F)).To(Equal("cmp x1, x2"))
		})

		// NEG X0, X2 -> 0xCB0203E0
		It("should show SUB from XZR as NEG", func() {
			Expect(text(0xCB0203E0)).To(Equal("neg x0, x2"))
		})

		// ADD X0, SP, W1, UXTW -> 0x8B2143E0
		It("should decode extended registers", func() {
			Expect(text(0x8B2143E0)).To(Equal("add x0, sp, w1, uxtw"))
		})

		// ADD SP, SP, X1 -> 0x8B2163FF (option=UXTX, imm3=0)
		It("should drop UXTX #0 when SP is involved", func() {
			Expect(text(0x8B2163FF)).To(Equal("add sp, sp, x1"))
		})

		// UDIV X0, X1, X2 -> 0x9AC20820
		It("should decode division", func() {
			Expect(text(0x9AC20820)).To(Equal("udiv x0, x1, x2"))
		})

		// LSL X0, X1, X2 -> 0x9AC22020 (LSLV)
		It("should show LSLV as LSL", func() {
			Expect(text(0x9AC22020)).To(Equal("lsl x0, x1, x2"))
		})

		// REV X0, X1 -> 0xDAC00C20
		It("should decode REV", func() {
			Expect(text(0xDAC00C20)).To(Equal("rev x0, x1"))
		})

		// CLZ W0, W1 -> 0x5AC01020
		It("should decode CLZ", func() {
			Expect(text(0x5AC01020)).To(Equal("clz w0, w1"))
		})

		// CSEL X0, X1, X2, GE -> 0x9A82A020
		It("should decode conditional select", func() {
			inst := decode(0x9A82A020, 0)

			Expect(inst.Text).To(Equal("csel x0, x1, x2, ge"))
			Expect(inst.HasCond).To(BeTrue())
			Expect(inst.Cond).To(Equal(insts.CondGE))
		})

		// CINC X0, X1, EQ -> 0x9A811420 (CSINC X0, X1, X1, NE)
		It("should show CSINC with equal sources as CINC", func() {
			Expect(text(0x9A811420)).To(Equal("cinc x0, x1, eq"))
		})

		// CSET W0, EQ -> 0x1A9F17E0 (CSINC W0, WZR, WZR, NE)
		It("should show CSINC from WZR as CSET", func() {
			Expect(text(0x1A9F17E0)).To(Equal("cset w0, eq"))
		})

		// CCMP X1, #3, #4, NE -> 0xFA431824
		It("should decode conditional compare", func() {
			Expect(text(0xFA431824)).To(Equal("ccmp x1, #0x3, #0x4, ne"))
		})

		// MUL X0, X1, X2 -> 0x9B027C20 (MADD X0, X1, X2, XZR)
		It("should show MADD with XZR as MUL", func() {
			Expect(text(0x9B027C20)).To(Equal("mul x0, x1, x2"))
		})

		// MADD X0, X1, X2, X3 -> 0x9B020C20
		It("should decode MADD", func() {
			Expect(text(0x9B020C20)).To(Equal("madd x0, x1, x2, x3"))
		})

		// SMULL X0, W1, W2 -> 0x9B227C20
		It("should decode widening multiplies", func() {
			Expect(text(0x9B227C20)).To(Equal("smull x0, w1, w2"))
		})
	})

	Describe("Scalar Floating Point", func() {
		// FADD S0, S1, S2 -> 0x1E222820
		It("should decode FADD", func() {
			inst := decode(0x1E222820, 0)

			Expect(inst.Group).To(Equal(insts.GroupSIMDFP))
			Expect(inst.Text).To(Equal("fadd s0, s1, s2"))
		})

		// FMOV D0, #1.0 -> 0x1E6E1000
		It("should expand FP immediates", func() {
			inst := decode(0x1E6E1000, 0)

			Expect(inst.Text).To(Equal("fmov d0, #1.000000000000000000e+00"))
			Expect(inst.Operands[1]).To(Equal(insts.Immediate{
				Kind:  insts.ImmFloat,
				Value: 0x3FF0000000000000,
			}))
		})

		// SCVTF D0, X1 -> 0x9E620020
		It("should decode integer to FP conversion", func() {
			Expect(text(0x9E620020)).To(Equal("scvtf d0, x1"))
		})

		// FCVTZS W0, S1 -> 0x1E380020
		It("should decode FP to integer conversion", func() {
			Expect(text(0x1E380020)).To(Equal("fcvtzs w0, s1"))
		})

		// FCMP D0, #0.0 -> 0x1E602008
		It("should decode compare with zero", func() {
			Expect(text(0x1E602008)).To(Equal("fcmp d0, #0.0"))
		})

		// FCMPE D9, #0.0 -> 0x1E662138 (Rm=6 is should-be-zero)
		It("should ignore Rm when comparing with zero", func() {
			Expect(text(0x1E662138)).To(Equal("fcmpe d9, #0.0"))
		})

		// FMADD D0, D1, D2, D3 -> 0x1F420C20
		It("should decode fused multiply-add", func() {
			Expect(text(0x1F420C20)).To(Equal("fmadd d0, d1, d2, d3"))
		})

		// FCVT D0, S1 -> 0x1E22C020
		It("should decode precision conversion", func() {
			Expect(text(0x1E22C020)).To(Equal("fcvt d0, s1"))
		})

		// BFCVT H0, S0 -> 0x1E634000
		// Encoding: ftype=01, opcode=000110
		It("should decode BFloat16 conversion", func() {
			inst := decode(0x1E634000, 0)

			Expect(inst.Op).To(Equal(insts.OpBFCVT))
			Expect(inst.Text).To(Equal("bfcvt h0, s0"))
		})

		// FCSEL S0, S1, S2, EQ -> 0x1E220C20
		It("should decode FP conditional select", func() {
			Expect(text(0x1E220C20)).To(Equal("fcsel s0, s1, s2, eq"))
		})
	})

	Describe("Advanced SIMD", func() {
		// ADD V0.4S, V1.4S, V2.4S -> 0x4EA28420
		It("should decode three same", func() {
			Expect(text(0x4EA28420)).To(Equal("add v0.4s, v1.4s, v2.4s"))
		})

		// MOV V0.16B, V1.16B -> 0x4EA11C20 (ORR V0.16B, V1.16B, V1.16B)
		It("should show ORR with equal sources as MOV", func() {
			Expect(text(0x4EA11C20)).To(Equal("mov v0.16b, v1.16b"))
		})

		// DUP V0.4S, W1 -> 0x4E040C20
		It("should decode DUP from a general register", func() {
			Expect(text(0x4E040C20)).To(Equal("dup v0.4s, w1"))
		})

		// UMOV W0, V1.B[1] -> 0x0E033C20
		It("should keep UMOV for byte elements", func() {
			Expect(text(0x0E033C20)).To(Equal("umov w0, v1.b[1]"))
		})

		// MOV X0, V1.D[1] -> 0x4E183C20 (UMOV)
		It("should show UMOV of a doubleword as MOV", func() {
			Expect(text(0x4E183C20)).To(Equal("mov x0, v1.d[1]"))
		})

		// MOVI V0.4S, #1, LSL #8 -> 0x4F002420
		It("should decode shifted modified immediates", func() {
			Expect(text(0x4F002420)).To(Equal("movi v0.4s, #0x1, lsl #8"))
		})

		// SSHR V0.4S, V1.4S, #3 -> 0x4F3D0420
		// Encoding: immh=0111, immb=101, shift = 64 - 61
		It("should decode right shifts", func() {
			Expect(text(0x4F3D0420)).To(Equal("sshr v0.4s, v1.4s, #3"))
		})

		// SXTL V0.8H, V1.8B -> 0x0F08A420 (SSHLL #0)
		It("should show SSHLL #0 as SXTL", func() {
			Expect(text(0x0F08A420)).To(Equal("sxtl v0.8h, v1.8b"))
		})

		// MUL V0.4S, V1.4S, V2.S[1] -> 0x4FA28020
		It("should decode by-element operations", func() {
			Expect(text(0x4FA28020)).To(Equal("mul v0.4s, v1.4s, v2.s[1]"))
		})

		// CMEQ V0.4S, V1.4S, #0 -> 0x4EA09820
		It("should decode compare with zero", func() {
			Expect(text(0x4EA09820)).To(Equal("cmeq v0.4s, v1.4s, #0"))
		})

		// XTN2 V0.16B, V1.8H -> 0x4E212820
		It("should add the upper half suffix", func() {
			inst := decode(0x4E212820, 0)

			Expect(inst.Op).To(Equal(insts.OpXTN))
			Expect(inst.Text).To(Equal("xtn2 v0.16b, v1.8h"))
		})

		// ADDV S0, V1.4S -> 0x4EB1B820
		It("should decode across lanes", func() {
			Expect(text(0x4EB1B820)).To(Equal("addv s0, v1.4s"))
		})

		// TBL V0.16B, {V1.16B, V2.16B}, V3.16B -> 0x4E032020
		It("should decode table lookups", func() {
			Expect(text(0x4E032020)).To(Equal("tbl v0.16b, {v1.16b, v2.16b}, v3.16b"))
		})

		// EXT V0.16B, V1.16B, V2.16B, #3 -> 0x6E021820
		It("should decode EXT", func() {
			Expect(text(0x6E021820)).To(Equal("ext v0.16b, v1.16b, v2.16b, #3"))
		})

		// ZIP1 V0.4S, V1.4S, V2.4S -> 0x4E823820
		It("should decode permutes", func() {
			Expect(text(0x4E823820)).To(Equal("zip1 v0.4s, v1.4s, v2.4s"))
		})

		// MOV S0, V1.S[1] -> 0x5E0C0420 (scalar DUP)
		It("should show scalar DUP as MOV", func() {
			Expect(text(0x5E0C0420)).To(Equal("mov s0, v1.s[1]"))
		})

		// ADDP D0, V1.2D -> 0x5EF1B820
		It("should decode scalar pairwise", func() {
			Expect(text(0x5EF1B820)).To(Equal("addp d0, v1.2d"))
		})

		// SQADD B0, B1, B2 -> 0x5E220C20
		It("should decode scalar three same", func() {
			Expect(text(0x5E220C20)).To(Equal("sqadd b0, b1, b2"))
		})

		// USHR D0, D1, #3 -> 0x7F7D0420
		It("should decode scalar shifts", func() {
			Expect(text(0x7F7D0420)).To(Equal("ushr d0, d1, #3"))
		})

		// FMUL S0, S1, V2.S[2] -> 0x5F829820
		// Encoding: sz=0, L=0, H=1, index = H:L
		It("should decode scalar by-element operations", func() {
			Expect(text(0x5F829820)).To(Equal("fmul s0, s1, v2.s[2]"))
		})
	})

	Describe("Cryptography", func() {
		// AESE V0.16B, V1.16B -> 0x4E284820
		It("should decode AES", func() {
			Expect(text(0x4E284820)).To(Equal("aese v0.16b, v1.16b"))
		})

		// SHA256H Q0, Q1, V2.4S -> 0x5E024020
		It("should decode SHA256", func() {
			Expect(text(0x5E024020)).To(Equal("sha256h q0, q1, v2.4s"))
		})

		// EOR3 V0.16B, V1.16B, V2.16B, V3.16B -> 0xCE020C20
		It("should decode four-register SHA3 forms", func() {
			Expect(text(0xCE020C20)).To(Equal("eor3 v0.16b, v1.16b, v2.16b, v3.16b"))
		})
	})

	Describe("Reserved", func() {
		// UDF #0 -> 0x00000000
		It("should decode UDF", func() {
			inst := decode(0x00000000, 0)

			Expect(inst.Group).To(Equal(insts.GroupReserved))
			Expect(inst.Op).To(Equal(insts.OpUDF))
			Expect(inst.Text).To(Equal("udf #0"))
		})

		It("should report unallocated words", func() {
			inst, err := decoder.Decode(0xFFFFFFFF, 0x40)

			Expect(err).To(MatchError(insts.ErrUnallocated))
			Expect(inst).NotTo(BeNil())
			Expect(inst.Op).To(Equal(insts.OpUndefined))
			Expect(inst.Text).To(Equal(".inst 0xffffffff"))
			Expect(inst.PC).To(Equal(uint64(0x40)))

			var decodeErr *insts.DecodeError
			Expect(err).To(BeAssignableToTypeOf(decodeErr))
		})

		It("should reject SVE encodings", func() {
			// bits [28:25] = 0010
			_, err := decoder.Decode(0x04000000, 0)
			Expect(err).To(MatchError(insts.ErrUnallocated))
		})
	})

	Describe("Aliases disabled", func() {
		BeforeEach(func() {
			decoder = insts.NewDecoder(insts.WithAliases(false))
		})

		It("should show ORR from XZR as ORR", func() {
			inst := decode(0xAA0103E0, 0)

			Expect(inst.Op).To(Equal(insts.OpORR))
			Expect(inst.Text).To(Equal("orr x0, xzr, x1"))
		})

		It("should show SUBS to XZR as SUBS", func() {
			Expect(text(0xEB02003F)).To(Equal("subs xzr, x1, x2"))
		})

		It("should show MADD with XZR as MADD", func() {
			Expect(text(0x9B027C20)).To(Equal("madd x0, x1, x2, xzr"))
		})

		It("should show ADD #0 with SP as ADD", func() {
			Expect(text(0x910003E0)).To(Equal("add x0, sp, #0x0"))
		})
	})

	Describe("Fields disabled", func() {
		It("should not record fields", func() {
			decoder = insts.NewDecoder(insts.WithFields(false))
			inst := decode(0x9100A820, 0)

			Expect(inst.Fields).To(BeEmpty())
			Expect(inst.Text).To(Equal("add x0, x1, #0x2a"))
		})
	})
})

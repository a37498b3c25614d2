package insts

import "math"

// decodeSIMDFP routes the Data Processing (Scalar Floating-Point and
// Advanced SIMD) group. Scalar FP has bit 30 clear, Advanced SIMD scalar
// forms have bits [31:30] == 01 and vector forms have bit 31 clear with
// bit 28 clear.
func decodeSIMDFP(d *Decoder, b *builder) error {
	top := Bits(b.word, 24, 31)

	switch {
	case top == 0b11001110:
		return decodeCryptoSHA512(d, b)
	case Bit(b.word, 28) == 1 && Bit(b.word, 30) == 0:
		return decodeScalarFP(d, b)
	case Bit(b.word, 28) == 1 && Bits(b.word, 30, 31) == 0b01:
		return decodeSIMDScalar(d, b)
	case Bit(b.word, 28) == 0 && Bit(b.word, 31) == 0:
		return decodeSIMDVector(d, b)
	}
	return errUnallocated
}

// fpWidth maps the ftype field to a register width; 0b10 is reserved.
func fpWidth(ftype uint32) (uint16, bool) {
	switch ftype {
	case 0b00:
		return 32, true
	case 0b01:
		return 64, true
	case 0b11:
		return 16, true
	}
	return 0, false
}

// decodeScalarFP routes the scalar floating-point encodings.
func decodeScalarFP(d *Decoder, b *builder) error {
	if Bit(b.word, 24) == 1 {
		return decodeFPDataProcessing3(d, b)
	}
	if Bit(b.word, 21) == 0 {
		return decodeFPFixedConvert(d, b)
	}

	switch {
	case Bits(b.word, 10, 15) == 0:
		return decodeFPIntConvert(d, b)
	case Bits(b.word, 10, 14) == 0b10000:
		return decodeFPDataProcessing1(d, b)
	case Bits(b.word, 10, 13) == 0b1000:
		return decodeFPCompare(d, b)
	case Bits(b.word, 10, 12) == 0b100:
		return decodeFPImm(d, b)
	case Bits(b.word, 10, 11) == 0b01:
		return decodeFPCondCompare(d, b)
	case Bits(b.word, 10, 11) == 0b10:
		return decodeFPDataProcessing2(d, b)
	default:
		return decodeFPCondSelect(d, b)
	}
}

// fpRoundingOps is indexed by opcode<2:0> of the FRINT family.
var fpRoundingOps = [8]Op{
	OpFRINTN, OpFRINTP, OpFRINTM, OpFRINTZ,
	OpFRINTA, OpUndefined, OpFRINTX, OpFRINTI,
}

// decodeFPDataProcessing1 decodes the one-source FP instructions.
// Format: M | 0 | S | 11110 | ftype | 1 | opcode | 10000 | Rn | Rd
func decodeFPDataProcessing1(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	opcode := b.bits("opcode", 15, 20)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if m != 0 || s != 0 {
		return errUnallocated
	}

	width, ok := fpWidth(ftype)
	if !ok {
		return errUnallocated
	}
	dstWidth := width

	switch {
	case opcode < 0b000100:
		b.setOp([4]Op{OpFMOV, OpFABS, OpFNEG, OpFSQRT}[opcode])
	case opcode == 0b000110 && ftype == 0b01:
		b.setOp(OpBFCVT)
		dstWidth, width = 16, 32
	case opcode&0b111100 == 0b000100:
		dst, ok := fpWidth(opcode & 0b11)
		if !ok || dst == width {
			return errUnallocated
		}
		b.setOp(OpFCVT)
		dstWidth = dst
	case opcode&0b111000 == 0b001000:
		op := fpRoundingOps[opcode&0b111]
		if op == OpUndefined {
			return errUnallocated
		}
		b.setOp(op)
	case opcode&0b111100 == 0b010000:
		if ftype == 0b11 {
			return errUnallocated
		}
		b.setOp([4]Op{OpFRINT32Z, OpFRINT32X, OpFRINT64Z, OpFRINT64X}[opcode&0b11])
	default:
		return errUnallocated
	}

	b.argList(fpr(rd, dstWidth), fpr(rn, width))
	return nil
}

// decodeFPCompare decodes FCMP and FCMPE.
// Format: M | 0 | S | 11110 | ftype | 1 | Rm | op | 1000 | Rn | opcode2
func decodeFPCompare(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rm := b.bits("Rm", 16, 20)
	op := b.bits("op", 14, 15)
	rn := b.bits("Rn", 5, 9)
	opcode2 := b.bits("opcode2", 0, 4)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || op != 0 || opcode2&0b00111 != 0 || !ok {
		return errUnallocated
	}

	b.setOp([2]Op{OpFCMP, OpFCMPE}[opcode2>>4])
	b.arg(fpr(rn, width))
	if opcode2&0b01000 != 0 {
		// Rm is should-be-zero in the compare with zero form.
		b.fpZeroArg()
		return nil
	}
	b.arg(fpr(rm, width))
	return nil
}

// decodeFPImm decodes FMOV (scalar, immediate).
// Format: M | 0 | S | 11110 | ftype | 1 | imm8 | 100 | imm5 | Rd
func decodeFPImm(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	imm8 := b.bits("imm8", 13, 20)
	imm5 := b.bits("imm5", 5, 9)
	rd := b.bits("Rd", 0, 4)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || imm5 != 0 || !ok {
		return errUnallocated
	}

	b.setOp(OpFMOV)
	b.argList(fpr(rd, width), fpImm(imm8))
	return nil
}

// fpImm builds the immediate operand of the FMOV imm8 forms.
func fpImm(imm8 uint32) Immediate {
	return Immediate{Kind: ImmFloat, Value: math.Float64bits(VFPExpandImm(imm8))}
}

// decodeFPCondCompare decodes FCCMP and FCCMPE.
// Format: M | 0 | S | 11110 | ftype | 1 | Rm | cond | 01 | Rn | op | nzcv
func decodeFPCondCompare(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rm := b.bits("Rm", 16, 20)
	cond := b.bits("cond", 12, 15)
	rn := b.bits("Rn", 5, 9)
	op := b.bit("op", 4)
	nzcv := b.bits("nzcv", 0, 3)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || !ok {
		return errUnallocated
	}

	b.setOp([2]Op{OpFCCMP, OpFCCMPE}[op])
	b.argList(fpr(rn, width), fpr(rm, width), Immediate{Kind: ImmNZCV, Value: uint64(nzcv)})
	b.condArg(Cond(cond))
	return nil
}

// decodeFPDataProcessing2 decodes the two-source FP instructions.
// Format: M | 0 | S | 11110 | ftype | 1 | Rm | opcode | 10 | Rn | Rd
func decodeFPDataProcessing2(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || opcode > 0b1000 || !ok {
		return errUnallocated
	}

	b.setOp([9]Op{
		OpFMUL, OpFDIV, OpFADD, OpFSUB,
		OpFMAX, OpFMIN, OpFMAXNM, OpFMINNM,
		OpFNMUL,
	}[opcode])
	b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width))
	return nil
}

// decodeFPCondSelect decodes FCSEL.
// Format: M | 0 | S | 11110 | ftype | 1 | Rm | cond | 11 | Rn | Rd
func decodeFPCondSelect(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rm := b.bits("Rm", 16, 20)
	cond := b.bits("cond", 12, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || !ok {
		return errUnallocated
	}

	b.setOp(OpFCSEL)
	b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width))
	b.condArg(Cond(cond))
	return nil
}

// decodeFPDataProcessing3 decodes FMADD, FMSUB, FNMADD and FNMSUB.
// Format: M | 0 | S | 11111 | ftype | o1 | Rm | o0 | Ra | Rn | Rd
func decodeFPDataProcessing3(d *Decoder, b *builder) error {
	m := b.bit("M", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	o1 := b.bit("o1", 21)
	rm := b.bits("Rm", 16, 20)
	o0 := b.bit("o0", 15)
	ra := b.bits("Ra", 10, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	width, ok := fpWidth(ftype)
	if m != 0 || s != 0 || !ok {
		return errUnallocated
	}

	b.setOp([2][2]Op{{OpFMADD, OpFMSUB}, {OpFNMADD, OpFNMSUB}}[o1][o0])
	b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width), fpr(ra, width))
	return nil
}

// decodeFPFixedConvert decodes the conversions between floating-point and
// fixed-point values.
// Format: sf | 0 | S | 11110 | ftype | 0 | rmode | opcode | scale | Rn | Rd
func decodeFPFixedConvert(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rmode := b.bits("rmode", 19, 20)
	opcode := b.bits("opcode", 16, 18)
	scale := b.bits("scale", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	width, ok := fpWidth(ftype)
	if s != 0 || !ok || (sf == 0 && scale < 32) {
		return errUnallocated
	}

	is64 := sf == 1
	fbits := Immediate{Kind: ImmBitPos, Value: uint64(64 - scale)}

	switch {
	case rmode == 0b11 && opcode < 0b010:
		b.setOp([2]Op{OpFCVTZS, OpFCVTZU}[opcode])
		b.argList(gpr(rd, is64), fpr(rn, width), fbits)
	case rmode == 0b00 && (opcode == 0b010 || opcode == 0b011):
		b.setOp([2]Op{OpSCVTF, OpUCVTF}[opcode&1])
		b.argList(fpr(rd, width), gpr(rn, is64), fbits)
	default:
		return errUnallocated
	}
	return nil
}

// fpToIntOps is indexed by rmode and opcode<0> of FCVT[NPMZ][SU].
var fpToIntOps = [4][2]Op{
	{OpFCVTNS, OpFCVTNU},
	{OpFCVTPS, OpFCVTPU},
	{OpFCVTMS, OpFCVTMU},
	{OpFCVTZS, OpFCVTZU},
}

// decodeFPIntConvert decodes the conversions between floating-point and
// integer values and the FMOV general forms.
// Format: sf | 0 | S | 11110 | ftype | 1 | rmode | opcode | 000000 | Rn | Rd
func decodeFPIntConvert(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	s := b.bit("S", 29)
	ftype := b.bits("ftype", 22, 23)
	rmode := b.bits("rmode", 19, 20)
	opcode := b.bits("opcode", 16, 18)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if s != 0 {
		return errUnallocated
	}

	is64 := sf == 1

	// FMOV to or from the top half of a 128-bit register
	if ftype == 0b10 {
		if !is64 || rmode != 0b01 || opcode < 0b110 {
			return errUnallocated
		}
		b.setOp(OpFMOV)
		if opcode == 0b110 {
			b.argList(x(rd), velem(rn, ArrD, 1))
		} else {
			b.argList(velem(rd, ArrD, 1), x(rn))
		}
		return nil
	}

	width, ok := fpWidth(ftype)
	if !ok {
		return errUnallocated
	}

	switch {
	case opcode < 0b010:
		b.setOp(fpToIntOps[rmode][opcode])
		b.argList(gpr(rd, is64), fpr(rn, width))
	case rmode != 0b00:
		if sf == 0 && ftype == 0b01 && rmode == 0b11 && opcode == 0b110 {
			b.setOp(OpFJCVTZS)
			b.argList(w(rd), fpr(rn, 64))
			return nil
		}
		return errUnallocated
	case opcode == 0b010 || opcode == 0b011:
		b.setOp([2]Op{OpSCVTF, OpUCVTF}[opcode&1])
		b.argList(fpr(rd, width), gpr(rn, is64))
	case opcode == 0b100 || opcode == 0b101:
		b.setOp([2]Op{OpFCVTAS, OpFCVTAU}[opcode&1])
		b.argList(gpr(rd, is64), fpr(rn, width))
	default:
		// FMOV general: W<->S, X<->D, W/X<->H
		if (ftype == 0b00 && is64) || (ftype == 0b01 && !is64) {
			return errUnallocated
		}
		b.setOp(OpFMOV)
		if opcode == 0b110 {
			b.argList(gpr(rd, is64), fpr(rn, width))
		} else {
			b.argList(fpr(rd, width), gpr(rn, is64))
		}
	}
	return nil
}

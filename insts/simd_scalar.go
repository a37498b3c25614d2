package insts

// decodeSIMDScalar routes the Advanced SIMD scalar encodings
// (01 | U | 1111x ...) and the SHA crypto forms that share the space.
func decodeSIMDScalar(d *Decoder, b *builder) error {
	word := b.word

	if Bit(word, 24) == 1 {
		switch {
		case Bit(word, 10) == 1 && Bits(word, 19, 22) != 0 && Bit(word, 23) == 0:
			return decodeScalarShiftImm(d, b)
		case Bit(word, 10) == 0:
			return decodeScalarIndexed(d, b)
		}
		return errUnallocated
	}

	switch {
	case word&0xFF208C00 == 0x5E000000:
		return decodeCryptoSHA3Reg(d, b)
	case word&0xFF3E0C00 == 0x5E280800:
		return decodeCryptoSHA2Reg(d, b)
	case Bit(word, 21) == 1 && Bit(word, 10) == 1:
		return decodeScalarThreeSame(d, b)
	case Bit(word, 21) == 1 && Bits(word, 10, 11) == 0b00:
		return decodeScalarThreeDifferent(d, b)
	case Bit(word, 21) == 1 && Bits(word, 17, 20) == 0b0000 && Bits(word, 10, 11) == 0b10:
		return decodeScalarTwoRegMisc(d, b)
	case Bit(word, 21) == 1 && Bits(word, 17, 20) == 0b1000 && Bits(word, 10, 11) == 0b10:
		return decodeScalarPairwise(d, b)
	case Bits(word, 21, 23) == 0 && Bit(word, 15) == 0 && Bit(word, 10) == 1:
		return decodeScalarCopy(d, b)
	case Bits(word, 21, 22) == 0b10 && Bits(word, 14, 15) == 0 && Bit(word, 10) == 1:
		return decodeScalarThreeSameFP16(d, b)
	case Bits(word, 17, 22) == 0b111100 && Bits(word, 10, 11) == 0b10:
		return decodeScalarTwoRegMiscFP16(d, b)
	case Bit(word, 21) == 0 && Bit(word, 15) == 1 && Bit(word, 10) == 1:
		return decodeScalarThreeSameExtra(d, b)
	}
	return errUnallocated
}

// scalarThreeSameOps is indexed by U and opcode of the integer scalar
// three same encodings.
var scalarThreeSameOps = [2][24]simdEntry{
	{
		0b00001: {OpSQADD, sizeAny, formSame},
		0b00101: {OpSQSUB, sizeAny, formSame},
		0b00110: {OpCMGT, sizeD, formSame},
		0b00111: {OpCMGE, sizeD, formSame},
		0b01000: {OpSSHL, sizeD, formSame},
		0b01001: {OpSQSHL, sizeAny, formSame},
		0b01010: {OpSRSHL, sizeD, formSame},
		0b01011: {OpSQRSHL, sizeAny, formSame},
		0b10000: {OpADD, sizeD, formSame},
		0b10001: {OpCMTST, sizeD, formSame},
		0b10110: {OpSQDMULH, sizeHS, formSame},
	},
	{
		0b00001: {OpUQADD, sizeAny, formSame},
		0b00101: {OpUQSUB, sizeAny, formSame},
		0b00110: {OpCMHI, sizeD, formSame},
		0b00111: {OpCMHS, sizeD, formSame},
		0b01000: {OpUSHL, sizeD, formSame},
		0b01001: {OpUQSHL, sizeAny, formSame},
		0b01010: {OpURSHL, sizeD, formSame},
		0b01011: {OpUQRSHL, sizeAny, formSame},
		0b10000: {OpSUB, sizeD, formSame},
		0b10001: {OpCMEQ, sizeD, formSame},
		0b10110: {OpSQRDMULH, sizeHS, formSame},
	},
}

// scalarFPThreeSame lists the FP three same rows with a scalar form.
var scalarFPThreeSame = map[Op]bool{
	OpFMULX: true, OpFCMEQ: true, OpFRECPS: true, OpFRSQRTS: true,
	OpFCMGE: true, OpFACGE: true, OpFABD: true, OpFCMGT: true, OpFACGT: true,
}

// decodeScalarThreeSame decodes the scalar three same encodings.
// Format: 01 | U | 11110 | size | 1 | Rm | opcode | 1 | Rn | Rd
func decodeScalarThreeSame(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if opcode >= 0b11000 {
		op := fpThreeSameOps[u][size>>1][opcode&0b111]
		if !scalarFPThreeSame[op] {
			return errUnallocated
		}
		width := uint16(32) << (size & 1)
		b.setOp(op)
		b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width))
		return nil
	}

	e := scalarThreeSameOps[u][opcode]
	if e.op == OpUnknown || !e.sizes.has(size) {
		return errUnallocated
	}
	width := scalarWidth(size)
	b.setOp(e.op)
	b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width))
	return nil
}

// decodeScalarThreeSameFP16 decodes the half precision scalar three same
// encodings.
// Format: 01 | U | 11110 | a | 10 | Rm | 00 | opcode | 1 | Rn | Rd
func decodeScalarThreeSameFP16(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	a := b.bit("a", 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 13)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	op := fpThreeSameOps[u][a][opcode]
	if !scalarFPThreeSame[op] {
		return errUnallocated
	}
	b.setOp(op)
	b.argList(fpr(rd, 16), fpr(rn, 16), fpr(rm, 16))
	return nil
}

// decodeScalarThreeSameExtra decodes SQRDMLAH and SQRDMLSH (scalar).
// Format: 01 | U | 11110 | size | 0 | Rm | 1 | opcode | 1 | Rn | Rd
func decodeScalarThreeSameExtra(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if u != 1 || opcode > 0b0001 || !sizeHS.has(size) {
		return errUnallocated
	}
	width := scalarWidth(size)
	b.setOp([2]Op{OpSQRDMLAH, OpSQRDMLSH}[opcode])
	b.argList(fpr(rd, width), fpr(rn, width), fpr(rm, width))
	return nil
}

// decodeScalarThreeDifferent decodes SQDMLAL, SQDMLSL and SQDMULL
// (scalar).
// Format: 01 | U | 11110 | size | 1 | Rm | opcode | 00 | Rn | Rd
func decodeScalarThreeDifferent(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if u != 0 || !sizeHS.has(size) {
		return errUnallocated
	}
	var op Op
	switch opcode {
	case 0b1001:
		op = OpSQDMLAL
	case 0b1011:
		op = OpSQDMLSL
	case 0b1101:
		op = OpSQDMULL
	default:
		return errUnallocated
	}
	width := scalarWidth(size)
	b.setOp(op)
	b.argList(fpr(rd, width*2), fpr(rn, width), fpr(rm, width))
	return nil
}

// scalarTwoRegMiscOps is indexed by U and opcode of the integer scalar two
// register miscellaneous encodings.
var scalarTwoRegMiscOps = [2][32]simdEntry{
	{
		0b00011: {OpSUQADD, sizeAny, formSame},
		0b00111: {OpSQABS, sizeAny, formSame},
		0b01000: {OpCMGT, sizeD, formZero},
		0b01001: {OpCMEQ, sizeD, formZero},
		0b01010: {OpCMLT, sizeD, formZero},
		0b01011: {OpABS, sizeD, formSame},
		0b10100: {OpSQXTN, sizeBHS, formNarrow},
	},
	{
		0b00011: {OpUSQADD, sizeAny, formSame},
		0b00111: {OpSQNEG, sizeAny, formSame},
		0b01000: {OpCMGE, sizeD, formZero},
		0b01001: {OpCMLE, sizeD, formZero},
		0b01011: {OpNEG, sizeD, formSame},
		0b10010: {OpSQXTUN, sizeBHS, formNarrow},
		0b10100: {OpUQXTN, sizeBHS, formNarrow},
	},
}

// decodeScalarTwoRegMisc decodes the scalar two register miscellaneous
// encodings.
// Format: 01 | U | 11110 | size | 10000 | opcode | 10 | Rn | Rd
func decodeScalarTwoRegMisc(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if isFPMisc(opcode) {
		e := fpMiscOps[u][size>>1][opcode]
		if e.op == OpUnknown || vectorOnlyFPMisc[e.op] {
			return errUnallocated
		}
		sz := size & 1
		if e.form == formFPXN {
			if sz != 1 {
				return errUnallocated
			}
			b.setOp(e.op)
			b.argList(fpr(rd, 32), fpr(rn, 64))
			return nil
		}
		return b.scalarFPMisc(e, uint16(32)<<sz, rd, rn)
	}

	e := scalarTwoRegMiscOps[u][opcode]
	if e.op == OpUnknown || !e.sizes.has(size) {
		return errUnallocated
	}
	width := scalarWidth(size)
	b.setOp(e.op)
	if e.form == formNarrow {
		b.argList(fpr(rd, width), fpr(rn, width*2))
		return nil
	}
	b.argList(fpr(rd, width), fpr(rn, width))
	if e.form == formZero {
		b.zeroArg()
	}
	return nil
}

// scalarFPMisc renders a scalar FP two register row at a width.
func (b *builder) scalarFPMisc(e simdEntry, width uint16, rd, rn uint32) error {
	if e.form != formFP && e.form != formFPZero {
		return errUnallocated
	}
	b.setOp(e.op)
	b.argList(fpr(rd, width), fpr(rn, width))
	if e.form == formFPZero {
		b.fpZeroArg()
	}
	return nil
}

// decodeScalarTwoRegMiscFP16 decodes the half precision scalar two
// register miscellaneous encodings.
// Format: 01 | U | 11110 | a | 111100 | opcode | 10 | Rn | Rd
func decodeScalarTwoRegMiscFP16(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	a := b.bit("a", 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if !isFPMisc(opcode) {
		return errUnallocated
	}
	e := fpMiscOps[u][a][opcode]
	if e.op == OpUnknown || vectorOnlyFPMisc[e.op] {
		return errUnallocated
	}
	return b.scalarFPMisc(e, 16, rd, rn)
}

// decodeScalarPairwise decodes ADDP and the FP pairwise reductions
// (scalar).
// Format: 01 | U | 11110 | size | 11000 | opcode | 10 | Rn | Rd
func decodeScalarPairwise(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if u == 0 && opcode == 0b11011 {
		if size != 3 {
			return errUnallocated
		}
		b.setOp(OpADDP)
		b.argList(fpr(rd, 64), vreg(rn, Arr2D))
		return nil
	}

	minimum := size >> 1
	var op Op
	switch opcode {
	case 0b01100:
		op = [2]Op{OpFMAXNMP, OpFMINNMP}[minimum]
	case 0b01101:
		if minimum != 0 {
			return errUnallocated
		}
		op = OpFADDP
	case 0b01111:
		op = [2]Op{OpFMAXP, OpFMINP}[minimum]
	default:
		return errUnallocated
	}

	b.setOp(op)
	switch {
	case u == 0 && size&1 == 0:
		b.argList(fpr(rd, 16), vreg(rn, Arr2H))
	case u == 0:
		return errUnallocated
	case size&1 == 0:
		b.argList(fpr(rd, 32), vreg(rn, Arr2S))
	default:
		b.argList(fpr(rd, 64), vreg(rn, Arr2D))
	}
	return nil
}

// decodeScalarCopy decodes DUP (element, scalar), shown as MOV.
// Format: 01 | op | 11110000 | imm5 | 0 | imm4 | 1 | Rn | Rd
func decodeScalarCopy(d *Decoder, b *builder) error {
	op := b.bit("op", 29)
	imm5 := b.bits("imm5", 16, 20)
	imm4 := b.bits("imm4", 11, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	size, index, ok := copyElement(imm5)
	if op != 0 || imm4 != 0 || !ok {
		return errUnallocated
	}
	if d.aliases {
		b.setOp(OpMOV)
	} else {
		b.setOp(OpDUP)
	}
	b.argList(fpr(rd, scalarWidth(size)), velem(rn, elementArrangement(size), index))
	return nil
}

// decodeScalarShiftImm decodes the scalar shift by immediate encodings.
// Format: 01 | U | 111110 | immh | immb | opcode | 1 | Rn | Rd
func decodeScalarShiftImm(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	immh := b.bits("immh", 19, 22)
	immb := b.bits("immb", 16, 18)
	opcode := b.bits("opcode", 11, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	e := shiftImmOps[u][opcode]
	if e.op == OpUnknown || e.form == formLong || e.op == OpSHRN || e.op == OpRSHRN {
		return errUnallocated
	}
	size, shift := shiftImmediate(immh, immb, e.form)
	width := scalarWidth(size)
	amount := Immediate{Kind: ImmBitPos, Value: uint64(shift)}

	switch {
	case e.form == formNarrow:
		if size == 3 {
			return errUnallocated
		}
		b.setOp(e.op)
		b.argList(fpr(rd, width), fpr(rn, width*2), amount)
		return nil
	case e.form == formFixed:
		if size == 0 {
			return errUnallocated
		}
	case e.op == OpSQSHL || e.op == OpUQSHL || e.op == OpSQSHLU:
		// saturating left shifts exist for every element size
	case size != 3:
		return errUnallocated
	}

	b.setOp(e.op)
	b.argList(fpr(rd, width), fpr(rn, width), amount)
	return nil
}

// decodeScalarIndexed decodes the scalar multiply by element encodings.
// Format: 01 | U | 11111 | size | L | M | Rm | opcode | H | 0 | Rn | Rd
func decodeScalarIndexed(d *Decoder, b *builder) error {
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	l := b.bit("L", 21)
	m := b.bit("M", 20)
	rm := b.bits("Rm", 16, 19)
	opcode := b.bits("opcode", 12, 15)
	h := b.bit("H", 11)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	e := indexedOps[u][opcode]
	switch e.op {
	case OpUnknown, OpMUL, OpMLA, OpMLS, OpSMLAL, OpSMLSL, OpSMULL,
		OpUMLAL, OpUMLSL, OpUMULL, OpSDOT, OpUDOT:
		return errUnallocated
	}

	esize := size
	if e.form == formFP {
		var ok bool
		if esize, ok = fpIndexedSize(size); !ok {
			return errUnallocated
		}
	} else if !e.sizes.has(size) {
		return errUnallocated
	}

	reg, lane, ok := indexedElement(esize, l, m, h, rm)
	if !ok {
		return errUnallocated
	}

	width := scalarWidth(esize)
	dst := width
	if e.form == formLong {
		dst = width * 2
	}
	b.setOp(e.op)
	b.argList(fpr(rd, dst), fpr(rn, width), velem(reg, elementArrangement(esize), lane))
	return nil
}

package insts

// decodeSIMDVector routes the Advanced SIMD vector encodings
// (0 | Q | U | 0111x ...).
func decodeSIMDVector(d *Decoder, b *builder) error {
	word := b.word

	if Bit(word, 24) == 1 {
		switch {
		case Bit(word, 10) == 1 && Bits(word, 19, 23) == 0:
			return decodeSIMDModifiedImm(d, b)
		case Bit(word, 10) == 1 && Bit(word, 23) == 0:
			return decodeSIMDShiftImm(d, b)
		case Bit(word, 10) == 0:
			return decodeSIMDIndexed(d, b)
		}
		return errUnallocated
	}

	switch {
	case word&0xFF3E0C00 == 0x4E280800:
		return decodeCryptoAES(d, b)
	case Bit(word, 21) == 1 && Bit(word, 10) == 1:
		return decodeSIMDThreeSame(d, b)
	case Bit(word, 21) == 1 && Bits(word, 10, 11) == 0b00:
		return decodeSIMDThreeDifferent(d, b)
	case Bit(word, 21) == 1 && Bits(word, 17, 20) == 0b0000 && Bits(word, 10, 11) == 0b10:
		return decodeSIMDTwoRegMisc(d, b)
	case Bit(word, 21) == 1 && Bits(word, 17, 20) == 0b1000 && Bits(word, 10, 11) == 0b10:
		return decodeSIMDAcrossLanes(d, b)
	case Bits(word, 21, 23) == 0 && Bit(word, 15) == 0 && Bit(word, 10) == 1:
		return decodeSIMDCopy(d, b)
	case Bits(word, 21, 22) == 0b10 && Bits(word, 14, 15) == 0 && Bit(word, 10) == 1:
		return decodeSIMDThreeSameFP16(d, b)
	case Bits(word, 17, 22) == 0b111100 && Bits(word, 10, 11) == 0b10:
		return decodeSIMDTwoRegMiscFP16(d, b)
	case Bit(word, 21) == 0 && Bit(word, 15) == 1 && Bit(word, 10) == 1:
		return decodeSIMDThreeSameExtra(d, b)
	case Bit(word, 29) == 1 && Bit(word, 21) == 0 && Bit(word, 15) == 0 && Bit(word, 10) == 0:
		return decodeSIMDExtract(d, b)
	case Bit(word, 29) == 0 && Bit(word, 21) == 0 && Bit(word, 15) == 0 && Bits(word, 10, 11) == 0b00:
		return decodeSIMDTableLookup(d, b)
	case Bit(word, 29) == 0 && Bit(word, 21) == 0 && Bit(word, 15) == 0 && Bits(word, 10, 11) == 0b10:
		return decodeSIMDPermute(d, b)
	}
	return errUnallocated
}

// threeSameOps is indexed by U and opcode of the integer three same
// encodings. Opcode 00011 is the bitwise group.
var threeSameOps = [2][24]simdEntry{
	{
		0b00000: {OpSHADD, sizeBHS, formSame},
		0b00001: {OpSQADD, sizeAny, formSame},
		0b00010: {OpSRHADD, sizeBHS, formSame},
		0b00100: {OpSHSUB, sizeBHS, formSame},
		0b00101: {OpSQSUB, sizeAny, formSame},
		0b00110: {OpCMGT, sizeAny, formSame},
		0b00111: {OpCMGE, sizeAny, formSame},
		0b01000: {OpSSHL, sizeAny, formSame},
		0b01001: {OpSQSHL, sizeAny, formSame},
		0b01010: {OpSRSHL, sizeAny, formSame},
		0b01011: {OpSQRSHL, sizeAny, formSame},
		0b01100: {OpSMAX, sizeBHS, formSame},
		0b01101: {OpSMIN, sizeBHS, formSame},
		0b01110: {OpSABD, sizeBHS, formSame},
		0b01111: {OpSABA, sizeBHS, formSame},
		0b10000: {OpADD, sizeAny, formSame},
		0b10001: {OpCMTST, sizeAny, formSame},
		0b10010: {OpMLA, sizeBHS, formSame},
		0b10011: {OpMUL, sizeBHS, formSame},
		0b10100: {OpSMAXP, sizeBHS, formSame},
		0b10101: {OpSMINP, sizeBHS, formSame},
		0b10110: {OpSQDMULH, sizeHS, formSame},
		0b10111: {OpADDP, sizeAny, formSame},
	},
	{
		0b00000: {OpUHADD, sizeBHS, formSame},
		0b00001: {OpUQADD, sizeAny, formSame},
		0b00010: {OpURHADD, sizeBHS, formSame},
		0b00100: {OpUHSUB, sizeBHS, formSame},
		0b00101: {OpUQSUB, sizeAny, formSame},
		0b00110: {OpCMHI, sizeAny, formSame},
		0b00111: {OpCMHS, sizeAny, formSame},
		0b01000: {OpUSHL, sizeAny, formSame},
		0b01001: {OpUQSHL, sizeAny, formSame},
		0b01010: {OpURSHL, sizeAny, formSame},
		0b01011: {OpUQRSHL, sizeAny, formSame},
		0b01100: {OpUMAX, sizeBHS, formSame},
		0b01101: {OpUMIN, sizeBHS, formSame},
		0b01110: {OpUABD, sizeBHS, formSame},
		0b01111: {OpUABA, sizeBHS, formSame},
		0b10000: {OpSUB, sizeAny, formSame},
		0b10001: {OpCMEQ, sizeAny, formSame},
		0b10010: {OpMLS, sizeBHS, formSame},
		0b10011: {OpPMUL, sizeB, formSame},
		0b10100: {OpUMAXP, sizeBHS, formSame},
		0b10101: {OpUMINP, sizeBHS, formSame},
		0b10110: {OpSQRDMULH, sizeHS, formSame},
	},
}

var bitwiseOps = [2][4]Op{
	{OpAND, OpBIC, OpORR, OpORN},
	{OpEOR, OpBSL, OpBIT, OpBIF},
}

// decodeSIMDThreeSame decodes the vector three same encodings.
// Format: 0 | Q | U | 01110 | size | 1 | Rm | opcode | 1 | Rn | Rd
func decodeSIMDThreeSame(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	switch {
	case opcode == 0b00011:
		arr := arrangement(0, q)
		if d.aliases && u == 0 && size == 0b10 && rn == rm {
			b.setOp(OpMOV)
			b.argList(vreg(rd, arr), vreg(rn, arr))
			return nil
		}
		b.setOp(bitwiseOps[u][size])
		b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
		return nil
	case opcode >= 0b11000:
		op := fpThreeSameOps[u][size>>1][opcode&0b111]
		arr, ok := fpArrangement(size&1, q)
		if op == OpUnknown || !ok {
			return errUnallocated
		}
		b.setOp(op)
		b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
		return nil
	}

	e := threeSameOps[u][opcode]
	arr, ok := vecArrangement(size, q)
	if e.op == OpUnknown || !ok || !e.sizes.has(size) {
		return errUnallocated
	}
	b.setOp(e.op)
	b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
	return nil
}

// decodeSIMDThreeSameFP16 decodes the half precision three same
// encodings.
// Format: 0 | Q | U | 01110 | a | 10 | Rm | 00 | opcode | 1 | Rn | Rd
func decodeSIMDThreeSameFP16(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	a := b.bit("a", 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 13)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	op := fpThreeSameOps[u][a][opcode]
	if op == OpUnknown {
		return errUnallocated
	}
	arr := arrangement(1, q)
	b.setOp(op)
	b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
	return nil
}

// threeDifferentOps is indexed by U and opcode of the three different
// encodings.
var threeDifferentOps = [2][16]simdEntry{
	{
		0b0000: {OpSADDL, sizeBHS, formLong},
		0b0001: {OpSADDW, sizeBHS, formWide},
		0b0010: {OpSSUBL, sizeBHS, formLong},
		0b0011: {OpSSUBW, sizeBHS, formWide},
		0b0100: {OpADDHN, sizeBHS, formNarrow},
		0b0101: {OpSABAL, sizeBHS, formLong},
		0b0110: {OpSUBHN, sizeBHS, formNarrow},
		0b0111: {OpSABDL, sizeBHS, formLong},
		0b1000: {OpSMLAL, sizeBHS, formLong},
		0b1001: {OpSQDMLAL, sizeHS, formLong},
		0b1010: {OpSMLSL, sizeBHS, formLong},
		0b1011: {OpSQDMLSL, sizeHS, formLong},
		0b1100: {OpSMULL, sizeBHS, formLong},
		0b1101: {OpSQDMULL, sizeHS, formLong},
		0b1110: {OpPMULL, sizeB | sizeD, formLong},
	},
	{
		0b0000: {OpUADDL, sizeBHS, formLong},
		0b0001: {OpUADDW, sizeBHS, formWide},
		0b0010: {OpUSUBL, sizeBHS, formLong},
		0b0011: {OpUSUBW, sizeBHS, formWide},
		0b0100: {OpRADDHN, sizeBHS, formNarrow},
		0b0101: {OpUABAL, sizeBHS, formLong},
		0b0110: {OpRSUBHN, sizeBHS, formNarrow},
		0b0111: {OpUABDL, sizeBHS, formLong},
		0b1000: {OpUMLAL, sizeBHS, formLong},
		0b1010: {OpUMLSL, sizeBHS, formLong},
		0b1100: {OpUMULL, sizeBHS, formLong},
	},
}

// decodeSIMDThreeDifferent decodes the long, wide and narrow three
// register encodings.
// Format: 0 | Q | U | 01110 | size | 1 | Rm | opcode | 00 | Rn | Rd
func decodeSIMDThreeDifferent(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if opcode == 0b1111 {
		return errUnallocated
	}
	e := threeDifferentOps[u][opcode]
	if e.op == OpUnknown || !e.sizes.has(size) {
		return errUnallocated
	}

	wide := longArrangement(size)
	narrow := arrangement(size, q)

	b.setOp(e.op)
	b.setUpper(q)
	switch e.form {
	case formLong:
		b.argList(vreg(rd, wide), vreg(rn, narrow), vreg(rm, narrow))
	case formWide:
		b.argList(vreg(rd, wide), vreg(rn, wide), vreg(rm, narrow))
	default:
		b.argList(vreg(rd, narrow), vreg(rn, wide), vreg(rm, wide))
	}
	return nil
}

// twoRegMiscOps is indexed by U and opcode of the integer two register
// miscellaneous encodings.
var twoRegMiscOps = [2][32]simdEntry{
	{
		0b00000: {OpREV64, sizeBHS, formSame},
		0b00001: {OpREV16, sizeB, formSame},
		0b00010: {OpSADDLP, sizeBHS, formLongPair},
		0b00011: {OpSUQADD, sizeAny, formSame},
		0b00100: {OpCLS, sizeBHS, formSame},
		0b00101: {OpCNT, sizeB, formSame},
		0b00110: {OpSADALP, sizeBHS, formLongPair},
		0b00111: {OpSQABS, sizeAny, formSame},
		0b01000: {OpCMGT, sizeAny, formZero},
		0b01001: {OpCMEQ, sizeAny, formZero},
		0b01010: {OpCMLT, sizeAny, formZero},
		0b01011: {OpABS, sizeAny, formSame},
		0b10010: {OpXTN, sizeBHS, formNarrow},
		0b10100: {OpSQXTN, sizeBHS, formNarrow},
	},
	{
		0b00000: {OpREV32, sizeB | sizeH, formSame},
		0b00010: {OpUADDLP, sizeBHS, formLongPair},
		0b00011: {OpUSQADD, sizeAny, formSame},
		0b00100: {OpCLZ, sizeBHS, formSame},
		0b00110: {OpUADALP, sizeBHS, formLongPair},
		0b00111: {OpSQNEG, sizeAny, formSame},
		0b01000: {OpCMGE, sizeAny, formZero},
		0b01001: {OpCMLE, sizeAny, formZero},
		0b01011: {OpNEG, sizeAny, formSame},
		0b10010: {OpSQXTUN, sizeBHS, formNarrow},
		0b10011: {OpSHLL, sizeBHS, formSHLL},
		0b10100: {OpUQXTN, sizeBHS, formNarrow},
	},
}

// decodeSIMDTwoRegMisc decodes the vector two register miscellaneous
// encodings.
// Format: 0 | Q | U | 01110 | size | 10000 | opcode | 10 | Rn | Rd
func decodeSIMDTwoRegMisc(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if isFPMisc(opcode) {
		e := fpMiscOps[u][size>>1][opcode]
		if e.op == OpUnknown || e.op == OpFRECPX {
			return errUnallocated
		}
		return b.vectorFPMisc(e, size&1, q, rd, rn)
	}

	// NOT and RBIT share opcode 00101 with U set
	if u == 1 && opcode == 0b00101 {
		arr := arrangement(0, q)
		switch size {
		case 0b00:
			if d.aliases {
				b.setOp(OpMVN)
			} else {
				b.setOp(OpNOT)
			}
		case 0b01:
			b.setOp(OpRBIT)
		default:
			return errUnallocated
		}
		b.argList(vreg(rd, arr), vreg(rn, arr))
		return nil
	}

	e := twoRegMiscOps[u][opcode]
	if e.op == OpUnknown || !e.sizes.has(size) {
		return errUnallocated
	}

	b.setOp(e.op)
	switch e.form {
	case formNarrow:
		b.setUpper(q)
		b.argList(vreg(rd, arrangement(size, q)), vreg(rn, longArrangement(size)))
	case formSHLL:
		b.setUpper(q)
		b.argList(vreg(rd, longArrangement(size)), vreg(rn, arrangement(size, q)),
			Immediate{Kind: ImmBitPos, Value: 8 << size})
	case formLongPair:
		b.argList(vreg(rd, arrangement(size+1, q)), vreg(rn, arrangement(size, q)))
	default:
		arr, ok := vecArrangement(size, q)
		if !ok {
			return errUnallocated
		}
		b.argList(vreg(rd, arr), vreg(rn, arr))
		if e.form == formZero {
			b.zeroArg()
		}
	}
	return nil
}

// vectorFPMisc renders a vector FP two register row for sz and Q.
func (b *builder) vectorFPMisc(e simdEntry, sz, q, rd, rn uint32) error {
	b.setOp(e.op)
	switch e.form {
	case formFPNarrow:
		b.setUpper(q)
		b.argList(vreg(rd, arrangement(1+sz, q)), vreg(rn, arrangement(2+sz, 1)))
		return nil
	case formFPLong:
		b.setUpper(q)
		b.argList(vreg(rd, arrangement(2+sz, 1)), vreg(rn, arrangement(1+sz, q)))
		return nil
	case formFPXN:
		if sz != 1 {
			return errUnallocated
		}
		b.setUpper(q)
		b.argList(vreg(rd, arrangement(2, q)), vreg(rn, Arr2D))
		return nil
	case formSingle:
		if sz != 0 {
			return errUnallocated
		}
	}

	arr, ok := fpArrangement(sz, q)
	if !ok {
		return errUnallocated
	}
	b.argList(vreg(rd, arr), vreg(rn, arr))
	if e.form == formFPZero {
		b.fpZeroArg()
	}
	return nil
}

// decodeSIMDTwoRegMiscFP16 decodes the half precision two register
// miscellaneous encodings.
// Format: 0 | Q | U | 01110 | a | 111100 | opcode | 10 | Rn | Rd
func decodeSIMDTwoRegMiscFP16(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	a := b.bit("a", 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	e := fpMiscOps[u][a][opcode]
	if !isFPMisc(opcode) || e.op == OpUnknown || (e.form != formFP && e.form != formFPZero) {
		return errUnallocated
	}
	switch e.op {
	case OpFRECPX, OpFRINT32Z, OpFRINT32X, OpFRINT64Z, OpFRINT64X:
		return errUnallocated
	}

	arr := arrangement(1, q)
	b.setOp(e.op)
	b.argList(vreg(rd, arr), vreg(rn, arr))
	if e.form == formFPZero {
		b.fpZeroArg()
	}
	return nil
}

// decodeSIMDAcrossLanes decodes the reductions across all lanes.
// Format: 0 | Q | U | 01110 | size | 11000 | opcode | 10 | Rn | Rd
func decodeSIMDAcrossLanes(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	opcode := b.bits("opcode", 12, 16)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	// FP reductions: single precision with U set, half precision without
	if opcode == 0b01100 || opcode == 0b01111 {
		if size&1 != 0 {
			return errUnallocated
		}
		minimum := size >> 1
		ops := [2]Op{OpFMAXNMV, OpFMINNMV}
		if opcode == 0b01111 {
			ops = [2]Op{OpFMAXV, OpFMINV}
		}
		b.setOp(ops[minimum])
		if u == 1 {
			if q != 1 {
				return errUnallocated
			}
			b.argList(fpr(rd, 32), vreg(rn, Arr4S))
			return nil
		}
		b.argList(fpr(rd, 16), vreg(rn, arrangement(1, q)))
		return nil
	}

	if size == 3 || (size == 2 && q == 0) {
		return errUnallocated
	}

	width := scalarWidth(size)
	switch {
	case opcode == 0b00011:
		b.setOp([2]Op{OpSADDLV, OpUADDLV}[u])
		width *= 2
	case opcode == 0b01010:
		b.setOp([2]Op{OpSMAXV, OpUMAXV}[u])
	case opcode == 0b11010:
		b.setOp([2]Op{OpSMINV, OpUMINV}[u])
	case opcode == 0b11011 && u == 0:
		b.setOp(OpADDV)
	default:
		return errUnallocated
	}
	b.argList(fpr(rd, width), vreg(rn, arrangement(size, q)))
	return nil
}

// copyElement splits imm5 into the element size and index; imm5<3:0> of
// zero is reserved.
func copyElement(imm5 uint32) (size, index uint32, ok bool) {
	low := LowestSetBit(uint64(imm5), 5)
	if low < 0 || low > 3 {
		return 0, 0, false
	}
	size = uint32(low)
	return size, imm5 >> (size + 1), true
}

// decodeSIMDCopy decodes DUP, SMOV, UMOV and INS.
// Format: 0 | Q | op | 01110000 | imm5 | 0 | imm4 | 1 | Rn | Rd
func decodeSIMDCopy(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	op := b.bit("op", 29)
	imm5 := b.bits("imm5", 16, 20)
	imm4 := b.bits("imm4", 11, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	size, index, ok := copyElement(imm5)
	if !ok {
		return errUnallocated
	}
	elem := elementArrangement(size)

	if op == 1 {
		if q != 1 {
			return errUnallocated
		}
		if d.aliases {
			b.setOp(OpMOV)
		} else {
			b.setOp(OpINS)
		}
		b.argList(velem(rd, elem, index), velem(rn, elem, imm4>>size))
		return nil
	}

	switch imm4 {
	case 0b0000:
		arr, ok := vecArrangement(size, q)
		if !ok {
			return errUnallocated
		}
		b.setOp(OpDUP)
		b.argList(vreg(rd, arr), velem(rn, elem, index))
	case 0b0001:
		arr, ok := vecArrangement(size, q)
		if !ok {
			return errUnallocated
		}
		b.setOp(OpDUP)
		b.argList(vreg(rd, arr), gpr(rn, size == 3))
	case 0b0011:
		if q != 1 {
			return errUnallocated
		}
		if d.aliases {
			b.setOp(OpMOV)
		} else {
			b.setOp(OpINS)
		}
		b.argList(velem(rd, elem, index), gpr(rn, size == 3))
	case 0b0101:
		// SMOV: 32-bit destination for B and H, 64-bit for B, H and S
		if size == 3 || (size == 2 && q == 0) {
			return errUnallocated
		}
		b.setOp(OpSMOV)
		b.argList(gpr(rd, q == 1), velem(rn, elem, index))
	case 0b0111:
		// UMOV: W destination for B, H and S, X destination for D
		if (size == 3) != (q == 1) {
			return errUnallocated
		}
		if d.aliases && size >= 2 {
			b.setOp(OpMOV)
		} else {
			b.setOp(OpUMOV)
		}
		b.argList(gpr(rd, q == 1), velem(rn, elem, index))
	default:
		return errUnallocated
	}
	return nil
}

// decodeSIMDPermute decodes UZP1/2, TRN1/2 and ZIP1/2.
// Format: 0 | Q | 001110 | size | 0 | Rm | 0 | opcode | 10 | Rn | Rd
func decodeSIMDPermute(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	op := [8]Op{
		OpUnknown, OpUZP1, OpTRN1, OpZIP1,
		OpUnknown, OpUZP2, OpTRN2, OpZIP2,
	}[opcode]
	arr, ok := vecArrangement(size, q)
	if op == OpUnknown || !ok {
		return errUnallocated
	}
	b.setOp(op)
	b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
	return nil
}

// decodeSIMDExtract decodes EXT.
// Format: 0 | Q | 101110 | op2 | 0 | Rm | 0 | imm4 | 0 | Rn | Rd
func decodeSIMDExtract(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	op2 := b.bits("op2", 22, 23)
	rm := b.bits("Rm", 16, 20)
	imm4 := b.bits("imm4", 11, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if op2 != 0 || (q == 0 && imm4 >= 8) {
		return errUnallocated
	}
	arr := arrangement(0, q)
	b.setOp(OpEXT)
	b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr),
		Immediate{Kind: ImmBitPos, Value: uint64(imm4)})
	return nil
}

// decodeSIMDTableLookup decodes TBL and TBX.
// Format: 0 | Q | 001110 | op2 | 0 | Rm | 0 | len | op | 00 | Rn | Rd
func decodeSIMDTableLookup(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	op2 := b.bits("op2", 22, 23)
	rm := b.bits("Rm", 16, 20)
	length := b.bits("len", 13, 14)
	op := b.bit("op", 12)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if op2 != 0 {
		return errUnallocated
	}
	arr := arrangement(0, q)
	b.setOp([2]Op{OpTBL, OpTBX}[op])
	b.arg(vreg(rd, arr))
	b.regList(rn, length+1, Arr16B, -1)
	b.arg(vreg(rm, arr))
	return nil
}

// decodeSIMDModifiedImm decodes MOVI, MVNI, ORR, BIC and FMOV (vector,
// immediate).
// Format: 0 | Q | op | 0111100000 | a:b:c | cmode | o2 | 1 | d:e:f:g:h | Rd
func decodeSIMDModifiedImm(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	op := b.bit("op", 29)
	abc := b.bits("abc", 16, 18)
	cmode := b.bits("cmode", 12, 15)
	o2 := b.bit("o2", 11)
	defgh := b.bits("defgh", 5, 9)
	rd := b.bits("Rd", 0, 4)

	imm8 := abc<<5 | defgh
	imm := Immediate{Kind: ImmUnsigned, Value: uint64(imm8)}

	if o2 == 1 {
		if op != 0 || cmode != 0b1111 {
			return errUnallocated
		}
		b.setOp(OpFMOV)
		b.argList(vreg(rd, arrangement(1, q)), fpImm(imm8))
		return nil
	}

	shifted := func(arr Arrangement, ops [2]Op, kind ShiftKind, amount uint32) {
		b.setOp(ops[op])
		b.argList(vreg(rd, arr), imm)
		if kind == ShiftMSL || amount != 0 {
			b.arg(Shift{Kind: kind, Amount: uint8(amount)})
		}
	}

	switch {
	case cmode&0b1001 == 0b0000:
		shifted(arrangement(2, q), [2]Op{OpMOVI, OpMVNI}, ShiftLSL, (cmode>>1&3)*8)
	case cmode&0b1001 == 0b0001:
		shifted(arrangement(2, q), [2]Op{OpORR, OpBIC}, ShiftLSL, (cmode>>1&3)*8)
	case cmode&0b1101 == 0b1000:
		shifted(arrangement(1, q), [2]Op{OpMOVI, OpMVNI}, ShiftLSL, (cmode>>1&1)*8)
	case cmode&0b1101 == 0b1001:
		shifted(arrangement(1, q), [2]Op{OpORR, OpBIC}, ShiftLSL, (cmode>>1&1)*8)
	case cmode&0b1110 == 0b1100:
		shifted(arrangement(2, q), [2]Op{OpMOVI, OpMVNI}, ShiftMSL, (cmode&1+1)*8)
	case cmode == 0b1110 && op == 0:
		b.setOp(OpMOVI)
		b.argList(vreg(rd, arrangement(0, q)), imm)
	case cmode == 0b1110:
		value := Immediate{Kind: ImmUnsigned, Value: AdvSIMDExpandImm(1, cmode, imm8)}
		b.setOp(OpMOVI)
		if q == 0 {
			b.argList(fpr(rd, 64), value)
		} else {
			b.argList(vreg(rd, Arr2D), value)
		}
	case op == 0:
		b.setOp(OpFMOV)
		b.argList(vreg(rd, arrangement(2, q)), fpImm(imm8))
	case q == 1:
		b.setOp(OpFMOV)
		b.argList(vreg(rd, Arr2D), fpImm(imm8))
	default:
		return errUnallocated
	}
	return nil
}

// decodeSIMDShiftImm decodes the vector shift by immediate encodings.
// Format: 0 | Q | U | 011110 | immh | immb | opcode | 1 | Rn | Rd
func decodeSIMDShiftImm(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	immh := b.bits("immh", 19, 22)
	immb := b.bits("immb", 16, 18)
	opcode := b.bits("opcode", 11, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	e := shiftImmOps[u][opcode]
	if e.op == OpUnknown {
		return errUnallocated
	}
	size, shift := shiftImmediate(immh, immb, e.form)
	amount := Immediate{Kind: ImmBitPos, Value: uint64(shift)}

	switch e.form {
	case formNarrow:
		if size == 3 {
			return errUnallocated
		}
		b.setOp(e.op)
		b.setUpper(q)
		b.argList(vreg(rd, arrangement(size, q)), vreg(rn, longArrangement(size)), amount)
		return nil
	case formLong:
		if size == 3 {
			return errUnallocated
		}
		b.setUpper(q)
		if d.aliases && shift == 0 {
			b.setOp([2]Op{OpSXTL, OpUXTL}[u])
			b.argList(vreg(rd, longArrangement(size)), vreg(rn, arrangement(size, q)))
			return nil
		}
		b.setOp(e.op)
		b.argList(vreg(rd, longArrangement(size)), vreg(rn, arrangement(size, q)), amount)
		return nil
	case formFixed:
		if size == 0 {
			return errUnallocated
		}
	}

	arr, ok := vecArrangement(size, q)
	if !ok {
		return errUnallocated
	}
	b.setOp(e.op)
	b.argList(vreg(rd, arr), vreg(rn, arr), amount)
	return nil
}

// decodeSIMDIndexed decodes the vector multiply by element encodings.
// Format: 0 | Q | U | 01111 | size | L | M | Rm | opcode | H | 0 | Rn | Rd
func decodeSIMDIndexed(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
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
	if e.op == OpUnknown {
		return errUnallocated
	}

	if e.form == formFP {
		esize, ok := fpIndexedSize(size)
		if !ok || (esize == 3 && q == 0) {
			return errUnallocated
		}
		reg, lane, ok := indexedElement(esize, l, m, h, rm)
		if !ok {
			return errUnallocated
		}
		arr := arrangement(esize, q)
		b.setOp(e.op)
		b.argList(vreg(rd, arr), vreg(rn, arr), velem(reg, elementArrangement(esize), lane))
		return nil
	}

	if !e.sizes.has(size) {
		return errUnallocated
	}
	reg, lane, _ := indexedElement(size, l, m, h, rm)

	b.setOp(e.op)
	switch e.form {
	case formLong:
		b.setUpper(q)
		b.argList(vreg(rd, longArrangement(size)), vreg(rn, arrangement(size, q)),
			velem(reg, elementArrangement(size), lane))
	case formDot:
		b.argList(vreg(rd, arrangement(2, q)), vreg(rn, arrangement(0, q)),
			velem(reg, Arr4B, lane))
	default:
		arr := arrangement(size, q)
		b.argList(vreg(rd, arr), vreg(rn, arr), velem(reg, elementArrangement(size), lane))
	}
	return nil
}

// decodeSIMDThreeSameExtra decodes the dot product, rounding doubling
// multiply-accumulate and complex FP encodings.
// Format: 0 | Q | U | 01110 | size | 0 | Rm | 1 | opcode | 1 | Rn | Rd
func decodeSIMDThreeSameExtra(d *Decoder, b *builder) error {
	q := b.bit("Q", 30)
	u := b.bit("U", 29)
	size := b.bits("size", 22, 23)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 11, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	switch {
	case opcode == 0b0010 || (opcode == 0b0011 && u == 0):
		if size != 0b10 {
			return errUnallocated
		}
		switch {
		case opcode == 0b0011:
			b.setOp(OpUSDOT)
		case u == 0:
			b.setOp(OpSDOT)
		default:
			b.setOp(OpUDOT)
		}
		b.argList(vreg(rd, arrangement(2, q)), vreg(rn, arrangement(0, q)), vreg(rm, arrangement(0, q)))
		return nil
	case u == 1 && opcode < 0b0010:
		if !sizeHS.has(size) {
			return errUnallocated
		}
		arr := arrangement(size, q)
		b.setOp([2]Op{OpSQRDMLAH, OpSQRDMLSH}[opcode])
		b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr))
		return nil
	case u == 1 && opcode&0b1100 == 0b1000, u == 1 && opcode&0b1101 == 0b1100:
		arr, ok := vecArrangement(size, q)
		if size == 0 || !ok {
			return errUnallocated
		}
		var rot uint64
		if opcode&0b1100 == 0b1000 {
			b.setOp(OpFCMLA)
			rot = uint64(opcode&0b11) * 90
		} else {
			b.setOp(OpFCADD)
			rot = 90 + uint64(opcode>>1&1)*180
		}
		b.argList(vreg(rd, arr), vreg(rn, arr), vreg(rm, arr), Immediate{Kind: ImmBitPos, Value: rot})
		return nil
	}
	return errUnallocated
}

package insts

// decodeDataProcessingReg routes the Data Processing (Register) group on
// op0 (bit 30), op1 (bit 28), op2 (bits [24:21]) and op3 (bits [15:10]).
func decodeDataProcessingReg(d *Decoder, b *builder) error {
	op0 := Bit(b.word, 30)
	op1 := Bit(b.word, 28)
	op2 := Bits(b.word, 21, 24)
	op3 := Bits(b.word, 10, 15)

	if op1 == 0 {
		switch {
		case op2&0b1000 == 0:
			return decodeLogicalShifted(d, b)
		case op2&0b1001 == 0b1000:
			return decodeAddSubShifted(d, b)
		default:
			return decodeAddSubExtended(d, b)
		}
	}

	switch {
	case op2 == 0b0000:
		switch {
		case op3 == 0:
			return decodeAddSubCarry(d, b)
		case op3&0b011111 == 0b000001:
			return decodeRotateIntoFlags(d, b)
		case op3&0b001111 == 0b000010:
			return decodeEvaluateIntoFlags(d, b)
		}
	case op2 == 0b0010:
		return decodeCondCompare(d, b)
	case op2 == 0b0100:
		return decodeCondSelect(d, b)
	case op2 == 0b0110 && op0 == 0:
		return decodeDataProcessing2(d, b)
	case op2 == 0b0110:
		return decodeDataProcessing1(d, b)
	case op2&0b1000 == 0b1000:
		return decodeDataProcessing3(d, b)
	}
	return errUnallocated
}

var shiftKinds = [4]ShiftKind{ShiftLSL, ShiftLSR, ShiftASR, ShiftROR}

// shiftedArg appends an optional shift; LSL #0 is not shown.
func (b *builder) shiftedArg(kind ShiftKind, amount uint32) {
	if kind == ShiftLSL && amount == 0 {
		return
	}
	b.arg(Shift{Kind: kind, Amount: uint8(amount)})
}

// decodeLogicalShifted decodes AND, BIC, ORR, ORN, EOR, EON, ANDS and
// BICS (shifted register).
// Format: sf | opc | 01010 | shift | N | Rm | imm6 | Rn | Rd
func decodeLogicalShifted(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	opc := b.bits("opc", 29, 30)
	shift := b.bits("shift", 22, 23)
	n := b.bit("N", 21)
	rm := b.bits("Rm", 16, 20)
	imm6 := b.bits("imm6", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if sf == 0 && imm6&0x20 != 0 {
		return errUnallocated
	}

	is64 := sf == 1
	kind := shiftKinds[shift]
	dst, src, src2 := gpr(rd, is64), gpr(rn, is64), gpr(rm, is64)

	if d.aliases {
		switch {
		case opc == 0b01 && n == 0 && rn == 31 && shift == 0 && imm6 == 0:
			b.setOp(OpMOV)
			b.argList(dst, src2)
			return nil
		case opc == 0b01 && n == 1 && rn == 31:
			b.setOp(OpMVN)
			b.argList(dst, src2)
			b.shiftedArg(kind, imm6)
			return nil
		case opc == 0b11 && n == 0 && rd == 31:
			b.setOp(OpTST)
			b.argList(src, src2)
			b.shiftedArg(kind, imm6)
			return nil
		}
	}

	b.setOp([4][2]Op{
		{OpAND, OpBIC},
		{OpORR, OpORN},
		{OpEOR, OpEON},
		{OpANDS, OpBICS},
	}[opc][n])
	b.argList(dst, src, src2)
	b.shiftedArg(kind, imm6)
	return nil
}

// decodeAddSubShifted decodes ADD, ADDS, SUB and SUBS (shifted register).
// Format: sf | op | S | 01011 | shift | 0 | Rm | imm6 | Rn | Rd
func decodeAddSubShifted(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	shift := b.bits("shift", 22, 23)
	rm := b.bits("Rm", 16, 20)
	imm6 := b.bits("imm6", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if shift == 0b11 || (sf == 0 && imm6&0x20 != 0) {
		return errUnallocated
	}

	is64 := sf == 1
	kind := shiftKinds[shift]
	dst, src, src2 := gpr(rd, is64), gpr(rn, is64), gpr(rm, is64)

	if d.aliases {
		switch {
		case s == 1 && rd == 31:
			b.setOp([2]Op{OpCMN, OpCMP}[op])
			b.argList(src, src2)
			b.shiftedArg(kind, imm6)
			return nil
		case op == 1 && rn == 31:
			b.setOp([2]Op{OpNEG, OpNEGS}[s])
			b.argList(dst, src2)
			b.shiftedArg(kind, imm6)
			return nil
		}
	}

	b.setOp([2][2]Op{{OpADD, OpADDS}, {OpSUB, OpSUBS}}[op][s])
	b.argList(dst, src, src2)
	b.shiftedArg(kind, imm6)
	return nil
}

// decodeAddSubExtended decodes ADD, ADDS, SUB and SUBS (extended
// register).
// Format: sf | op | S | 01011 | opt | 1 | Rm | option | imm3 | Rn | Rd
func decodeAddSubExtended(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	opt := b.bits("opt", 22, 23)
	rm := b.bits("Rm", 16, 20)
	option := b.bits("option", 13, 15)
	imm3 := b.bits("imm3", 10, 12)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if opt != 0 || imm3 > 4 {
		return errUnallocated
	}

	is64 := sf == 1
	dst := gprSP(rd, is64)
	if s == 1 {
		dst = gpr(rd, is64)
	}
	src := gprSP(rn, is64)
	src2 := gpr(rm, is64 && option&0b011 == 0b011)

	// UXTW (32-bit) or UXTX (64-bit) next to SP is shown as LSL
	lslOption := uint32(0b010)
	if is64 {
		lslOption = 0b011
	}
	spInvolved := rn == 31 || (s == 0 && rd == 31)

	extend := func() {
		if option == lslOption && spInvolved {
			if imm3 != 0 {
				b.arg(Shift{Kind: ShiftLSL, Amount: uint8(imm3)})
			}
			return
		}
		b.arg(Shift{Kind: extendKinds[option], Amount: uint8(imm3)})
	}

	if d.aliases && s == 1 && rd == 31 {
		b.setOp([2]Op{OpCMN, OpCMP}[op])
		b.argList(src, src2)
		extend()
		return nil
	}

	b.setOp([2][2]Op{{OpADD, OpADDS}, {OpSUB, OpSUBS}}[op][s])
	b.argList(dst, src, src2)
	extend()
	return nil
}

// decodeAddSubCarry decodes ADC, ADCS, SBC and SBCS.
// Format: sf | op | S | 11010000 | Rm | 000000 | Rn | Rd
func decodeAddSubCarry(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	rm := b.bits("Rm", 16, 20)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	is64 := sf == 1
	if d.aliases && op == 1 && rn == 31 {
		b.setOp([2]Op{OpNGC, OpNGCS}[s])
		b.argList(gpr(rd, is64), gpr(rm, is64))
		return nil
	}

	b.setOp([2][2]Op{{OpADC, OpADCS}, {OpSBC, OpSBCS}}[op][s])
	b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64))
	return nil
}

// decodeRotateIntoFlags decodes RMIF.
// Format: sf | op | S | 11010000 | imm6 | 00001 | Rn | o2 | mask
func decodeRotateIntoFlags(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	imm6 := b.bits("imm6", 15, 20)
	rn := b.bits("Rn", 5, 9)
	o2 := b.bit("o2", 4)
	mask := b.bits("mask", 0, 3)

	if sf != 1 || op != 0 || s != 1 || o2 != 0 {
		return errUnallocated
	}

	b.setOp(OpRMIF)
	b.argList(x(rn),
		Immediate{Kind: ImmBitPos, Value: uint64(imm6)},
		Immediate{Kind: ImmNZCV, Value: uint64(mask)})
	return nil
}

// decodeEvaluateIntoFlags decodes SETF8 and SETF16.
// Format: sf | op | S | 11010000 | opcode2 | sz | 0010 | Rn | o3 | mask
func decodeEvaluateIntoFlags(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	opcode2 := b.bits("opcode2", 15, 20)
	sz := b.bit("sz", 14)
	rn := b.bits("Rn", 5, 9)
	o3 := b.bit("o3", 4)
	mask := b.bits("mask", 0, 3)

	if sf != 0 || op != 0 || s != 1 || opcode2 != 0 || o3 != 0 || mask != 0b1101 {
		return errUnallocated
	}

	b.setOp([2]Op{OpSETF8, OpSETF16}[sz])
	b.arg(w(rn))
	return nil
}

// decodeCondCompare decodes CCMN and CCMP, register and immediate forms.
// Format: sf | op | S | 11010010 | Rm/imm5 | cond | i | o2 | Rn | o3 | nzcv
func decodeCondCompare(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	rm := b.bits("Rm", 16, 20)
	cond := b.bits("cond", 12, 15)
	imm := b.bit("i", 11)
	o2 := b.bit("o2", 10)
	rn := b.bits("Rn", 5, 9)
	o3 := b.bit("o3", 4)
	nzcv := b.bits("nzcv", 0, 3)

	if s != 1 || o2 != 0 || o3 != 0 {
		return errUnallocated
	}

	is64 := sf == 1
	b.setOp([2]Op{OpCCMN, OpCCMP}[op])
	b.arg(gpr(rn, is64))
	if imm == 1 {
		b.arg(Immediate{Kind: ImmUnsigned, Value: uint64(rm)})
	} else {
		b.arg(gpr(rm, is64))
	}
	b.arg(Immediate{Kind: ImmNZCV, Value: uint64(nzcv)})
	b.condArg(Cond(cond))
	return nil
}

// decodeCondSelect decodes CSEL, CSINC, CSINV and CSNEG with the CINC,
// CSET, CINV, CSETM and CNEG aliases.
// Format: sf | op | S | 11010100 | Rm | cond | op2 | Rn | Rd
func decodeCondSelect(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	rm := b.bits("Rm", 16, 20)
	cond := Cond(b.bits("cond", 12, 15))
	op2 := b.bits("op2", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if s != 0 || op2 > 0b01 {
		return errUnallocated
	}

	is64 := sf == 1
	dst, src, src2 := gpr(rd, is64), gpr(rn, is64), gpr(rm, is64)

	form := op<<1 | op2
	if d.aliases && form != 0 && cond < CondAL && rn == rm {
		switch {
		case rn == 31 && form == 0b01:
			b.setOp(OpCSET)
			b.arg(dst)
		case rn == 31 && form == 0b10:
			b.setOp(OpCSETM)
			b.arg(dst)
		default:
			b.setOp([4]Op{OpUndefined, OpCINC, OpCINV, OpCNEG}[form])
			b.argList(dst, src)
		}
		b.condArg(cond.Invert())
		return nil
	}

	b.setOp([2][2]Op{{OpCSEL, OpCSINC}, {OpCSINV, OpCSNEG}}[op][op2])
	b.argList(dst, src, src2)
	b.condArg(cond)
	return nil
}

// decodeDataProcessing2 decodes the two-source instructions.
// Format: sf | 0 | S | 11010110 | Rm | opcode | Rn | Rd
func decodeDataProcessing2(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	s := b.bit("S", 29)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	is64 := sf == 1

	if s == 1 {
		// SUBPS is the only flag-setting form
		if opcode != 0 || !is64 {
			return errUnallocated
		}
		if d.aliases && rd == 31 {
			b.setOp(OpCMPP)
			b.argList(xsp(rn), xsp(rm))
			return nil
		}
		b.setOp(OpSUBPS)
		b.argList(x(rd), xsp(rn), xsp(rm))
		return nil
	}

	switch {
	case opcode == 0b000000 && is64:
		b.setOp(OpSUBP)
		b.argList(x(rd), xsp(rn), xsp(rm))
	case opcode == 0b000010 || opcode == 0b000011:
		b.setOp([2]Op{OpUDIV, OpSDIV}[opcode&1])
		b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64))
	case opcode == 0b000100 && is64:
		b.setOp(OpIRG)
		b.argList(xsp(rd), xsp(rn))
		if rm != 31 {
			b.arg(x(rm))
		}
	case opcode == 0b000101 && is64:
		b.setOp(OpGMI)
		b.argList(x(rd), xsp(rn), x(rm))
	case opcode&0b111100 == 0b001000:
		shift := opcode & 0b11
		if d.aliases {
			b.setOp([4]Op{OpLSL, OpLSR, OpASR, OpROR}[shift])
		} else {
			b.setOp([4]Op{OpLSLV, OpLSRV, OpASRV, OpRORV}[shift])
		}
		b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64))
	case opcode == 0b001100 && is64:
		b.setOp(OpPACGA)
		b.argList(x(rd), x(rn), xsp(rm))
	case opcode&0b111000 == 0b010000:
		sz := opcode & 0b11
		if (sz == 0b11) != is64 {
			return errUnallocated
		}
		b.setOp([2][4]Op{
			{OpCRC32B, OpCRC32H, OpCRC32W, OpCRC32X},
			{OpCRC32CB, OpCRC32CH, OpCRC32CW, OpCRC32CX},
		}[opcode>>2&1][sz])
		b.argList(w(rd), w(rn), gpr(rm, is64))
	default:
		return errUnallocated
	}
	return nil
}

// pacOps is indexed by opcode<3:0> of the one-source PAC forms.
var pacOps = [16]Op{
	OpPACIA, OpPACIB, OpPACDA, OpPACDB,
	OpAUTIA, OpAUTIB, OpAUTDA, OpAUTDB,
	OpPACIZA, OpPACIZB, OpPACDZA, OpPACDZB,
	OpAUTIZA, OpAUTIZB, OpAUTDZA, OpAUTDZB,
}

// decodeDataProcessing1 decodes the one-source instructions.
// Format: sf | 1 | S | 11010110 | opcode2 | opcode | Rn | Rd
func decodeDataProcessing1(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	s := b.bit("S", 29)
	opcode2 := b.bits("opcode2", 16, 20)
	opcode := b.bits("opcode", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if s != 0 {
		return errUnallocated
	}

	is64 := sf == 1

	if opcode2 == 0b00001 {
		if !is64 {
			return errUnallocated
		}
		switch {
		case opcode < 0b001000:
			b.setOp(pacOps[opcode])
			b.argList(x(rd), xsp(rn))
		case opcode < 0b010000:
			if rn != 31 {
				return errUnallocated
			}
			b.setOp(pacOps[opcode])
			b.arg(x(rd))
		case opcode == 0b010000 || opcode == 0b010001:
			if rn != 31 {
				return errUnallocated
			}
			b.setOp([2]Op{OpXPACI, OpXPACD}[opcode&1])
			b.arg(x(rd))
		default:
			return errUnallocated
		}
		return nil
	}
	if opcode2 != 0 {
		return errUnallocated
	}

	switch opcode {
	case 0b000000:
		b.setOp(OpRBIT)
	case 0b000001:
		b.setOp(OpREV16)
	case 0b000010:
		if is64 {
			b.setOp(OpREV32)
		} else {
			b.setOp(OpREV)
		}
	case 0b000011:
		if !is64 {
			return errUnallocated
		}
		b.setOp(OpREV)
	case 0b000100:
		b.setOp(OpCLZ)
	case 0b000101:
		b.setOp(OpCLS)
	case 0b000110:
		b.setOp(OpCTZ)
	case 0b000111:
		b.setOp(OpCNT)
	case 0b001000:
		b.setOp(OpABS)
	default:
		return errUnallocated
	}
	b.argList(gpr(rd, is64), gpr(rn, is64))
	return nil
}

// decodeDataProcessing3 decodes the three-source multiply instructions.
// Format: sf | op54 | 11011 | op31 | Rm | o0 | Ra | Rn | Rd
func decodeDataProcessing3(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op54 := b.bits("op54", 29, 30)
	op31 := b.bits("op31", 21, 23)
	rm := b.bits("Rm", 16, 20)
	o0 := b.bit("o0", 15)
	ra := b.bits("Ra", 10, 14)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if op54 != 0 {
		return errUnallocated
	}

	is64 := sf == 1

	switch op31 {
	case 0b000:
		if d.aliases && ra == 31 {
			b.setOp([2]Op{OpMUL, OpMNEG}[o0])
			b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64))
			return nil
		}
		b.setOp([2]Op{OpMADD, OpMSUB}[o0])
		b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64), gpr(ra, is64))
		return nil
	case 0b001, 0b101:
		if !is64 {
			return errUnallocated
		}
		unsigned := op31 >> 2
		if d.aliases && ra == 31 {
			b.setOp([2][2]Op{{OpSMULL, OpSMNEGL}, {OpUMULL, OpUMNEGL}}[unsigned][o0])
			b.argList(x(rd), w(rn), w(rm))
			return nil
		}
		b.setOp([2][2]Op{{OpSMADDL, OpSMSUBL}, {OpUMADDL, OpUMSUBL}}[unsigned][o0])
		b.argList(x(rd), w(rn), w(rm), x(ra))
		return nil
	case 0b010, 0b110:
		if !is64 || o0 != 0 {
			return errUnallocated
		}
		b.setOp([2]Op{OpSMULH, OpUMULH}[op31>>2])
		b.argList(x(rd), x(rn), x(rm))
		return nil
	}
	return errUnallocated
}

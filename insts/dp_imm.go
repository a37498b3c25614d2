package insts

// decodeDataProcessingImm routes the Data Processing (Immediate) group on
// op0, bits [25:23].
func decodeDataProcessingImm(d *Decoder, b *builder) error {
	switch Bits(b.word, 23, 25) {
	case 0b000, 0b001:
		return decodePCRelAddressing(d, b)
	case 0b010:
		return decodeAddSubImm(d, b)
	case 0b011:
		return decodeAddSubImmTags(d, b)
	case 0b100:
		return decodeLogicalImm(d, b)
	case 0b101:
		return decodeMoveWide(d, b)
	case 0b110:
		return decodeBitfield(d, b)
	default:
		return decodeExtract(d, b)
	}
}

// decodePCRelAddressing decodes ADR and ADRP.
// Format: op | immlo | 10000 | immhi | Rd
func decodePCRelAddressing(d *Decoder, b *builder) error {
	op := b.bit("op", 31)
	immlo := b.bits("immlo", 29, 30)
	immhi := b.bits("immhi", 5, 23)
	rd := b.bits("Rd", 0, 4)

	imm := SignExtend(uint64(immhi<<2|immlo), 21)

	var target uint64
	if op == 0 {
		b.setOp(OpADR)
		target = b.pc + uint64(imm)
	} else {
		b.setOp(OpADRP)
		target = b.pc&^0xFFF + uint64(imm<<12)
	}

	b.argList(x(rd), Immediate{Kind: ImmAddress, Value: target})
	return nil
}

// decodeAddSubImm decodes ADD, ADDS, SUB and SUBS (immediate).
// Format: sf | op | S | 100010 | sh | imm12 | Rn | Rd
func decodeAddSubImm(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	sh := b.bit("sh", 22)
	imm12 := b.bits("imm12", 10, 21)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	is64 := sf == 1
	imm := Immediate{Kind: ImmUnsigned, Value: uint64(imm12)}
	dst := gprSP(rd, is64)
	if s == 1 {
		dst = gpr(rd, is64)
	}
	src := gprSP(rn, is64)

	shifted := func() {
		if sh == 1 {
			b.arg(Shift{Kind: ShiftLSL, Amount: 12})
		}
	}

	if d.aliases {
		switch {
		case op == 0 && s == 0 && sh == 0 && imm12 == 0 && (rd == 31 || rn == 31):
			b.setOp(OpMOV)
			b.argList(dst, src)
			return nil
		case s == 1 && rd == 31:
			b.setOp([2]Op{OpCMN, OpCMP}[op])
			b.argList(src, imm)
			shifted()
			return nil
		}
	}

	b.setOp([2][2]Op{{OpADD, OpADDS}, {OpSUB, OpSUBS}}[op][s])
	b.argList(dst, src, imm)
	shifted()
	return nil
}

// decodeAddSubImmTags decodes ADDG and SUBG.
// Format: sf | op | S | 100011 | o2 | uimm6 | op3 | uimm4 | Rn | Rd
func decodeAddSubImmTags(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 30)
	s := b.bit("S", 29)
	o2 := b.bit("o2", 22)
	uimm6 := b.bits("uimm6", 16, 21)
	op3 := b.bits("op3", 14, 15)
	uimm4 := b.bits("uimm4", 10, 13)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if sf != 1 || s != 0 || o2 != 0 || op3 != 0 {
		return errUnallocated
	}

	b.setOp([2]Op{OpADDG, OpSUBG}[op])
	b.argList(xsp(rd), xsp(rn),
		Immediate{Kind: ImmBitPos, Value: uint64(uimm6) << 4},
		Immediate{Kind: ImmBitPos, Value: uint64(uimm4)})
	return nil
}

// decodeLogicalImm decodes AND, ORR, EOR and ANDS (immediate).
// Format: sf | opc | 100100 | N | immr | imms | Rn | Rd
func decodeLogicalImm(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	opc := b.bits("opc", 29, 30)
	n := b.bit("N", 22)
	immr := b.bits("immr", 16, 21)
	imms := b.bits("imms", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if sf == 0 && n == 1 {
		return errUnallocated
	}

	is64 := sf == 1
	width := uint(32)
	if is64 {
		width = 64
	}
	wmask, _, err := DecodeBitMasks(n, imms, immr, true, width)
	if err != nil {
		return errUnallocated
	}

	imm := Immediate{Kind: ImmUnsigned, Value: wmask}
	dst := gprSP(rd, is64)
	if opc == 0b11 {
		dst = gpr(rd, is64)
	}
	src := gpr(rn, is64)

	if d.aliases {
		switch {
		case opc == 0b01 && rn == 31 && !MoveWidePreferred(sf, n, imms, immr):
			b.setOp(OpMOV)
			b.argList(dst, imm)
			return nil
		case opc == 0b11 && rd == 31:
			b.setOp(OpTST)
			b.argList(src, imm)
			return nil
		}
	}

	b.setOp([4]Op{OpAND, OpORR, OpEOR, OpANDS}[opc])
	b.argList(dst, src, imm)
	return nil
}

// decodeMoveWide decodes MOVN, MOVZ and MOVK.
// Format: sf | opc | 100101 | hw | imm16 | Rd
func decodeMoveWide(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	opc := b.bits("opc", 29, 30)
	hw := b.bits("hw", 21, 22)
	imm16 := b.bits("imm16", 5, 20)
	rd := b.bits("Rd", 0, 4)

	if opc == 0b01 || (sf == 0 && hw >= 2) {
		return errUnallocated
	}

	is64 := sf == 1
	shift := hw * 16
	dst := gpr(rd, is64)

	preferMOV := opc != 0b11 && !(imm16 == 0 && hw != 0)
	if opc == 0b00 && !is64 && imm16 == 0xFFFF {
		preferMOV = false
	}

	if d.aliases && preferMOV {
		value := uint64(imm16) << shift
		if opc == 0b00 {
			value = ^value
			if !is64 {
				value &= 0xFFFFFFFF
			}
		}
		b.setOp(OpMOV)
		b.argList(dst, Immediate{Kind: ImmUnsigned, Value: value})
		return nil
	}

	b.setOp([4]Op{OpMOVN, OpUndefined, OpMOVZ, OpMOVK}[opc])
	b.argList(dst, Immediate{Kind: ImmUnsigned, Value: uint64(imm16)})
	if shift != 0 {
		b.arg(Shift{Kind: ShiftLSL, Amount: uint8(shift)})
	}
	return nil
}

// decodeBitfield decodes SBFM, BFM and UBFM with their aliases.
// Format: sf | opc | 100110 | N | immr | imms | Rn | Rd
func decodeBitfield(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	opc := b.bits("opc", 29, 30)
	n := b.bit("N", 22)
	immr := b.bits("immr", 16, 21)
	imms := b.bits("imms", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if opc == 0b11 || sf != n {
		return errUnallocated
	}
	if sf == 0 && (immr&0x20 != 0 || imms&0x20 != 0) {
		return errUnallocated
	}

	is64 := sf == 1
	size := uint32(32)
	if is64 {
		size = 64
	}
	dst := gpr(rd, is64)
	src := gpr(rn, is64)
	pos := func(v uint32) Immediate { return Immediate{Kind: ImmBitPos, Value: uint64(v)} }

	if d.aliases {
		switch opc {
		case 0b00:
			if decodeSBFMAlias(b, sf, immr, imms, size, dst, rn, pos) {
				return nil
			}
		case 0b01:
			switch {
			case rn == 31 && imms < immr:
				b.setOp(OpBFC)
				b.argList(dst, pos(size-immr), pos(imms+1))
				return nil
			case imms < immr:
				b.setOp(OpBFI)
				b.argList(dst, src, pos(size-immr), pos(imms+1))
				return nil
			default:
				b.setOp(OpBFXIL)
				b.argList(dst, src, pos(immr), pos(imms-immr+1))
				return nil
			}
		case 0b10:
			if decodeUBFMAlias(b, sf, immr, imms, size, dst, rn, pos) {
				return nil
			}
		}
	}

	b.setOp([3]Op{OpSBFM, OpBFM, OpUBFM}[opc])
	b.argList(dst, src, pos(immr), pos(imms))
	return nil
}

// decodeSBFMAlias picks ASR, SBFIZ, SBFX, SXTB, SXTH or SXTW in that
// order.
func decodeSBFMAlias(b *builder, sf, immr, imms, size uint32, dst Register,
	rn uint32, pos func(uint32) Immediate) bool {
	is64 := sf == 1
	src := gpr(rn, is64)

	switch {
	case imms == size-1:
		b.setOp(OpASR)
		b.argList(dst, src, pos(immr))
	case imms < immr:
		b.setOp(OpSBFIZ)
		b.argList(dst, src, pos(size-immr), pos(imms+1))
	case BFXPreferred(sf, 0, imms, immr):
		b.setOp(OpSBFX)
		b.argList(dst, src, pos(immr), pos(imms-immr+1))
	case immr == 0 && imms == 7:
		b.setOp(OpSXTB)
		b.argList(dst, w(rn))
	case immr == 0 && imms == 15:
		b.setOp(OpSXTH)
		b.argList(dst, w(rn))
	case immr == 0 && imms == 31 && is64:
		b.setOp(OpSXTW)
		b.argList(dst, w(rn))
	default:
		return false
	}
	return true
}

// decodeUBFMAlias picks LSL, LSR, UBFIZ, UBFX, UXTB or UXTH in that order.
func decodeUBFMAlias(b *builder, sf, immr, imms, size uint32, dst Register,
	rn uint32, pos func(uint32) Immediate) bool {
	is64 := sf == 1
	src := gpr(rn, is64)

	switch {
	case imms != size-1 && imms+1 == immr:
		b.setOp(OpLSL)
		b.argList(dst, src, pos(size-1-imms))
	case imms == size-1:
		b.setOp(OpLSR)
		b.argList(dst, src, pos(immr))
	case imms < immr:
		b.setOp(OpUBFIZ)
		b.argList(dst, src, pos(size-immr), pos(imms+1))
	case BFXPreferred(sf, 1, imms, immr):
		b.setOp(OpUBFX)
		b.argList(dst, src, pos(immr), pos(imms-immr+1))
	case immr == 0 && imms == 7 && !is64:
		b.setOp(OpUXTB)
		b.argList(dst, w(rn))
	case immr == 0 && imms == 15 && !is64:
		b.setOp(OpUXTH)
		b.argList(dst, w(rn))
	default:
		return false
	}
	return true
}

// decodeExtract decodes EXTR and its ROR alias.
// Format: sf | op21 | 100111 | N | o0 | Rm | imms | Rn | Rd
func decodeExtract(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op21 := b.bits("op21", 29, 30)
	n := b.bit("N", 22)
	o0 := b.bit("o0", 21)
	rm := b.bits("Rm", 16, 20)
	imms := b.bits("imms", 10, 15)
	rn := b.bits("Rn", 5, 9)
	rd := b.bits("Rd", 0, 4)

	if op21 != 0 || o0 != 0 || sf != n || (sf == 0 && imms&0x20 != 0) {
		return errUnallocated
	}

	is64 := sf == 1
	lsb := Immediate{Kind: ImmBitPos, Value: uint64(imms)}

	if d.aliases && rn == rm {
		b.setOp(OpROR)
		b.argList(gpr(rd, is64), gpr(rn, is64), lsb)
		return nil
	}

	b.setOp(OpEXTR)
	b.argList(gpr(rd, is64), gpr(rn, is64), gpr(rm, is64), lsb)
	return nil
}

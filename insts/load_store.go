package insts

import "fmt"

// decodeLoadStore routes the Loads and Stores group on op0 (bits [31:28]),
// op1 (bit 26), op2 (bits [24:23]), op3 (bits [21:16]) and op4
// (bits [11:10]).
func decodeLoadStore(d *Decoder, b *builder) error {
	op0 := Bits(b.word, 28, 31)
	op1 := Bit(b.word, 26)
	op2 := Bits(b.word, 23, 24)
	op3 := Bits(b.word, 16, 21)
	op4 := Bits(b.word, 10, 11)

	switch {
	case op0&0b1011 == 0b0000 && op1 == 1:
		switch {
		case op2 == 0b00 && op3 == 0:
			return decodeSIMDLoadStoreMultiple(d, b, false)
		case op2 == 0b01 && op3&0b100000 == 0:
			return decodeSIMDLoadStoreMultiple(d, b, true)
		case op2 == 0b10 && op3&0b011111 == 0:
			return decodeSIMDLoadStoreSingle(d, b, false)
		case op2 == 0b11:
			return decodeSIMDLoadStoreSingle(d, b, true)
		}
		return errUnallocated
	case op0 == 0b1101 && op1 == 0 && op2>>1 == 1 && op3>>5 == 1:
		return decodeLoadStoreTags(d, b)
	case op0&0b0011 == 0b0000 && op1 == 0 && op2>>1 == 0:
		return decodeLoadStoreExclusive(d, b)
	case op0&0b0011 == 0b0001 && op1 == 0 && op2>>1 == 1 && op3>>5 == 0 && op4 == 0:
		return decodeLoadStoreRCpc(d, b)
	case op0&0b0011 == 0b0001 && op2>>1 == 0:
		return decodeLoadLiteral(d, b)
	case op0&0b0011 == 0b0010:
		return decodeLoadStorePair(d, b, [4]AddrMode{
			AddrModeNoAllocate, AddrModePostIndex, AddrModeOffset, AddrModePreIndex,
		}[op2])
	case op0&0b0011 == 0b0011 && op2>>1 == 0 && op3>>5 == 0:
		return decodeLoadStoreImm9(d, b, op4)
	case op0&0b0011 == 0b0011 && op2>>1 == 0:
		switch {
		case op4 == 0b00:
			return decodeAtomic(d, b)
		case op4 == 0b10:
			return decodeLoadStoreRegOffset(d, b)
		default:
			return decodeLoadPAC(d, b)
		}
	case op0&0b0011 == 0b0011:
		return decodeLoadStoreUnsigned(d, b)
	}
	return errUnallocated
}

// sizeClass maps a size field to the byte/halfword/word index used by the
// exclusive and atomic tables.
func sizeClass(size uint32) int {
	if size >= 2 {
		return 2
	}
	return int(size)
}

// decodeLoadStoreExclusive decodes the exclusive, load-acquire/
// store-release and compare-and-swap forms.
// Format: size | 001000 | o2 | L | o1 | Rs | o0 | Rt2 | Rn | Rt
func decodeLoadStoreExclusive(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	o2 := b.bit("o2", 23)
	l := b.bit("L", 22)
	o1 := b.bit("o1", 21)
	rs := b.bits("Rs", 16, 20)
	o0 := b.bit("o0", 15)
	rt2 := b.bits("Rt2", 10, 14)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	is64 := size == 3
	sc := sizeClass(size)

	switch {
	case o2 == 0 && o1 == 0:
		if l == 0 {
			b.setOp([2][3]Op{{OpSTXRB, OpSTXRH, OpSTXR}, {OpSTLXRB, OpSTLXRH, OpSTLXR}}[o0][sc])
			b.argList(w(rs), gpr(rt, is64))
		} else {
			b.setOp([2][3]Op{{OpLDXRB, OpLDXRH, OpLDXR}, {OpLDAXRB, OpLDAXRH, OpLDAXR}}[o0][sc])
			b.arg(gpr(rt, is64))
		}
	case o2 == 0 && o1 == 1 && size >= 2:
		if l == 0 {
			b.setOp([2]Op{OpSTXP, OpSTLXP}[o0])
			b.argList(w(rs), gpr(rt, is64), gpr(rt2, is64))
		} else {
			b.setOp([2]Op{OpLDXP, OpLDAXP}[o0])
			b.argList(gpr(rt, is64), gpr(rt2, is64))
		}
	case o2 == 0 && o1 == 1:
		// CASP: size<0> selects the register width, register pairs are even
		if rt2 != 31 || rs&1 != 0 || rt&1 != 0 {
			return errUnallocated
		}
		pair64 := size == 1
		b.setOp(caspOps[l<<1|o0])
		b.argList(gpr(rs, pair64), gpr(rs+1, pair64), gpr(rt, pair64), gpr(rt+1, pair64))
	case o2 == 1 && o1 == 0:
		if l == 0 {
			b.setOp([2][3]Op{{OpSTLLRB, OpSTLLRH, OpSTLLR}, {OpSTLRB, OpSTLRH, OpSTLR}}[o0][sc])
		} else {
			b.setOp([2][3]Op{{OpLDLARB, OpLDLARH, OpLDLAR}, {OpLDARB, OpLDARH, OpLDAR}}[o0][sc])
		}
		b.arg(gpr(rt, is64))
	default:
		if rt2 != 31 {
			return errUnallocated
		}
		b.setOp(casOps[l<<1|o0][sc])
		b.argList(gpr(rs, is64), gpr(rt, is64))
	}

	b.memBase(rn)
	return nil
}

// decodeLoadStoreRCpc decodes the unscaled LDAPUR and STLUR family.
// Format: size | 011001 | opc | 0 | imm9 | 00 | Rn | Rt
func decodeLoadStoreRCpc(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	opc := b.bits("opc", 22, 23)
	imm9 := b.bits("imm9", 12, 20)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	var op Op
	is64 := size == 3
	switch size {
	case 0:
		op = [4]Op{OpSTLURB, OpLDAPURB, OpLDAPURSB, OpLDAPURSB}[opc]
		is64 = opc == 0b10
	case 1:
		op = [4]Op{OpSTLURH, OpLDAPURH, OpLDAPURSH, OpLDAPURSH}[opc]
		is64 = opc == 0b10
	case 2:
		if opc == 0b11 {
			return errUnallocated
		}
		op = [3]Op{OpSTLUR, OpLDAPUR, OpLDAPURSW}[opc]
		is64 = opc == 0b10
	default:
		if opc >= 0b10 {
			return errUnallocated
		}
		op = [2]Op{OpSTLUR, OpLDAPUR}[opc]
	}

	b.setOp(op)
	b.inst.AddrMode = AddrModeOffset
	b.arg(gpr(rt, is64))
	b.memImm(rn, SignExtend(uint64(imm9), 9), AddrModeOffset)
	return nil
}

// decodeLoadLiteral decodes LDR (literal), LDRSW (literal) and PRFM
// (literal).
// Format: opc | 011 | V | 00 | imm19 | Rt
func decodeLoadLiteral(d *Decoder, b *builder) error {
	opc := b.bits("opc", 30, 31)
	v := b.bit("V", 26)
	imm19 := b.bits("imm19", 5, 23)
	rt := b.bits("Rt", 0, 4)

	target := b.branchTarget(imm19, 19)

	if v == 1 {
		if opc == 0b11 {
			return errUnallocated
		}
		b.setOp(OpLDR)
		b.argList(fpr(rt, [3]uint16{32, 64, 128}[opc]), target)
		return nil
	}

	switch opc {
	case 0b00, 0b01:
		b.setOp(OpLDR)
		b.arg(gpr(rt, opc == 0b01))
	case 0b10:
		b.setOp(OpLDRSW)
		b.arg(x(rt))
	default:
		b.setOp(OpPRFM)
		b.prefetchArg(rt)
	}
	b.arg(target)
	return nil
}

// decodeLoadStorePair decodes STP, LDP, STNP, LDNP, LDPSW and STGP.
// Format: opc | 101 | V | 0 | op2 | L | imm7 | Rt2 | Rn | Rt
func decodeLoadStorePair(d *Decoder, b *builder, mode AddrMode) error {
	opc := b.bits("opc", 30, 31)
	v := b.bit("V", 26)
	l := b.bit("L", 22)
	imm7 := b.bits("imm7", 15, 21)
	rt2 := b.bits("Rt2", 10, 14)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	if opc == 0b11 {
		return errUnallocated
	}

	var (
		op    Op
		scale uint
		reg   func(uint32) Register
	)

	noAlloc := mode == AddrModeNoAllocate
	pairOp := [2][2]Op{{OpSTP, OpLDP}, {OpSTNP, OpLDNP}}
	na := 0
	if noAlloc {
		na = 1
	}

	if v == 1 {
		scale = 2 + uint(opc)
		width := uint16(8 << scale)
		op = pairOp[na][l]
		reg = func(r uint32) Register { return fpr(r, width) }
	} else {
		switch opc {
		case 0b00:
			op, scale, reg = pairOp[na][l], 2, w
		case 0b10:
			op, scale, reg = pairOp[na][l], 3, x
		default:
			if noAlloc {
				return errUnallocated
			}
			if l == 1 {
				op, scale, reg = OpLDPSW, 2, x
			} else {
				op, scale, reg = OpSTGP, 4, x
			}
		}
	}

	b.setOp(op)
	b.inst.AddrMode = mode
	b.argList(reg(rt), reg(rt2))
	if noAlloc {
		mode = AddrModeOffset
	}
	b.memImm(rn, SignExtend(uint64(imm7), 7)<<scale, mode)
	return nil
}

type ldstForm uint8

const (
	formUnscaled ldstForm = iota
	formPost
	formUnpriv
	formPre
	formUnsigned
	formRegister
)

// ldstRegister describes the register operand of a single register load
// or store.
type ldstRegister struct {
	op    Op
	scale uint // log2 of the access size
	reg   func(uint32) Register
}

// loadStoreRegister resolves the size:V:opc table shared by the single
// register load/store forms.
func loadStoreRegister(size, v, opc uint32, form ldstForm) (ldstRegister, bool) {
	if v == 1 {
		scale := uint(size)
		if opc >= 0b10 {
			if size != 0 {
				return ldstRegister{}, false
			}
			scale = 4
		}
		if form == formUnpriv {
			return ldstRegister{}, false
		}
		width := uint16(8 << scale)
		var op Op
		switch form {
		case formUnscaled:
			op = [2]Op{OpSTUR, OpLDUR}[opc&1]
		default:
			op = [2]Op{OpSTR, OpLDR}[opc&1]
		}
		return ldstRegister{op: op, scale: scale, reg: func(r uint32) Register { return fpr(r, width) }}, true
	}

	// [form class][size][opc]: forms share mnemonics except the unscaled
	// and unprivileged ones.
	var table [4][4]Op
	switch form {
	case formUnscaled:
		table = [4][4]Op{
			{OpSTURB, OpLDURB, OpLDURSB, OpLDURSB},
			{OpSTURH, OpLDURH, OpLDURSH, OpLDURSH},
			{OpSTUR, OpLDUR, OpLDURSW, OpUndefined},
			{OpSTUR, OpLDUR, OpPRFUM, OpUndefined},
		}
	case formUnpriv:
		table = [4][4]Op{
			{OpSTTRB, OpLDTRB, OpLDTRSB, OpLDTRSB},
			{OpSTTRH, OpLDTRH, OpLDTRSH, OpLDTRSH},
			{OpSTTR, OpLDTR, OpLDTRSW, OpUndefined},
			{OpSTTR, OpLDTR, OpUndefined, OpUndefined},
		}
	default:
		table = [4][4]Op{
			{OpSTRB, OpLDRB, OpLDRSB, OpLDRSB},
			{OpSTRH, OpLDRH, OpLDRSH, OpLDRSH},
			{OpSTR, OpLDR, OpLDRSW, OpUndefined},
			{OpSTR, OpLDR, OpPRFM, OpUndefined},
		}
		if form == formPost || form == formPre {
			table[3][2] = OpUndefined
		}
	}

	op := table[size][opc]
	if op == OpUndefined {
		return ldstRegister{}, false
	}

	reg := w
	switch {
	case opc == 0b10:
		reg = x
	case opc == 0b11:
		reg = w
	case size == 3:
		reg = x
	}
	return ldstRegister{op: op, scale: uint(size), reg: reg}, true
}

// isPrefetch reports whether the register slot is a prefetch operation.
func (r ldstRegister) isPrefetch() bool {
	return r.op == OpPRFM || r.op == OpPRFUM
}

// ldstTarget appends the transfer register or the prefetch operation.
func (b *builder) ldstTarget(r ldstRegister, rt uint32) {
	if r.isPrefetch() {
		b.prefetchArg(rt)
		return
	}
	b.arg(r.reg(rt))
}

// decodeLoadStoreImm9 decodes the unscaled, post-indexed, unprivileged
// and pre-indexed single register forms.
// Format: size | 111 | V | 00 | opc | 0 | imm9 | op4 | Rn | Rt
func decodeLoadStoreImm9(d *Decoder, b *builder, op4 uint32) error {
	size := b.bits("size", 30, 31)
	v := b.bit("V", 26)
	opc := b.bits("opc", 22, 23)
	imm9 := b.bits("imm9", 12, 20)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	form := ldstForm(op4)
	r, ok := loadStoreRegister(size, v, opc, form)
	if !ok {
		return errUnallocated
	}

	mode := [4]AddrMode{AddrModeOffset, AddrModePostIndex, AddrModeOffset, AddrModePreIndex}[op4]

	b.setOp(r.op)
	b.inst.AddrMode = mode
	b.ldstTarget(r, rt)
	b.memImm(rn, SignExtend(uint64(imm9), 9), mode)
	return nil
}

// decodeLoadStoreUnsigned decodes the scaled unsigned offset forms.
// Format: size | 111 | V | 01 | opc | imm12 | Rn | Rt
func decodeLoadStoreUnsigned(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	v := b.bit("V", 26)
	opc := b.bits("opc", 22, 23)
	imm12 := b.bits("imm12", 10, 21)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	r, ok := loadStoreRegister(size, v, opc, formUnsigned)
	if !ok {
		return errUnallocated
	}

	b.setOp(r.op)
	b.inst.AddrMode = AddrModeOffset
	b.ldstTarget(r, rt)
	b.memImm(rn, int64(imm12)<<r.scale, AddrModeOffset)
	return nil
}

var extendKinds = [8]ShiftKind{
	ExtendUXTB, ExtendUXTH, ExtendUXTW, ExtendUXTX,
	ExtendSXTB, ExtendSXTH, ExtendSXTW, ExtendSXTX,
}

// decodeLoadStoreRegOffset decodes the register offset forms.
// Format: size | 111 | V | 00 | opc | 1 | Rm | option | S | 10 | Rn | Rt
func decodeLoadStoreRegOffset(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	v := b.bit("V", 26)
	opc := b.bits("opc", 22, 23)
	rm := b.bits("Rm", 16, 20)
	option := b.bits("option", 13, 15)
	s := b.bit("S", 12)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	if option&0b010 == 0 {
		return errUnallocated
	}

	r, ok := loadStoreRegister(size, v, opc, formRegister)
	if !ok {
		return errUnallocated
	}

	b.setOp(r.op)
	b.inst.AddrMode = AddrModeOffset
	b.ldstTarget(r, rt)

	base := xsp(rn)
	index := gpr(rm, option&1 == 1)
	var amount uint8
	if s == 1 {
		amount = uint8(r.scale)
	}

	kind := extendKinds[option]
	if option == 0b011 {
		kind = ShiftLSL
	}
	shift := Shift{Kind: kind, Amount: amount}

	switch {
	case option == 0b011 && s == 0:
		b.addOperand(base, index)
		b.text("[" + base.String() + ", " + index.String() + "]")
	case s == 1:
		b.addOperand(base, index, shift)
		b.text(fmt.Sprintf("[%s, %s, %s #%d]", base, index, kind, amount))
	default:
		b.addOperand(base, index, shift)
		b.text("[" + base.String() + ", " + index.String() + ", " + kind.String() + "]")
	}
	return nil
}

// decodeLoadPAC decodes LDRAA and LDRAB.
// Format: size | 111 | V | 00 | M | S | 1 | imm9 | W | 1 | Rn | Rt
func decodeLoadPAC(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	v := b.bit("V", 26)
	m := b.bit("M", 23)
	s := b.bit("S", 22)
	imm9 := b.bits("imm9", 12, 20)
	wback := b.bit("W", 11)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	if size != 3 || v != 0 {
		return errUnallocated
	}

	mode := AddrModeOffset
	if wback == 1 {
		mode = AddrModePreIndex
	}

	b.setOp([2]Op{OpLDRAA, OpLDRAB}[m])
	b.inst.AddrMode = mode
	b.arg(x(rt))
	b.memImm(rn, SignExtend(uint64(s<<9|imm9), 10)<<3, mode)
	return nil
}

// decodeAtomic decodes the LSE atomic memory operations, SWP and LDAPR.
// Format: size | 111 | V | 00 | A | R | 1 | Rs | o3 | opc | 00 | Rn | Rt
func decodeAtomic(d *Decoder, b *builder) error {
	size := b.bits("size", 30, 31)
	v := b.bit("V", 26)
	a := b.bit("A", 23)
	r := b.bit("R", 22)
	rs := b.bits("Rs", 16, 20)
	o3 := b.bit("o3", 15)
	opc := b.bits("opc", 12, 14)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	if v != 0 {
		return errUnallocated
	}

	is64 := size == 3
	sc := sizeClass(size)
	order := a<<1 | r

	switch {
	case o3 == 0:
		if d.aliases && a == 0 && rt == 31 {
			b.setOp(stAtomicOps[opc][r][sc])
			b.arg(gpr(rs, is64))
			b.memBase(rn)
			return nil
		}
		b.setOp(ldAtomicOps[opc][order][sc])
	case opc == 0b000:
		b.setOp(swpOps[order][sc])
	case opc == 0b100 && a == 1 && r == 0 && rs == 31:
		b.setOp([3]Op{OpLDAPRB, OpLDAPRH, OpLDAPR}[sc])
		b.arg(gpr(rt, is64))
		b.memBase(rn)
		return nil
	default:
		return errUnallocated
	}

	b.argList(gpr(rs, is64), gpr(rt, is64))
	b.memBase(rn)
	return nil
}

// decodeLoadStoreTags decodes the memory tagging loads and stores.
// Format: 11011001 | opc | 1 | imm9 | op2 | Rn | Rt
func decodeLoadStoreTags(d *Decoder, b *builder) error {
	opc := b.bits("opc", 22, 23)
	imm9 := b.bits("imm9", 12, 20)
	op2 := b.bits("op2", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	offset := SignExtend(uint64(imm9), 9) << 4

	if op2 == 0b00 {
		if opc == 0b01 {
			b.setOp(OpLDG)
			b.arg(x(rt))
			b.memImm(rn, offset, AddrModeOffset)
			return nil
		}
		if imm9 != 0 {
			return errUnallocated
		}
		b.setOp([4]Op{OpSTZGM, OpUndefined, OpSTGM, OpLDGM}[opc])
		b.arg(x(rt))
		b.memBase(rn)
		return nil
	}

	mode := [4]AddrMode{AddrModeNone, AddrModePostIndex, AddrModeOffset, AddrModePreIndex}[op2]
	b.setOp([4]Op{OpSTG, OpSTZG, OpST2G, OpSTZ2G}[opc])
	b.inst.AddrMode = mode
	b.arg(xsp(rt))
	b.memImm(rn, offset, mode)
	return nil
}

// decodeSIMDLoadStoreMultiple decodes LD1-LD4 and ST1-ST4 (multiple
// structures).
// Format: 0 | Q | 001100 | post | 0 | L | 0 | Rm | opcode | size | Rn | Rt
func decodeSIMDLoadStoreMultiple(d *Decoder, b *builder, post bool) error {
	q := b.bit("Q", 30)
	l := b.bit("L", 22)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 12, 15)
	size := b.bits("size", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	var regs, selem uint32
	switch opcode {
	case 0b0000:
		regs, selem = 4, 4
	case 0b0010:
		regs, selem = 4, 1
	case 0b0100:
		regs, selem = 3, 3
	case 0b0110:
		regs, selem = 3, 1
	case 0b0111:
		regs, selem = 1, 1
	case 0b1000:
		regs, selem = 2, 2
	case 0b1010:
		regs, selem = 2, 1
	default:
		return errUnallocated
	}

	if size == 3 && q == 0 && selem != 1 {
		return errUnallocated
	}

	ops := [2][4]Op{
		{OpST1, OpST2, OpST3, OpST4},
		{OpLD1, OpLD2, OpLD3, OpLD4},
	}
	b.setOp(ops[l][selem-1])
	b.regList(rt, regs, arrangement(size, q), -1)

	if !post {
		b.memBase(rn)
		return nil
	}
	b.inst.AddrMode = AddrModePostIndex
	b.memPostReg(rn, rm, uint64(regs)*(8<<q))
	return nil
}

// decodeSIMDLoadStoreSingle decodes LD1-LD4 and ST1-ST4 (single
// structure) and LD1R-LD4R.
// Format: 0 | Q | 001101 | post | 0 | L | R | Rm | opcode | S | size | Rn | Rt
func decodeSIMDLoadStoreSingle(d *Decoder, b *builder, post bool) error {
	q := b.bit("Q", 30)
	l := b.bit("L", 22)
	r := b.bit("R", 21)
	rm := b.bits("Rm", 16, 20)
	opcode := b.bits("opcode", 13, 15)
	s := b.bit("S", 12)
	size := b.bits("size", 10, 11)
	rn := b.bits("Rn", 5, 9)
	rt := b.bits("Rt", 0, 4)

	selem := ((opcode&1)<<1 | r) + 1

	var (
		esize uint32 // bytes per element
		lane  uint32
		arr   Arrangement
	)

	switch opcode >> 1 {
	case 0:
		esize, arr = 1, ArrB
		lane = q<<3 | s<<2 | size
	case 1:
		if size&1 != 0 {
			return errUnallocated
		}
		esize, arr = 2, ArrH
		lane = q<<2 | s<<1 | size>>1
	case 2:
		switch {
		case size == 0b00:
			esize, arr = 4, ArrS
			lane = q<<1 | s
		case size == 0b01 && s == 0:
			esize, arr = 8, ArrD
			lane = q
		default:
			return errUnallocated
		}
	default:
		if l == 0 || s != 0 {
			return errUnallocated
		}
		b.setOp([4]Op{OpLD1R, OpLD2R, OpLD3R, OpLD4R}[selem-1])
		b.regList(rt, selem, arrangement(size, q), -1)
		if !post {
			b.memBase(rn)
			return nil
		}
		b.inst.AddrMode = AddrModePostIndex
		b.memPostReg(rn, rm, uint64(selem)<<size)
		return nil
	}

	ops := [2][4]Op{
		{OpST1, OpST2, OpST3, OpST4},
		{OpLD1, OpLD2, OpLD3, OpLD4},
	}
	b.setOp(ops[l][selem-1])
	b.regList(rt, selem, arr, int(lane))

	if !post {
		b.memBase(rn)
		return nil
	}
	b.inst.AddrMode = AddrModePostIndex
	b.memPostReg(rn, rm, uint64(selem*esize))
	return nil
}

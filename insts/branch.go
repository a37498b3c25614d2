package insts

import "fmt"

// decodeBranchSys routes the Branches, Exception Generating and System
// group on op0 (bits [31:29]), op1 (bits [25:12]) and op2 (bits [4:0]).
// The order of the tests follows the architecture's decode table.
func decodeBranchSys(d *Decoder, b *builder) error {
	op0 := Bits(b.word, 29, 31)
	op1 := Bits(b.word, 12, 25)
	op2 := Bits(b.word, 0, 4)

	switch {
	case op0 == 0b010 && op1>>13 == 0:
		return decodeCondBranch(d, b)
	case op0 == 0b110 && op1>>12 == 0b00:
		return decodeException(d, b)
	case op0 == 0b110 && op1 == 0b01000000110001:
		return decodeSysWithReg(d, b)
	case op0 == 0b110 && op1 == 0b01000000110010 && op2 == 0b11111:
		return decodeHint(d, b)
	case op0 == 0b110 && op1 == 0b01000000110011:
		return decodeBarrier(d, b)
	case op0 == 0b110 && op1&0b11111110001111 == 0b01000000000100:
		return decodePState(d, b)
	case op0 == 0b110 && op1&0b11110110000000 == 0b01000010000000:
		return decodeSysInstr(d, b)
	case op0 == 0b110 && op1&0b11110100000000 == 0b01000100000000:
		return decodeSysRegMove(d, b)
	case op0 == 0b110 && op1>>13 == 1:
		return decodeBranchReg(d, b)
	case op0&0b011 == 0b000:
		return decodeBranchImm(d, b)
	case op0&0b011 == 0b001 && op1>>13 == 0:
		return decodeCompareBranch(d, b)
	case op0&0b011 == 0b001:
		return decodeTestBranch(d, b)
	}
	return errUnallocated
}

// branchTarget resolves a word offset of the given width against the PC.
func (b *builder) branchTarget(imm uint32, width uint) Immediate {
	offset := SignExtend(uint64(imm), width) * 4
	return Immediate{Kind: ImmAddress, Value: b.pc + uint64(offset)}
}

// decodeCondBranch decodes B.cond and BC.cond.
// Format: 0101010 | o1 | imm19 | o0 | cond
func decodeCondBranch(d *Decoder, b *builder) error {
	o1 := b.bit("o1", 24)
	imm19 := b.bits("imm19", 5, 23)
	o0 := b.bit("o0", 4)
	cond := b.bits("cond", 0, 3)

	if o1 != 0 {
		return errUnallocated
	}

	b.setOp([2]Op{OpBCOND, OpBCCOND}[o0])
	b.setCond(Cond(cond))
	b.arg(b.branchTarget(imm19, 19))
	return nil
}

// decodeException decodes SVC, HVC, SMC, BRK, HLT, TCANCEL and DCPS1-3.
// Format: 11010100 | opc | imm16 | op2 | LL
func decodeException(d *Decoder, b *builder) error {
	opc := b.bits("opc", 21, 23)
	imm16 := b.bits("imm16", 5, 20)
	op2 := b.bits("op2", 2, 4)
	ll := b.bits("LL", 0, 1)

	if op2 != 0 {
		return errUnallocated
	}

	imm := Immediate{Kind: ImmUnsigned, Value: uint64(imm16)}

	switch {
	case opc == 0b000 && ll != 0:
		b.setOp([4]Op{OpUndefined, OpSVC, OpHVC, OpSMC}[ll])
	case opc == 0b001 && ll == 0:
		b.setOp(OpBRK)
	case opc == 0b010 && ll == 0:
		b.setOp(OpHLT)
	case opc == 0b011 && ll == 0:
		b.setOp(OpTCANCEL)
	case opc == 0b101 && ll != 0:
		b.setOp([4]Op{OpUndefined, OpDCPS1, OpDCPS2, OpDCPS3}[ll])
		if imm16 == 0 {
			return nil
		}
	default:
		return errUnallocated
	}

	b.arg(imm)
	return nil
}

// decodeSysWithReg decodes WFET and WFIT.
// Format: 1101010100 | 0 | 00 | 011 | 0001 | CRm | op2 | Rd
func decodeSysWithReg(d *Decoder, b *builder) error {
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	rd := b.bits("Rd", 0, 4)

	if crm != 0 || op2 > 1 {
		return errUnallocated
	}

	b.setOp([2]Op{OpWFET, OpWFIT}[op2])
	b.arg(x(rd))
	return nil
}

var hintOps = map[uint32]Op{
	0b0000_000: OpNOP,
	0b0000_001: OpYIELD,
	0b0000_010: OpWFE,
	0b0000_011: OpWFI,
	0b0000_100: OpSEV,
	0b0000_101: OpSEVL,
	0b0000_110: OpDGH,
	0b0000_111: OpXPACLRI,
	0b0001_000: OpPACIA1716,
	0b0001_010: OpPACIB1716,
	0b0001_100: OpAUTIA1716,
	0b0001_110: OpAUTIB1716,
	0b0010_000: OpESB,
	0b0010_001: OpPSB,
	0b0010_010: OpTSB,
	0b0010_100: OpCSDB,
	0b0011_000: OpPACIAZ,
	0b0011_001: OpPACIASP,
	0b0011_010: OpPACIBZ,
	0b0011_011: OpPACIBSP,
	0b0011_100: OpAUTIAZ,
	0b0011_101: OpAUTIASP,
	0b0011_110: OpAUTIBZ,
	0b0011_111: OpAUTIBSP,
}

var btiTargets = [4]string{"", "c", "j", "jc"}

// decodeHint decodes the hint space: NOP, YIELD, WFE, the PAC hints,
// BTI and the generic HINT form.
// Format: 1101010100 | 0 | 00 | 011 | 0010 | CRm | op2 | 11111
func decodeHint(d *Decoder, b *builder) error {
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	imm := crm<<3 | op2

	if op, ok := hintOps[imm]; ok {
		b.setOp(op)
		switch op {
		case OpPSB:
			b.text("csync")
		case OpTSB:
			b.text("csync")
		}
		return nil
	}

	if crm == 0b0100 && op2&1 == 0 {
		b.setOp(OpBTI)
		if target := btiTargets[op2>>1]; target != "" {
			b.addOperand(Immediate{Kind: ImmPrefetch, Value: uint64(op2 >> 1)})
			b.text(target)
		}
		return nil
	}

	b.setOp(OpHINT)
	b.arg(Immediate{Kind: ImmUnsigned, Value: uint64(imm)})
	return nil
}

var barrierOptions = [16]string{
	"#0", "oshld", "oshst", "osh", "#4", "nshld", "nshst", "nsh",
	"#8", "ishld", "ishst", "ish", "#12", "ld", "st", "sy",
}

var nxsOptions = [4]string{"oshnxs", "nshnxs", "ishnxs", "synxs"}

// decodeBarrier decodes CLREX, DSB, DMB, ISB, SB, SSBB, PSSBB and TCOMMIT.
// Format: 1101010100 | 0 | 00 | 011 | 0011 | CRm | op2 | Rt
func decodeBarrier(d *Decoder, b *builder) error {
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	rt := b.bits("Rt", 0, 4)

	if rt != 31 {
		return errUnallocated
	}

	option := func(names string) {
		b.addOperand(Immediate{Kind: ImmPrefetch, Value: uint64(crm)})
		b.text(names)
	}

	switch op2 {
	case 0b001:
		if crm&3 != 0b10 {
			return errUnallocated
		}
		b.setOp(OpDSB)
		option(nxsOptions[crm>>2])
	case 0b010:
		b.setOp(OpCLREX)
		if crm != 15 {
			b.arg(Immediate{Kind: ImmBitPos, Value: uint64(crm)})
		}
	case 0b011:
		if crm != 0 {
			return errUnallocated
		}
		b.setOp(OpTCOMMIT)
	case 0b100:
		switch crm {
		case 0b0000:
			b.setOp(OpSSBB)
		case 0b0100:
			b.setOp(OpPSSBB)
		default:
			b.setOp(OpDSB)
			option(barrierOptions[crm])
		}
	case 0b101:
		b.setOp(OpDMB)
		option(barrierOptions[crm])
	case 0b110:
		b.setOp(OpISB)
		if crm != 15 {
			b.arg(Immediate{Kind: ImmBitPos, Value: uint64(crm)})
		}
	case 0b111:
		if crm != 0 {
			return errUnallocated
		}
		b.setOp(OpSB)
	default:
		return errUnallocated
	}
	return nil
}

var pstateFields = map[uint32]string{
	0b000_011: "uao",
	0b000_100: "pan",
	0b000_101: "spsel",
	0b011_001: "ssbs",
	0b011_010: "dit",
	0b011_100: "tco",
	0b011_110: "daifset",
	0b011_111: "daifclr",
}

// decodePState decodes CFINV, XAFLAG, AXFLAG and MSR (immediate).
// Format: 1101010100 | 0 | 00 | op1 | 0100 | CRm | op2 | Rt
func decodePState(d *Decoder, b *builder) error {
	op1 := b.bits("op1", 16, 18)
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	rt := b.bits("Rt", 0, 4)

	if rt != 31 {
		return errUnallocated
	}

	if op1 == 0 && op2 <= 2 {
		if crm != 0 {
			return errUnallocated
		}
		b.setOp([3]Op{OpCFINV, OpXAFLAG, OpAXFLAG}[op2])
		return nil
	}

	field, ok := pstateFields[op1<<3|op2]
	if !ok {
		return errUnallocated
	}

	b.setOp(OpMSR)
	b.addOperand(Immediate{Kind: ImmSystem, Value: uint64(op1<<3 | op2)})
	b.text(field)
	b.arg(Immediate{Kind: ImmUnsigned, Value: uint64(crm)})
	return nil
}

// decodeSysInstr decodes SYS and SYSL with the AT, DC, IC and TLBI
// aliases.
// Format: 1101010100 | L | 01 | op1 | CRn | CRm | op2 | Rt
func decodeSysInstr(d *Decoder, b *builder) error {
	l := b.bit("L", 21)
	op1 := b.bits("op1", 16, 18)
	crn := b.bits("CRn", 12, 15)
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	rt := b.bits("Rt", 0, 4)

	id := sysOp(op1, crn, crm, op2)

	if l == 1 {
		b.setOp(OpSYSL)
		b.arg(x(rt))
		b.sysOperands(op1, crn, crm, op2)
		return nil
	}

	if d.aliases {
		if alias, ok := sysAliases[id]; ok && (!alias.noReg || rt == 31) {
			b.setOp(alias.op)
			b.addOperand(Immediate{Kind: ImmSystem, Value: uint64(id)})
			b.text(alias.name)
			if !alias.noReg {
				b.arg(x(rt))
			}
			return nil
		}
	}

	b.setOp(OpSYS)
	b.sysOperands(op1, crn, crm, op2)
	if rt != 31 {
		b.arg(x(rt))
	}
	return nil
}

// sysOperands appends "#op1, Cn, Cm, #op2".
func (b *builder) sysOperands(op1, crn, crm, op2 uint32) {
	b.arg(Immediate{Kind: ImmSystem, Value: uint64(op1)})
	b.addOperand(Immediate{Kind: ImmSystem, Value: uint64(crn)})
	b.text(fmt.Sprintf("C%d", crn))
	b.addOperand(Immediate{Kind: ImmSystem, Value: uint64(crm)})
	b.text(fmt.Sprintf("C%d", crm))
	b.arg(Immediate{Kind: ImmSystem, Value: uint64(op2)})
}

// decodeSysRegMove decodes MRS and MSR (register).
// Format: 1101010100 | L | 1 | o0 | op1 | CRn | CRm | op2 | Rt
func decodeSysRegMove(d *Decoder, b *builder) error {
	l := b.bit("L", 21)
	o0 := b.bit("o0", 19)
	op1 := b.bits("op1", 16, 18)
	crn := b.bits("CRn", 12, 15)
	crm := b.bits("CRm", 8, 11)
	op2 := b.bits("op2", 5, 7)
	rt := b.bits("Rt", 0, 4)

	sys := Register{Table: TableSys, SysReg: sysRegID(2+o0, op1, crn, crm, op2)}

	if l == 1 {
		b.setOp(OpMRS)
		b.argList(x(rt), sys)
	} else {
		b.setOp(OpMSR)
		b.argList(sys, x(rt))
	}
	return nil
}

// decodeBranchImm decodes B and BL.
// Format: op | 00101 | imm26
func decodeBranchImm(d *Decoder, b *builder) error {
	op := b.bit("op", 31)
	imm26 := b.bits("imm26", 0, 25)

	b.setOp([2]Op{OpB, OpBL}[op])
	b.arg(b.branchTarget(imm26, 26))
	return nil
}

// decodeCompareBranch decodes CBZ and CBNZ.
// Format: sf | 011010 | op | imm19 | Rt
func decodeCompareBranch(d *Decoder, b *builder) error {
	sf := b.bit("sf", 31)
	op := b.bit("op", 24)
	imm19 := b.bits("imm19", 5, 23)
	rt := b.bits("Rt", 0, 4)

	b.setOp([2]Op{OpCBZ, OpCBNZ}[op])
	b.argList(gpr(rt, sf == 1), b.branchTarget(imm19, 19))
	return nil
}

// decodeTestBranch decodes TBZ and TBNZ.
// Format: b5 | 011011 | op | b40 | imm14 | Rt
func decodeTestBranch(d *Decoder, b *builder) error {
	b5 := b.bit("b5", 31)
	op := b.bit("op", 24)
	b40 := b.bits("b40", 19, 23)
	imm14 := b.bits("imm14", 5, 18)
	rt := b.bits("Rt", 0, 4)

	b.setOp([2]Op{OpTBZ, OpTBNZ}[op])
	b.argList(gpr(rt, b5 == 1),
		Immediate{Kind: ImmBitPos, Value: uint64(b5<<5 | b40)},
		b.branchTarget(imm14, 14))
	return nil
}

// decodeBranchReg decodes BR, BLR, RET, ERET, DRPS and their pointer
// authentication variants.
// Format: 1101011 | opc | op2 | op3 | Rn | op4
func decodeBranchReg(d *Decoder, b *builder) error {
	opc := b.bits("opc", 21, 24)
	op2 := b.bits("op2", 16, 20)
	op3 := b.bits("op3", 10, 15)
	rn := b.bits("Rn", 5, 9)
	op4 := b.bits("op4", 0, 4)

	if op2 != 0b11111 {
		return errUnallocated
	}

	// keyed forms: op3 is 00001x, A/B key selected by op3<0>
	keyed := op3>>1 == 1
	key := op3 & 1

	switch opc {
	case 0b0000, 0b0001:
		switch {
		case op3 == 0 && op4 == 0:
			b.setOp([2]Op{OpBR, OpBLR}[opc])
			b.arg(x(rn))
		case keyed && op4 == 0b11111:
			b.setOp([2][2]Op{{OpBRAAZ, OpBRABZ}, {OpBLRAAZ, OpBLRABZ}}[opc][key])
			b.arg(x(rn))
		default:
			return errUnallocated
		}
	case 0b0010:
		switch {
		case op3 == 0 && op4 == 0:
			b.setOp(OpRET)
			if rn != 30 {
				b.arg(x(rn))
			} else {
				b.addOperand(x(rn))
			}
		case keyed && rn == 0b11111 && op4 == 0b11111:
			b.setOp([2]Op{OpRETAA, OpRETAB}[key])
		default:
			return errUnallocated
		}
	case 0b0100:
		switch {
		case op3 == 0 && rn == 0b11111 && op4 == 0:
			b.setOp(OpERET)
		case keyed && rn == 0b11111 && op4 == 0b11111:
			b.setOp([2]Op{OpERETAA, OpERETAB}[key])
		default:
			return errUnallocated
		}
	case 0b0101:
		if op3 != 0 || rn != 0b11111 || op4 != 0 {
			return errUnallocated
		}
		b.setOp(OpDRPS)
	case 0b1000, 0b1001:
		if !keyed {
			return errUnallocated
		}
		b.setOp([2][2]Op{{OpBRAA, OpBRAB}, {OpBLRAA, OpBLRAB}}[opc&1][key])
		b.argList(x(rn), xsp(op4))
	default:
		return errUnallocated
	}
	return nil
}

package insts

// sizeSet is a set of permitted size field values.
type sizeSet uint8

const (
	sizeB sizeSet = 1 << iota
	sizeH
	sizeS
	sizeD

	sizeHS  = sizeH | sizeS
	sizeBHS = sizeB | sizeH | sizeS
	sizeAny = sizeBHS | sizeD
)

func (s sizeSet) has(size uint32) bool {
	return s&(1<<size) != 0
}

// simdForm is the operand layout of an Advanced SIMD table entry.
type simdForm uint8

const (
	formSame     simdForm = iota // Vd.T, Vn.T[, Vm.T]
	formZero                     // compare against #0
	formLong                     // Vd.Ta, Vn.Tb[, Vm.Tb]
	formWide                     // Vd.Ta, Vn.Ta, Vm.Tb
	formNarrow                   // Vd.Tb, Vn.Ta[, Vm.Ta]
	formLongPair                 // pairwise long: Vd.Ta, Vn.Tb
	formSHLL                     // Vd.Ta, Vn.Tb, #esize
	formFP                       // FP arrangement chosen by sz
	formFPZero                   // FP compare against #0.0
	formFPNarrow                 // FCVTN
	formFPLong                   // FCVTL
	formFPXN                     // FCVTXN, double to single only
	formSingle                   // integer estimate on 32-bit lanes only
	formRight                    // shift right by immediate
	formLeft                     // shift left by immediate
	formFixed                    // fixed-point conversion, fbits
	formDot                      // dot product
)

// simdEntry is one row of an Advanced SIMD opcode table. A zero op marks
// an unallocated row.
type simdEntry struct {
	op    Op
	sizes sizeSet
	form  simdForm
}

// vecArrangement returns the arrangement for size and Q, rejecting the
// reserved 1d form.
func vecArrangement(size, q uint32) (Arrangement, bool) {
	if size == 3 && q == 0 {
		return ArrNone, false
	}
	return arrangement(size, q), true
}

// fpArrangement maps sz and Q of the vector FP forms to 2s, 4s or 2d.
func fpArrangement(sz, q uint32) (Arrangement, bool) {
	switch {
	case sz == 0:
		return arrangement(2, q), true
	case q == 1:
		return Arr2D, true
	}
	return ArrNone, false
}

// longArrangement is the double-width arrangement of the long, wide and
// narrow forms.
func longArrangement(size uint32) Arrangement {
	if size == 3 {
		return Arr1Q
	}
	return arrangement(size+1, 1)
}

// isFPMisc reports whether a two-register miscellaneous opcode is one of
// the floating-point rows.
func isFPMisc(opcode uint32) bool {
	return (opcode >= 0b01100 && opcode <= 0b01111) || opcode >= 0b10110
}

// fpThreeSameOps is indexed by U, a (size<1>) and opcode<2:0> of the
// vector FP three same encodings.
var fpThreeSameOps = [2][2][8]Op{
	{
		{OpFMAXNM, OpFMLA, OpFADD, OpFMULX, OpFCMEQ, OpUnknown, OpFMAX, OpFRECPS},
		{OpFMINNM, OpFMLS, OpFSUB, OpUnknown, OpUnknown, OpUnknown, OpFMIN, OpFRSQRTS},
	},
	{
		{OpFMAXNMP, OpUnknown, OpFADDP, OpFMUL, OpFCMGE, OpFACGE, OpFMAXP, OpFDIV},
		{OpFMINNMP, OpUnknown, OpFABD, OpUnknown, OpFCMGT, OpFACGT, OpFMINP, OpUnknown},
	},
}

// fpMiscOps is indexed by U, a (size<1>) and opcode of the FP two
// register miscellaneous encodings, shared by the vector and scalar forms.
var fpMiscOps = [2][2][32]simdEntry{
	{
		{
			0b10110: {OpFCVTN, 0, formFPNarrow},
			0b10111: {OpFCVTL, 0, formFPLong},
			0b11000: {OpFRINTN, 0, formFP},
			0b11001: {OpFRINTM, 0, formFP},
			0b11010: {OpFCVTNS, 0, formFP},
			0b11011: {OpFCVTMS, 0, formFP},
			0b11100: {OpFCVTAS, 0, formFP},
			0b11101: {OpSCVTF, 0, formFP},
			0b11110: {OpFRINT32Z, 0, formFP},
			0b11111: {OpFRINT64Z, 0, formFP},
		},
		{
			0b01100: {OpFCMGT, 0, formFPZero},
			0b01101: {OpFCMEQ, 0, formFPZero},
			0b01110: {OpFCMLT, 0, formFPZero},
			0b01111: {OpFABS, 0, formFP},
			0b11000: {OpFRINTP, 0, formFP},
			0b11001: {OpFRINTZ, 0, formFP},
			0b11010: {OpFCVTPS, 0, formFP},
			0b11011: {OpFCVTZS, 0, formFP},
			0b11100: {OpURECPE, 0, formSingle},
			0b11101: {OpFRECPE, 0, formFP},
			0b11111: {OpFRECPX, 0, formFP},
		},
	},
	{
		{
			0b10110: {OpFCVTXN, 0, formFPXN},
			0b11000: {OpFRINTA, 0, formFP},
			0b11001: {OpFRINTX, 0, formFP},
			0b11010: {OpFCVTNU, 0, formFP},
			0b11011: {OpFCVTMU, 0, formFP},
			0b11100: {OpFCVTAU, 0, formFP},
			0b11101: {OpUCVTF, 0, formFP},
			0b11110: {OpFRINT32X, 0, formFP},
			0b11111: {OpFRINT64X, 0, formFP},
		},
		{
			0b01100: {OpFCMGE, 0, formFPZero},
			0b01101: {OpFCMLE, 0, formFPZero},
			0b01111: {OpFNEG, 0, formFP},
			0b11001: {OpFRINTI, 0, formFP},
			0b11010: {OpFCVTPU, 0, formFP},
			0b11011: {OpFCVTZU, 0, formFP},
			0b11100: {OpURSQRTE, 0, formSingle},
			0b11101: {OpFRSQRTE, 0, formFP},
			0b11111: {OpFSQRT, 0, formFP},
		},
	},
}

// vectorOnlyFPMisc lists the FP two register rows without a scalar form.
var vectorOnlyFPMisc = map[Op]bool{
	OpFCVTN: true, OpFCVTL: true, OpFRINTN: true, OpFRINTM: true,
	OpFRINT32Z: true, OpFRINT64Z: true, OpFABS: true, OpFRINTP: true,
	OpFRINTZ: true, OpURECPE: true, OpFRINTA: true, OpFRINTX: true,
	OpFRINT32X: true, OpFRINT64X: true, OpFNEG: true, OpFRINTI: true,
	OpURSQRTE: true, OpFSQRT: true,
}

// shiftImmOps is indexed by U and opcode of the shift by immediate
// encodings, shared by the vector and scalar forms.
var shiftImmOps = [2][32]simdEntry{
	{
		0b00000: {OpSSHR, 0, formRight},
		0b00010: {OpSSRA, 0, formRight},
		0b00100: {OpSRSHR, 0, formRight},
		0b00110: {OpSRSRA, 0, formRight},
		0b01010: {OpSHL, 0, formLeft},
		0b01110: {OpSQSHL, 0, formLeft},
		0b10000: {OpSHRN, 0, formNarrow},
		0b10001: {OpRSHRN, 0, formNarrow},
		0b10010: {OpSQSHRN, 0, formNarrow},
		0b10011: {OpSQRSHRN, 0, formNarrow},
		0b10100: {OpSSHLL, 0, formLong},
		0b11100: {OpSCVTF, 0, formFixed},
		0b11111: {OpFCVTZS, 0, formFixed},
	},
	{
		0b00000: {OpUSHR, 0, formRight},
		0b00010: {OpUSRA, 0, formRight},
		0b00100: {OpURSHR, 0, formRight},
		0b00110: {OpURSRA, 0, formRight},
		0b01000: {OpSRI, 0, formRight},
		0b01010: {OpSLI, 0, formLeft},
		0b01100: {OpSQSHLU, 0, formLeft},
		0b01110: {OpUQSHL, 0, formLeft},
		0b10000: {OpSQSHRUN, 0, formNarrow},
		0b10001: {OpSQRSHRUN, 0, formNarrow},
		0b10010: {OpUQSHRN, 0, formNarrow},
		0b10011: {OpUQRSHRN, 0, formNarrow},
		0b10100: {OpUSHLL, 0, formLong},
		0b11100: {OpUCVTF, 0, formFixed},
		0b11111: {OpFCVTZU, 0, formFixed},
	},
}

// shiftImmediate splits immh:immb into the element size and the shift
// amount for the given form.
func shiftImmediate(immh, immb uint32, form simdForm) (size, shift uint32) {
	size = uint32(HighestSetBit(uint64(immh), 4))
	esize := uint32(8) << size
	immhb := immh<<3 | immb
	if form == formLeft || form == formLong {
		return size, immhb - esize
	}
	return size, 2*esize - immhb
}

// indexedOps is indexed by U and opcode of the multiply by element
// encodings, shared by the vector and scalar forms.
var indexedOps = [2][16]simdEntry{
	{
		0b0001: {OpFMLA, 0, formFP},
		0b0010: {OpSMLAL, sizeHS, formLong},
		0b0011: {OpSQDMLAL, sizeHS, formLong},
		0b0101: {OpFMLS, 0, formFP},
		0b0110: {OpSMLSL, sizeHS, formLong},
		0b0111: {OpSQDMLSL, sizeHS, formLong},
		0b1000: {OpMUL, sizeHS, formSame},
		0b1001: {OpFMUL, 0, formFP},
		0b1010: {OpSMULL, sizeHS, formLong},
		0b1011: {OpSQDMULL, sizeHS, formLong},
		0b1100: {OpSQDMULH, sizeHS, formSame},
		0b1101: {OpSQRDMULH, sizeHS, formSame},
		0b1110: {OpSDOT, sizeS, formDot},
	},
	{
		0b0000: {OpMLA, sizeHS, formSame},
		0b0010: {OpUMLAL, sizeHS, formLong},
		0b0100: {OpMLS, sizeHS, formSame},
		0b0110: {OpUMLSL, sizeHS, formLong},
		0b1001: {OpFMULX, 0, formFP},
		0b1010: {OpUMULL, sizeHS, formLong},
		0b1101: {OpSQRDMLAH, sizeHS, formSame},
		0b1110: {OpUDOT, sizeS, formDot},
		0b1111: {OpSQRDMLSH, sizeHS, formSame},
	},
}

// indexedElement returns the Vm register number and lane of the by-element
// forms for an element size.
func indexedElement(size, l, m, h, rm uint32) (reg, lane uint32, ok bool) {
	switch size {
	case 1:
		return rm, h<<2 | l<<1 | m, true
	case 2:
		return m<<4 | rm, h<<1 | l, true
	case 3:
		if l != 0 {
			return 0, 0, false
		}
		return m<<4 | rm, h, true
	}
	return 0, 0, false
}

// fpIndexedSize maps the size field of the FP by-element forms to an
// element size: 00 is half precision, 10 single and 11 double.
func fpIndexedSize(size uint32) (uint32, bool) {
	switch size {
	case 0b00:
		return 1, true
	case 0b10:
		return 2, true
	case 0b11:
		return 3, true
	}
	return 0, false
}

// fpZeroArg appends the #0.0 operand of the FP compare against zero forms.
func (b *builder) fpZeroArg() {
	b.addOperand(Immediate{Kind: ImmFloat})
	b.text("#0.0")
}

// zeroArg appends the #0 operand of the integer compare against zero
// forms.
func (b *builder) zeroArg() {
	b.arg(Immediate{Kind: ImmSigned})
}

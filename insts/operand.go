package insts

import "fmt"

// Operand is a decoded instruction operand. It is one of Register,
// Immediate or Shift.
type Operand interface {
	fmt.Stringer
	isOperand()
}

// RegTable selects the register name table an operand is printed from.
type RegTable uint8

// Register tables.
const (
	TableGPR    RegTable = iota // general purpose, W or X by width
	TableFP                     // scalar B/H/S/D/Q by width
	TableVector                 // Vn with arrangement suffix
	TableSys                    // system register
)

// Arrangement is the element arrangement of a vector register operand.
type Arrangement uint8

// Vector arrangements.
const (
	ArrNone Arrangement = iota
	Arr8B
	Arr16B
	Arr4H
	Arr8H
	Arr2S
	Arr4S
	Arr1D
	Arr2D
	Arr1Q
	ArrB // element only, used with a lane index
	ArrH
	ArrS
	ArrD
	Arr2H
	Arr4B
)

var arrangementNames = [...]string{
	ArrNone: "",
	Arr8B:   "8b",
	Arr16B:  "16b",
	Arr4H:   "4h",
	Arr8H:   "8h",
	Arr2S:   "2s",
	Arr4S:   "4s",
	Arr1D:   "1d",
	Arr2D:   "2d",
	Arr1Q:   "1q",
	ArrB:    "b",
	ArrH:    "h",
	ArrS:    "s",
	ArrD:    "d",
	Arr2H:   "2h",
	Arr4B:   "4b",
}

// String returns the assembler suffix of the arrangement.
func (a Arrangement) String() string {
	return arrangementNames[a]
}

// Register is a register operand.
type Register struct {
	Table    RegTable
	Index    uint8
	Width    uint16 // bits: 32/64 for GPR, 8..128 for FP, element bits for vectors
	Vector   bool   // SIMD&FP register file
	PreferZR bool   // index 31 is the zero register rather than SP
	SysReg   uint16 // op0:op1:CRn:CRm:op2 for TableSys

	Arrangement Arrangement
	Lane        uint8 // element index, meaningful when Indexed
	Indexed     bool
}

func (Register) isOperand() {}

// String returns the assembler name of the register.
func (r Register) String() string {
	switch r.Table {
	case TableGPR:
		return gprName(r.Index, r.Width == 64, r.PreferZR)
	case TableFP:
		return fpName(r.Index, r.Width)
	case TableVector:
		name := vecName(r.Index)
		if r.Arrangement != ArrNone {
			name += "." + r.Arrangement.String()
		}
		if r.Indexed {
			name += fmt.Sprintf("[%d]", r.Lane)
		}
		return name
	case TableSys:
		return SysRegName(r.SysReg)
	}
	return "?"
}

// ImmKind says how an immediate operand is to be interpreted.
type ImmKind uint8

// Immediate kinds.
const (
	ImmUnsigned ImmKind = iota // plain unsigned value
	ImmSigned                  // two's complement value held in Value
	ImmAddress                 // absolute address resolved against the PC
	ImmFloat                   // IEEE double bit pattern held in Value
	ImmBitPos                  // bit number, lane or field width
	ImmNZCV                    // flag mask of a conditional compare
	ImmSystem                  // system instruction selector (op1, CRn, CRm, op2)
	ImmPrefetch                // prefetch operation or barrier option
)

// Immediate is an immediate operand.
type Immediate struct {
	Kind  ImmKind
	Value uint64
}

func (Immediate) isOperand() {}

// Signed returns the value as a signed integer.
func (i Immediate) Signed() int64 {
	return int64(i.Value)
}

// String returns the value the way the disassembly text shows it.
func (i Immediate) String() string {
	switch i.Kind {
	case ImmSigned:
		return fmt.Sprintf("#%d", int64(i.Value))
	case ImmAddress:
		return fmt.Sprintf("0x%x", i.Value)
	case ImmFloat:
		return formatFloat(i.Value)
	case ImmBitPos, ImmSystem, ImmPrefetch:
		return fmt.Sprintf("#%d", i.Value)
	}
	return fmt.Sprintf("#0x%x", i.Value)
}

// ShiftKind is a shift or extend applied to a register operand.
type ShiftKind uint8

// Shift and extend kinds.
const (
	ShiftLSL ShiftKind = iota
	ShiftLSR
	ShiftASR
	ShiftROR
	ShiftMSL
	ExtendUXTB
	ExtendUXTH
	ExtendUXTW
	ExtendUXTX
	ExtendSXTB
	ExtendSXTH
	ExtendSXTW
	ExtendSXTX
)

var shiftNames = [...]string{
	ShiftLSL:   "lsl",
	ShiftLSR:   "lsr",
	ShiftASR:   "asr",
	ShiftROR:   "ror",
	ShiftMSL:   "msl",
	ExtendUXTB: "uxtb",
	ExtendUXTH: "uxth",
	ExtendUXTW: "uxtw",
	ExtendUXTX: "uxtx",
	ExtendSXTB: "sxtb",
	ExtendSXTH: "sxth",
	ExtendSXTW: "sxtw",
	ExtendSXTX: "sxtx",
}

// String returns the assembler name of the shift.
func (k ShiftKind) String() string {
	return shiftNames[k]
}

// Shift is a shift or extend operand applied to the preceding register.
type Shift struct {
	Kind   ShiftKind
	Amount uint8
}

func (Shift) isOperand() {}

// String returns the shift as shown in the text, e.g. "lsl #12".
// Extends with a zero amount show the extend name only.
func (s Shift) String() string {
	if s.Kind >= ExtendUXTB && s.Amount == 0 {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s #%d", s.Kind, s.Amount)
}

package insts

import (
	"fmt"
	"math"
	"strconv"
)

var xNames = [32]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "x29", "x30", "sp",
}

var wNames = [32]string{
	"w0", "w1", "w2", "w3", "w4", "w5", "w6", "w7",
	"w8", "w9", "w10", "w11", "w12", "w13", "w14", "w15",
	"w16", "w17", "w18", "w19", "w20", "w21", "w22", "w23",
	"w24", "w25", "w26", "w27", "w28", "w29", "w30", "wsp",
}

var fpPrefixes = map[uint16]byte{8: 'b', 16: 'h', 32: 's', 64: 'd', 128: 'q'}

func checkIndex(index uint8) {
	if index > 31 {
		panic(fmt.Sprintf("insts: register index %d out of range", index))
	}
}

// gprName names general purpose register index. Index 31 is the zero
// register when preferZR is set and the stack pointer otherwise.
func gprName(index uint8, is64 bool, preferZR bool) string {
	checkIndex(index)
	if index == 31 && preferZR {
		if is64 {
			return "xzr"
		}
		return "wzr"
	}
	if is64 {
		return xNames[index]
	}
	return wNames[index]
}

// fpName names a scalar SIMD&FP register of the given width.
func fpName(index uint8, width uint16) string {
	checkIndex(index)
	prefix, ok := fpPrefixes[width]
	if !ok {
		panic(fmt.Sprintf("insts: no scalar register of width %d", width))
	}
	return string(prefix) + strconv.Itoa(int(index))
}

func vecName(index uint8) string {
	checkIndex(index)
	return "v" + strconv.Itoa(int(index))
}

// RegisterName returns the display name of a register from a table.
// Width selects W/X for TableGPR and B/H/S/D/Q for TableFP.
func RegisterName(table RegTable, index uint8, width uint16, preferZR bool) string {
	r := Register{Table: table, Index: index, Width: width, PreferZR: preferZR}
	return r.String()
}

// gpr builds a general purpose register operand where index 31 is the zero
// register.
func gpr(index uint32, is64 bool) Register {
	return Register{Table: TableGPR, Index: uint8(index), Width: gprWidth(is64), PreferZR: true}
}

// gprSP builds a general purpose register operand where index 31 is the
// stack pointer.
func gprSP(index uint32, is64 bool) Register {
	return Register{Table: TableGPR, Index: uint8(index), Width: gprWidth(is64)}
}

func x(index uint32) Register   { return gpr(index, true) }
func w(index uint32) Register   { return gpr(index, false) }
func xsp(index uint32) Register { return gprSP(index, true) }

func gprWidth(is64 bool) uint16 {
	if is64 {
		return 64
	}
	return 32
}

// fpr builds a scalar SIMD&FP register operand.
func fpr(index uint32, width uint16) Register {
	return Register{Table: TableFP, Index: uint8(index), Width: width, Vector: true}
}

// vreg builds a vector register operand with an arrangement.
func vreg(index uint32, arr Arrangement) Register {
	return Register{
		Table:       TableVector,
		Index:       uint8(index & 31),
		Width:       arrangementElementBits(arr),
		Vector:      true,
		Arrangement: arr,
	}
}

// velem builds a vector element operand, e.g. v1.s[2].
func velem(index uint32, arr Arrangement, lane uint32) Register {
	r := vreg(index, arr)
	r.Lane = uint8(lane)
	r.Indexed = true
	return r
}

func arrangementElementBits(arr Arrangement) uint16 {
	switch arr {
	case Arr8B, Arr16B, ArrB, Arr4B:
		return 8
	case Arr4H, Arr8H, ArrH, Arr2H:
		return 16
	case Arr2S, Arr4S, ArrS:
		return 32
	case Arr1D, Arr2D, ArrD:
		return 64
	case Arr1Q:
		return 128
	}
	return 0
}

// arrangement maps a size field and the Q bit to a vector arrangement.
// size 3 with Q clear is 1d.
func arrangement(size, q uint32) Arrangement {
	return [4][2]Arrangement{
		{Arr8B, Arr16B},
		{Arr4H, Arr8H},
		{Arr2S, Arr4S},
		{Arr1D, Arr2D},
	}[size&3][q&1]
}

// elementArrangement maps a size field to the element-only arrangement
// used with lane indices.
func elementArrangement(size uint32) Arrangement {
	return [4]Arrangement{ArrB, ArrH, ArrS, ArrD}[size&3]
}

// scalarWidth maps a size field to a scalar register width.
func scalarWidth(size uint32) uint16 {
	return 8 << (size & 3)
}

// formatFloat renders an FP immediate held as float64 bits.
func formatFloat(bits uint64) string {
	return fmt.Sprintf("#%.18e", math.Float64frombits(bits))
}

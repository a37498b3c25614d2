package insts

import (
	"errors"
	"math"
	"math/bits"
)

// errReservedBitMask reports a logical immediate that does not exist.
var errReservedBitMask = errors.New("reserved bitmask immediate")

// Bits extracts the inclusive bit range [lo, hi] of word.
func Bits(word uint32, lo, hi uint) uint32 {
	return uint32((uint64(word) >> lo) & (1<<(hi-lo+1) - 1))
}

// Bit returns bit n of word.
func Bit(word uint32, n uint) uint32 {
	return (word >> n) & 1
}

// SignExtend sign-extends the low width bits of value to 64 bits.
func SignExtend(value uint64, width uint) int64 {
	shift := 64 - width
	return int64(value<<shift) >> shift
}

// Ones returns a value with the low n bits set.
func Ones(n uint) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<n - 1
}

// Replicate concatenates copies of the low unitWidth bits of value.
func Replicate(value uint64, unitWidth, copies uint) uint64 {
	value &= Ones(unitWidth)
	var result uint64
	for i := uint(0); i < copies; i++ {
		result |= value << (i * unitWidth)
	}
	return result
}

// HighestSetBit returns the index of the most significant set bit among the
// low width bits of value, or -1 if none is set.
func HighestSetBit(value uint64, width uint) int {
	return bits.Len64(value&Ones(width)) - 1
}

// LowestSetBit returns the index of the least significant set bit among the
// low width bits of value, or width if none is set.
func LowestSetBit(value uint64, width uint) int {
	value &= Ones(width)
	if value == 0 {
		return int(width)
	}
	return bits.TrailingZeros64(value)
}

// BitCount returns the number of set bits in value.
func BitCount(value uint64) int {
	return bits.OnesCount64(value)
}

// rotateRight rotates the low width bits of value right by amount.
func rotateRight(value uint64, amount, width uint) uint64 {
	value &= Ones(width)
	amount %= width
	if amount == 0 {
		return value
	}
	return ((value >> amount) | (value << (width - amount))) & Ones(width)
}

// DecodeBitMasks implements the logical immediate expansion.
// It returns the wrapped mask and the top mask for a dataSize-bit register.
// The element size is taken from the highest set bit of N:NOT(imms).
// With immediate set, an all-ones element is reserved.
func DecodeBitMasks(n, imms, immr uint32, immediate bool, dataSize uint) (wmask, tmask uint64, err error) {
	length := HighestSetBit(uint64(n<<6|(^imms&0x3F)), 7)
	if length < 1 {
		return 0, 0, errReservedBitMask
	}

	levels := uint32(Ones(uint(length)))
	if immediate && imms&levels == levels {
		return 0, 0, errReservedBitMask
	}

	esize := uint(1) << uint(length)
	if esize > dataSize {
		return 0, 0, errReservedBitMask
	}

	s := imms & levels
	r := immr & levels
	d := (s - r) & levels

	welem := Ones(uint(s) + 1)
	telem := Ones(uint(d) + 1)

	wmask = Replicate(rotateRight(welem, uint(r), esize), esize, dataSize/esize)
	tmask = Replicate(telem, esize, dataSize/esize)

	return wmask, tmask, nil
}

// MoveWidePreferred reports whether a logical immediate encoding that
// could also be produced by MOVZ or MOVN should be shown as MOV.
func MoveWidePreferred(sf, immN, imms, immr uint32) bool {
	s := int(imms)
	r := int(immr)
	width := 32
	if sf == 1 {
		width = 64
	}

	// element size must equal total immediate size
	if sf == 1 && immN != 1 {
		return false
	}
	if sf == 0 && (immN != 0 || imms&0x20 != 0) {
		return false
	}

	// MOVZ: no more than 16 ones, not spanning a halfword boundary
	if s < 16 {
		return (-r)&15 <= 15-s
	}

	// MOVN: no more than 16 zeros, not spanning a halfword boundary
	if s >= width-15 {
		return r&15 <= s-(width-15)
	}

	return false
}

// BFXPreferred reports whether SBFM/UBFM should be shown as SBFX/UBFX
// rather than one of the more specific shift or extend aliases.
func BFXPreferred(sf, unsigned, imms, immr uint32) bool {
	// must not match UBFIZ/SBFIZ
	if imms < immr {
		return false
	}

	// must not match LSR/ASR/LSL
	if imms == sf<<5|0x1F {
		return false
	}

	if immr == 0 {
		// 32-bit UXT[BH] and SXT[BH]
		if sf == 0 && (imms == 0x07 || imms == 0x0F) {
			return false
		}
		// 64-bit SXT[BHW]
		if sf == 1 && unsigned == 0 && (imms == 0x07 || imms == 0x0F || imms == 0x1F) {
			return false
		}
	}

	return true
}

// VFPExpandImm expands the 8-bit floating point immediate of FMOV.
// Every encodable value is exact in half, single and double precision.
func VFPExpandImm(imm8 uint32) float64 {
	sign := 1.0
	if imm8&0x80 != 0 {
		sign = -1.0
	}
	cd := int(imm8>>4) & 3
	exp := cd + 1
	if imm8&0x40 != 0 {
		exp = cd - 3
	}
	frac := float64(16+imm8&0xF) / 16.0
	return sign * math.Ldexp(frac, exp)
}

// AdvSIMDExpandImm expands the cmode/op modified immediate to its 64-bit
// pattern.
func AdvSIMDExpandImm(op, cmode, imm8 uint32) uint64 {
	imm := uint64(imm8)
	switch cmode >> 1 {
	case 0:
		return Replicate(imm, 32, 2)
	case 1:
		return Replicate(imm<<8, 32, 2)
	case 2:
		return Replicate(imm<<16, 32, 2)
	case 3:
		return Replicate(imm<<24, 32, 2)
	case 4:
		return Replicate(imm, 16, 4)
	case 5:
		return Replicate(imm<<8, 16, 4)
	case 6:
		if cmode&1 == 0 {
			return Replicate(imm<<8|0xFF, 32, 2)
		}
		return Replicate(imm<<16|0xFFFF, 32, 2)
	}

	switch {
	case cmode&1 == 0 && op == 0:
		return Replicate(imm, 8, 8)
	case cmode&1 == 0 && op == 1:
		var result uint64
		for i := uint(0); i < 8; i++ {
			if imm8&(1<<i) != 0 {
				result |= 0xFF << (i * 8)
			}
		}
		return result
	case cmode&1 == 1 && op == 0:
		return Replicate(uint64(math.Float32bits(float32(VFPExpandImm(imm8)))), 32, 2)
	default:
		return math.Float64bits(VFPExpandImm(imm8))
	}
}

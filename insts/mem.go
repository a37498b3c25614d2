package insts

import "fmt"

// memImm appends a base register plus immediate memory operand in the
// given addressing mode:
//
//	offset:     [xn, #imm] or [xn] when imm is zero
//	pre-index:  [xn, #imm]!
//	post-index: [xn], #imm
func (b *builder) memImm(rn uint32, offset int64, mode AddrMode) {
	base := xsp(rn)
	imm := Immediate{Kind: ImmSigned, Value: uint64(offset)}

	switch mode {
	case AddrModePostIndex:
		b.addOperand(base, imm)
		b.text("[" + base.String() + "]")
		b.text(imm.String())
	case AddrModePreIndex:
		b.addOperand(base, imm)
		b.text(fmt.Sprintf("[%s, %s]!", base, imm))
	default:
		if offset == 0 {
			b.addOperand(base)
			b.text("[" + base.String() + "]")
			return
		}
		b.addOperand(base, imm)
		b.text(fmt.Sprintf("[%s, %s]", base, imm))
	}
}

// memBase appends a plain [xn] memory operand.
func (b *builder) memBase(rn uint32) {
	b.memImm(rn, 0, AddrModeOffset)
}

// memPostReg appends a post-indexed operand whose increment is either a
// register or, when rm is 31, the immediate imm.
func (b *builder) memPostReg(rn, rm uint32, imm uint64) {
	base := xsp(rn)
	b.addOperand(base)
	b.text("[" + base.String() + "]")
	if rm == 31 {
		b.arg(Immediate{Kind: ImmSigned, Value: imm})
		return
	}
	b.arg(x(rm))
}

// regList appends a {v0.4s, v1.4s} register list, optionally followed by
// a lane index.
func (b *builder) regList(rt, count uint32, arr Arrangement, lane int) {
	text := "{"
	for i := uint32(0); i < count; i++ {
		r := vreg((rt+i)%32, arr)
		if lane >= 0 {
			r.Lane = uint8(lane)
			r.Indexed = true
		}
		b.addOperand(r)
		if i > 0 {
			text += ", "
		}
		text += fmt.Sprintf("v%d.%s", (rt+i)%32, arr)
	}
	text += "}"
	if lane >= 0 {
		text += fmt.Sprintf("[%d]", lane)
	}
	b.text(text)
}

var prefetchTypes = [4]string{"pld", "pli", "pst", ""}
var prefetchPolicies = [2]string{"keep", "strm"}

// prefetchOp names a PRFM operation, e.g. pldl1keep.
func prefetchOp(rt uint32) string {
	typ := prefetchTypes[rt>>3&3]
	target := rt >> 1 & 3
	if typ == "" || target == 3 {
		return fmt.Sprintf("#%d", rt)
	}
	return fmt.Sprintf("%sl%d%s", typ, target+1, prefetchPolicies[rt&1])
}

// prefetchArg appends the PRFM operation operand.
func (b *builder) prefetchArg(rt uint32) {
	b.addOperand(Immediate{Kind: ImmPrefetch, Value: uint64(rt)})
	b.text(prefetchOp(rt))
}

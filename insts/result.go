package insts

import (
	"fmt"
	"strings"
)

// Group is the top-level encoding group an instruction belongs to.
type Group uint8

// Encoding groups.
const (
	GroupUnknown Group = iota
	GroupReserved
	GroupDPImm     // Data Processing (Immediate)
	GroupBranchSys // Branches, Exception Generating and System
	GroupLoadStore // Loads and Stores
	GroupDPReg     // Data Processing (Register)
	GroupSIMDFP    // Data Processing (Scalar FP and Advanced SIMD)
)

var groupNames = [...]string{
	GroupUnknown:   "unknown",
	GroupReserved:  "reserved",
	GroupDPImm:     "dp-imm",
	GroupBranchSys: "branch-sys",
	GroupLoadStore: "load-store",
	GroupDPReg:     "dp-reg",
	GroupSIMDFP:    "simd-fp",
}

// String returns a short name for the group.
func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

// AddrMode is the addressing mode of a load/store pair or register form.
type AddrMode uint8

// Addressing modes.
const (
	AddrModeNone AddrMode = iota
	AddrModePostIndex
	AddrModePreIndex
	AddrModeOffset
	AddrModeNoAllocate
)

var addrModeNames = [...]string{
	AddrModeNone:       "none",
	AddrModePostIndex:  "post-index",
	AddrModePreIndex:   "pre-index",
	AddrModeOffset:     "offset",
	AddrModeNoAllocate: "no-allocate",
}

// String returns a short name for the addressing mode.
func (m AddrMode) String() string {
	return addrModeNames[m]
}

// Field is an encoding field extracted while decoding.
type Field struct {
	Name  string
	Value uint32
}

// Instruction is a decoded A64 instruction.
type Instruction struct {
	Word uint32 // raw instruction word
	PC   uint64 // address the word was decoded at

	Group Group
	Op    Op

	Cond    Cond // condition code, meaningful when HasCond is set
	HasCond bool

	Fields   []Field
	Operands []Operand
	Text     string

	AddrMode AddrMode
}

// Mnemonic returns the first word of the text, including a condition
// suffix for B.cond style instructions.
func (i *Instruction) Mnemonic() string {
	if idx := strings.IndexByte(i.Text, ' '); idx >= 0 {
		return i.Text[:idx]
	}
	return i.Text
}

// Field returns the value of the named encoding field.
func (i *Instruction) Field(name string) (uint32, bool) {
	for _, f := range i.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Release drops the buffers owned by the instruction. The instruction must
// not be used afterwards.
func Release(inst *Instruction) {
	if inst == nil {
		return
	}
	clear(inst.Fields)
	clear(inst.Operands)
	*inst = Instruction{}
}

// undefined builds the fallback record for a word that could not be
// decoded.
func undefined(word uint32, pc uint64, group Group) *Instruction {
	return &Instruction{
		Word:     word,
		PC:       pc,
		Group:    group,
		Op:       OpUndefined,
		Operands: []Operand{Immediate{Kind: ImmUnsigned, Value: uint64(word)}},
		Text:     fmt.Sprintf(".inst 0x%08x", word),
	}
}

// builder accumulates one instruction. Fields, operands and text arguments
// are only ever appended.
type builder struct {
	word   uint32
	pc     uint64
	fields bool

	inst  Instruction
	args  []string
	upper bool // mnemonic takes the "2" suffix of the upper-half forms
}

func newBuilder(word uint32, pc uint64, group Group, fields bool) *builder {
	b := &builder{word: word, pc: pc, fields: fields}
	b.inst.Word = word
	b.inst.PC = pc
	b.inst.Group = group
	b.args = make([]string, 0, 4)
	if fields {
		b.inst.Fields = make([]Field, 0, 8)
	}
	b.inst.Operands = make([]Operand, 0, 4)
	return b
}

// addField records an encoding field.
func (b *builder) addField(name string, value uint32) {
	if b.fields {
		b.inst.Fields = append(b.inst.Fields, Field{Name: name, Value: value})
	}
}

// bits extracts and records the field [lo, hi].
func (b *builder) bits(name string, lo, hi uint) uint32 {
	v := Bits(b.word, lo, hi)
	b.addField(name, v)
	return v
}

// bit extracts and records a one-bit field.
func (b *builder) bit(name string, n uint) uint32 {
	return b.bits(name, n, n)
}

// addOperand appends operands without adding text.
func (b *builder) addOperand(ops ...Operand) {
	b.inst.Operands = append(b.inst.Operands, ops...)
}

// arg appends one operand and its text.
func (b *builder) arg(op Operand) {
	b.addOperand(op)
	b.args = append(b.args, op.String())
}

// args appends several operands, each with its own text.
func (b *builder) argList(ops ...Operand) {
	for _, op := range ops {
		b.arg(op)
	}
}

// text appends a preformatted text argument.
func (b *builder) text(s string) {
	b.args = append(b.args, s)
}

// setOp selects the instruction.
func (b *builder) setOp(op Op) {
	b.inst.Op = op
}

// setUpper selects the "2" suffixed mnemonic when q is set.
func (b *builder) setUpper(q uint32) {
	b.upper = q == 1
}

// setCond records a condition code.
func (b *builder) setCond(c Cond) {
	b.inst.Cond = c
	b.inst.HasCond = true
}

// cond appends a condition code operand such as "eq".
func (b *builder) condArg(c Cond) {
	b.setCond(c)
	b.args = append(b.args, c.String())
}

// finish renders the text and hands out the record.
func (b *builder) finish() *Instruction {
	var sb strings.Builder
	sb.WriteString(b.inst.Op.String())
	if b.upper {
		sb.WriteByte('2')
	}
	if b.inst.Op.condSuffix() && b.inst.HasCond {
		sb.WriteByte('.')
		sb.WriteString(b.inst.Cond.String())
	}
	for i, a := range b.args {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(a)
	}
	b.inst.Text = sb.String()
	inst := b.inst
	return &inst
}

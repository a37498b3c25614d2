package insts

// Decoder decodes A64 machine code into instructions.
// A Decoder is immutable and safe for concurrent use.
type Decoder struct {
	aliases bool
	fields  bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithAliases selects whether preferred disassembly aliases (MOV, CMP,
// UBFX, ...) are used. It defaults to true.
func WithAliases(enabled bool) Option {
	return func(d *Decoder) {
		d.aliases = enabled
	}
}

// WithFields selects whether extracted encoding fields are recorded in
// Instruction.Fields. It defaults to true.
func WithFields(enabled bool) Option {
	return func(d *Decoder) {
		d.fields = enabled
	}
}

// NewDecoder creates a new A64 instruction decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{aliases: true, fields: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// leafFunc decodes one encoding class into b.
type leafFunc func(d *Decoder, b *builder) error

// Decode decodes the 32-bit instruction word located at pc.
//
// The pc is only used to resolve PC-relative operands. When the word is
// unallocated, Decode returns a ".inst" record carrying the raw word along
// with a *DecodeError.
func (d *Decoder) Decode(word uint32, pc uint64) (*Instruction, error) {
	// op0 is bits [28:25]
	op0 := Bits(word, 25, 28)

	var (
		group Group
		leaf  leafFunc
	)

	switch {
	case op0 == 0b0000:
		group, leaf = GroupReserved, decodeReserved
	case op0 == 0b0001, op0 == 0b0010, op0 == 0b0011:
		// unallocated, and SVE which is not decoded here
		group = GroupReserved
	case op0&0b1110 == 0b1000:
		group, leaf = GroupDPImm, decodeDataProcessingImm
	case op0&0b1110 == 0b1010:
		group, leaf = GroupBranchSys, decodeBranchSys
	case op0&0b0101 == 0b0100:
		group, leaf = GroupLoadStore, decodeLoadStore
	case op0&0b0111 == 0b0101:
		group, leaf = GroupDPReg, decodeDataProcessingReg
	default: // x111
		group, leaf = GroupSIMDFP, decodeSIMDFP
	}

	if leaf == nil {
		return undefined(word, pc, group), &DecodeError{Word: word, PC: pc, Group: group}
	}

	b := newBuilder(word, pc, group, d.fields)
	if err := leaf(d, b); err != nil {
		return undefined(word, pc, group), &DecodeError{Word: word, PC: pc, Group: group}
	}

	return b.finish(), nil
}

// decodeReserved decodes the reserved group, of which only UDF is
// allocated.
// Format: 0000 0000 0000 0000 | imm16
func decodeReserved(d *Decoder, b *builder) error {
	op0 := b.bits("op0", 29, 31)
	op1 := b.bits("op1", 16, 24)
	if op0 != 0 || op1 != 0 {
		return errUnallocated
	}
	imm16 := b.bits("imm16", 0, 15)

	b.setOp(OpUDF)
	b.arg(Immediate{Kind: ImmBitPos, Value: uint64(imm16)})
	return nil
}
